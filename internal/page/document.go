// Package page models the HTML document the recipe list lives in.
//
// A [Document] wraps a parsed page and exposes exactly what the controller
// needs from it: the two control groups, the recipe container, and a way to
// replace the container's content and move the "active" marker between
// controls. Documents are not safe for concurrent use.
package page

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/render"
)

// Selectors for the elements the controller binds to.
const (
	ContainerSelector = "#recipe-container"
	FilterSelector    = ".filter-btn"
	SortSelector      = ".sort-btn"
	FilterAttr        = "data-filter"
	SortAttr          = "data-sort"
	ActiveClass       = "active"
)

//go:embed shell.html
var shellHTML string

// Document is a parsed page with recipe controls and a container.
type Document struct {
	doc *goquery.Document
}

// New parses a page from r.
func New(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Default parses the built-in page shell.
func Default() (*Document, error) {
	return New(strings.NewReader(shellHTML))
}

func groupSelector(g domain.Group) (sel, attr string) {
	switch g {
	case domain.GroupFilter:
		return FilterSelector, FilterAttr
	case domain.GroupSort:
		return SortSelector, SortAttr
	default:
		return "", ""
	}
}

// Controls returns the values carried by the group's controls, in
// document order. Controls without a value attribute are ignored.
func (d *Document) Controls(g domain.Group) []string {
	sel, attr := groupSelector(g)
	if sel == "" {
		return nil
	}
	var out []string
	d.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok {
			out = append(out, v)
		}
	})
	return out
}

// HasContainer reports whether the page has a recipe container.
func (d *Document) HasContainer() bool {
	return d.doc.Find(ContainerSelector).Length() > 0
}

// Render replaces the container's content with one block per card.
func (d *Document) Render(cards []render.Card) error {
	container := d.doc.Find(ContainerSelector).First()
	if container.Length() == 0 {
		return domain.ErrNoContainer
	}
	markup, err := render.HTML(cards)
	if err != nil {
		return err
	}
	container.SetHtml(markup)
	return nil
}

// MarkActive flags the group's controls carrying value as active and
// clears the flag on the rest of the group.
func (d *Document) MarkActive(g domain.Group, value string) {
	sel, attr := groupSelector(g)
	if sel == "" {
		return
	}
	d.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok && v == value {
			s.AddClass(ActiveClass)
			return
		}
		s.RemoveClass(ActiveClass)
	})
}

// Active returns the value of the group's active control, or "".
func (d *Document) Active(g domain.Group) string {
	sel, attr := groupSelector(g)
	if sel == "" {
		return ""
	}
	v, _ := d.doc.Find(sel + "." + ActiveClass).First().Attr(attr)
	return v
}

// ContainerHTML returns the container's current inner markup.
func (d *Document) ContainerHTML() (string, error) {
	container := d.doc.Find(ContainerSelector).First()
	if container.Length() == 0 {
		return "", domain.ErrNoContainer
	}
	return container.Html()
}

// HTML serialises the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}
