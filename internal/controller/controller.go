// Package controller implements the interaction loop of the recipe view:
// it holds the current (filter, sort) selection, reacts to control
// activations, and re-renders the full list through the catalog transforms.
package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hammamikhairi/recipebox/internal/catalog"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/render"
)

// View is the surface the controller drives. A document page and the
// terminal UI both implement it.
type View interface {
	// Controls returns the values of the controls present in a group.
	Controls(g domain.Group) []string
	HasContainer() bool
	// Render replaces the container's content. domain.ErrNoContainer
	// means there is nowhere to draw.
	Render(cards []render.Card) error
	MarkActive(g domain.Group, value string)
}

// Controller owns one view's selection state. It is not safe for
// concurrent use; callers serialise activations.
type Controller struct {
	source domain.RecipeSource
	view   View
	log    *logger.Logger

	sel     domain.Selection
	bound   map[domain.Group][]string
	visible []domain.Recipe
}

// New creates a controller with the default selection. Call Start before
// the first activation.
func New(source domain.RecipeSource, view View, log *logger.Logger) *Controller {
	return &Controller{
		source: source,
		view:   view,
		log:    log,
		sel:    domain.DefaultSelection(),
		bound:  make(map[domain.Group][]string),
	}
}

// Start looks up the view's controls and container, marks the default
// controls active, and performs the initial render. Missing elements are
// logged and skipped.
func (c *Controller) Start(ctx context.Context) error {
	c.sel = domain.DefaultSelection()

	for _, g := range []domain.Group{domain.GroupFilter, domain.GroupSort} {
		values := c.view.Controls(g)
		if len(values) == 0 {
			c.log.Warn("no %s controls found, %s selection disabled", g, g)
			delete(c.bound, g)
			continue
		}
		c.bound[g] = values
		c.log.Debug("bound %d %s controls", len(values), g)
	}
	if !c.view.HasContainer() {
		c.log.Warn("recipe container not found, nothing will be drawn")
	}

	c.view.MarkActive(domain.GroupFilter, c.sel.Filter.String())
	c.view.MarkActive(domain.GroupSort, c.sel.Sort.String())
	return c.Update(ctx)
}

// Activate handles a press of the control carrying value in group g. The
// control must have been found by Start. Values that name no known filter
// or sort fall back to the identity transform.
func (c *Controller) Activate(ctx context.Context, g domain.Group, value string) error {
	if !slices.Contains(c.bound[g], value) {
		c.log.Debug("ignoring %s activation %q: no such control", g, value)
		return fmt.Errorf("%s control %q: %w", g, value, domain.ErrNoControl)
	}

	switch g {
	case domain.GroupFilter:
		f, ok := domain.ParseFilter(value)
		if !ok {
			c.log.Warn("unknown filter %q, showing all recipes", value)
		}
		c.sel.Filter = f
	case domain.GroupSort:
		s, ok := domain.ParseSort(value)
		if !ok {
			c.log.Warn("unknown sort %q, keeping store order", value)
		}
		c.sel.Sort = s
	}

	c.view.MarkActive(g, value)
	c.log.Debug("selection now filter=%s sort=%s", c.sel.Filter, c.sel.Sort)
	return c.Update(ctx)
}

// Reset returns to the default selection and re-renders.
func (c *Controller) Reset(ctx context.Context) error {
	c.sel = domain.DefaultSelection()
	c.view.MarkActive(domain.GroupFilter, c.sel.Filter.String())
	c.view.MarkActive(domain.GroupSort, c.sel.Sort.String())
	return c.Update(ctx)
}

// Update recomputes the visible list from the full source and renders it.
func (c *Controller) Update(ctx context.Context) error {
	all, err := c.source.All(ctx)
	if err != nil {
		return fmt.Errorf("loading recipes: %w", err)
	}

	c.visible = catalog.Apply(all, c.sel)
	if err := c.view.Render(render.Cards(c.visible)); err != nil {
		if errors.Is(err, domain.ErrNoContainer) {
			c.log.Debug("skipping render: %v", err)
			return nil
		}
		return fmt.Errorf("rendering: %w", err)
	}
	c.log.Debug("rendered %d of %d recipes", len(c.visible), len(all))
	return nil
}

// Selection returns the current (filter, sort) pair.
func (c *Controller) Selection() domain.Selection { return c.sel }

// Visible returns a copy of the recipes from the last render.
func (c *Controller) Visible() []domain.Recipe {
	return slices.Clone(c.visible)
}
