// Package render turns recipes into display view-models and card markup.
//
// [Cards] is pure and knows nothing about documents or terminals. [HTML]
// produces the card markup that a document view drops into its container.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Card is the display form of one recipe.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Minutes     int    `json:"time"`
	Duration    string `json:"duration"`   // "20 min"
	Difficulty  string `json:"difficulty"` // label, also the style class
	Description string `json:"description"`
}

// Cards maps recipes to cards in input order.
func Cards(records []domain.Recipe) []Card {
	out := make([]Card, 0, len(records))
	for _, r := range records {
		out = append(out, Card{
			ID:          r.ID,
			Title:       r.Title,
			Minutes:     r.Time,
			Duration:    fmt.Sprintf("%d min", r.Time),
			Difficulty:  r.Difficulty.String(),
			Description: r.Description,
		})
	}
	return out
}

var cardsTmpl = template.Must(template.New("cards").Parse(
	`{{range .}}<div class="recipe-card" data-id="{{.ID}}">` +
		`<h3>{{.Title}}</h3>` +
		`<div class="recipe-meta"><span>⏱️ {{.Duration}}</span>` +
		`<span class="difficulty {{.Difficulty}}">{{.Difficulty}}</span></div>` +
		`<p>{{.Description}}</p>` +
		`</div>{{end}}`))

// HTML renders one card block per card, concatenated. No cards gives "".
func HTML(cards []Card) (string, error) {
	var b strings.Builder
	if err := cardsTmpl.Execute(&b, cards); err != nil {
		return "", fmt.Errorf("rendering cards: %w", err)
	}
	return b.String(), nil
}
