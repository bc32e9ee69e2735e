package domain

import "context"

// RecipeSource provides recipes. The in-memory source is seeded once and
// never changes; All must return a fresh slice on every call.
type RecipeSource interface {
	All(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int) (Recipe, error)
}
