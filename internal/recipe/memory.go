// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds the built-in recipes in store order. It is seeded once
// by NewMemorySource and never written again, so concurrent reads need no
// locking.
type MemorySource struct {
	recipes []domain.Recipe
	byID    map[int]int // id -> index into recipes
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	return newSource(log, builtin())
}

// NewMemorySourceFrom creates a source over the given records, copied.
// Duplicate ids keep the first occurrence.
func NewMemorySourceFrom(log *logger.Logger, records []domain.Recipe) *MemorySource {
	return newSource(log, append([]domain.Recipe(nil), records...))
}

func newSource(log *logger.Logger, records []domain.Recipe) *MemorySource {
	src := &MemorySource{
		recipes: make([]domain.Recipe, 0, len(records)),
		byID:    make(map[int]int, len(records)),
		log:     log,
	}
	for _, r := range records {
		if _, dup := src.byID[r.ID]; dup {
			log.Warn("duplicate recipe id %d (%s), skipping", r.ID, r.Title)
			continue
		}
		src.byID[r.ID] = len(src.recipes)
		src.recipes = append(src.recipes, r)
	}
	log.Debug("seeded %d recipes", len(src.recipes))
	return src
}

// All returns every recipe in store order. The slice is a fresh copy.
func (s *MemorySource) All(ctx context.Context) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id int) (domain.Recipe, error) {
	i, ok := s.byID[id]
	if !ok {
		s.log.Debug("recipe not found: %d", id)
		return domain.Recipe{}, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
	}
	return s.recipes[i], nil
}

func builtin() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Title: "Spaghetti Aglio e Olio", Time: 20, Difficulty: domain.DifficultyEasy,
			Description: "Simple Italian pasta with garlic and olive oil.", Category: "pasta"},
		{ID: 2, Title: "Chicken Stir Fry", Time: 25, Difficulty: domain.DifficultyEasy,
			Description: "Quick chicken stir fry with vegetables.", Category: "dinner"},
		{ID: 3, Title: "Beef Wellington", Time: 90, Difficulty: domain.DifficultyHard,
			Description: "Beef wrapped in puff pastry.", Category: "gourmet"},
		{ID: 4, Title: "Vegetable Curry", Time: 45, Difficulty: domain.DifficultyMedium,
			Description: "Flavorful vegetable curry.", Category: "curry"},
		{ID: 5, Title: "Caesar Salad", Time: 15, Difficulty: domain.DifficultyEasy,
			Description: "Crisp lettuce with Caesar dressing.", Category: "salad"},
		{ID: 6, Title: "Ramen from Scratch", Time: 120, Difficulty: domain.DifficultyHard,
			Description: "Authentic homemade ramen.", Category: "soup"},
		{ID: 7, Title: "Grilled Salmon", Time: 35, Difficulty: domain.DifficultyMedium,
			Description: "Grilled salmon with lemon butter.", Category: "seafood"},
		{ID: 8, Title: "Chocolate Soufflé", Time: 70, Difficulty: domain.DifficultyHard,
			Description: "Light and airy chocolate dessert.", Category: "dessert"},
	}
}
