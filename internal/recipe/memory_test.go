package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

func TestMemorySourceAll(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	recipes, err := src.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recipes) != 8 {
		t.Fatalf("expected 8 recipes, got %d", len(recipes))
	}
	for i, r := range recipes {
		if r.ID != i+1 {
			t.Fatalf("position %d: expected id %d, got %d", i, i+1, r.ID)
		}
		if r.Title == "" || r.Time <= 0 {
			t.Fatalf("recipe %d has empty title or non-positive time", r.ID)
		}
	}
}

func TestMemorySourceAllReturnsCopy(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	first, _ := src.All(ctx)
	first[0].Title = "mutated"
	first = first[:0]

	second, _ := src.All(ctx)
	if second[0].Title != "Spaghetti Aglio e Olio" {
		t.Fatalf("store was mutated through a returned slice: %q", second[0].Title)
	}
	if len(second) != 8 {
		t.Fatalf("expected 8 recipes, got %d", len(second))
	}
}

func TestMemorySourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		id        int
		wantTitle string
		wantErr   error
	}{
		{1, "Spaghetti Aglio e Olio", nil},
		{8, "Chocolate Soufflé", nil},
		{99, "", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			r, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Title != tt.wantTitle {
				t.Fatalf("expected %q, got %q", tt.wantTitle, r.Title)
			}
		})
	}
}

func TestMemorySourceFromSkipsDuplicates(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySourceFrom(log, []domain.Recipe{
		{ID: 1, Title: "A", Time: 10},
		{ID: 1, Title: "B", Time: 20},
		{ID: 2, Title: "C", Time: 30},
	})
	all, _ := src.All(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(all))
	}
	r, err := src.Get(context.Background(), 1)
	if err != nil || r.Title != "A" {
		t.Fatalf("expected first occurrence A, got %+v (err=%v)", r, err)
	}
}
