// Package catalog holds the pure list transformations behind the recipe
// view: filtering by a Filter and ordering by a Sort. No function here
// mutates its input or returns a slice that aliases it.
package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// FilterBy returns the recipes visible under f, in input order.
func FilterBy(records []domain.Recipe, f domain.Filter) []domain.Recipe {
	switch f {
	case domain.FilterEasy, domain.FilterMedium, domain.FilterHard:
		want, _ := f.Difficulty()
		return keep(records, func(r domain.Recipe) bool { return r.Difficulty == want })
	case domain.FilterQuick:
		return keep(records, func(r domain.Recipe) bool { return r.Time <= domain.QuickMaxMinutes })
	case domain.FilterAll:
		return clone(records)
	default:
		return clone(records)
	}
}

// SortBy returns a copy of records ordered by s. Both orderings are stable.
func SortBy(records []domain.Recipe, s domain.Sort) []domain.Recipe {
	out := clone(records)
	switch s {
	case domain.SortName:
		// Collator keeps scratch buffers, so one per call.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return c.CompareString(a.Title, b.Title)
		})
	case domain.SortTime:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return cmp.Compare(a.Time, b.Time)
		})
	case domain.SortNone:
	default:
	}
	return out
}

// Apply filters first and then sorts the filtered subset.
func Apply(records []domain.Recipe, sel domain.Selection) []domain.Recipe {
	return SortBy(FilterBy(records, sel.Filter), sel.Sort)
}

func keep(records []domain.Recipe, pred func(domain.Recipe) bool) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func clone(records []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(records))
	copy(out, records)
	return out
}
