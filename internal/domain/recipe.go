// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a single entry in the recipe list. Values are immutable once
// seeded into a source; every layer above the source works on copies.
type Recipe struct {
	ID          int
	Title       string
	Time        int // minutes
	Difficulty  Difficulty
	Description string
	Category    string // informational only, nothing filters or sorts on it
}

// Difficulty enumerates how hard a recipe is to cook.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the lowercase label used in markup and controls.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}
