package domain

// QuickMaxMinutes is the inclusive upper bound for the quick filter.
const QuickMaxMinutes = 30

// Group identifies one of the two independent control groups.
type Group int

const (
	GroupFilter Group = iota
	GroupSort
)

// String returns a human-readable group name.
func (g Group) String() string {
	switch g {
	case GroupFilter:
		return "filter"
	case GroupSort:
		return "sort"
	default:
		return "unknown"
	}
}

// Filter selects which recipes are visible.
type Filter int

const (
	FilterAll Filter = iota
	FilterEasy
	FilterMedium
	FilterHard
	FilterQuick // Time <= QuickMaxMinutes
)

// Filters returns every filter in control order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterEasy, FilterMedium, FilterHard, FilterQuick}
}

// String returns the control value for the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterEasy:
		return "easy"
	case FilterMedium:
		return "medium"
	case FilterHard:
		return "hard"
	case FilterQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// Difficulty reports the difficulty a filter matches on, if any.
func (f Filter) Difficulty() (Difficulty, bool) {
	switch f {
	case FilterEasy:
		return DifficultyEasy, true
	case FilterMedium:
		return DifficultyMedium, true
	case FilterHard:
		return DifficultyHard, true
	default:
		return DifficultyEasy, false
	}
}

// ParseFilter maps a control value to a Filter. Matching is exact; anything
// else, including a different letter case, returns FilterAll with ok=false.
func ParseFilter(s string) (Filter, bool) {
	for _, f := range Filters() {
		if f.String() == s {
			return f, true
		}
	}
	return FilterAll, false
}

// Sort selects the order of the visible recipes.
type Sort int

const (
	SortNone Sort = iota
	SortName
	SortTime
)

// Sorts returns every sort in control order.
func Sorts() []Sort {
	return []Sort{SortNone, SortName, SortTime}
}

// String returns the control value for the sort.
func (s Sort) String() string {
	switch s {
	case SortNone:
		return "none"
	case SortName:
		return "name"
	case SortTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseSort maps a control value to a Sort. Matching is exact; anything
// else returns SortNone with ok=false.
func ParseSort(s string) (Sort, bool) {
	for _, v := range Sorts() {
		if v.String() == s {
			return v, true
		}
	}
	return SortNone, false
}

// Selection is the (filter, sort) pair a view is showing.
type Selection struct {
	Filter Filter
	Sort   Sort
}

// DefaultSelection is the state every controller starts in.
func DefaultSelection() Selection {
	return Selection{Filter: FilterAll, Sort: SortNone}
}
