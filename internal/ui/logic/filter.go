package logic

import (
	"strings"

	"nobsrom/internal/domain"
)

// FilteredView is an ordered sequence of indices into a game list whose
// entries match a search query. It is recomputed wholesale on every
// keystroke; at ROM-library sizes the O(n) pass is nowhere near a problem.
type FilteredView struct {
	Indices []int
}

// Len returns the number of matching entries
func (v FilteredView) Len() int {
	return len(v.Indices)
}

// Empty reports whether nothing matched
func (v FilteredView) Empty() bool {
	return len(v.Indices) == 0
}

// Filter returns the view of games whose display name contains query,
// case-insensitively. The empty query matches everything and preserves the
// original order. Filtering never fails; the worst case is an empty view.
func Filter(games []domain.Game, query string) FilteredView {
	indices := make([]int, 0, len(games))
	if query == "" {
		for i := range games {
			indices = append(indices, i)
		}
		return FilteredView{Indices: indices}
	}

	q := strings.ToLower(query)
	for i, g := range games {
		if strings.Contains(strings.ToLower(g.Name), q) {
			indices = append(indices, i)
		}
	}
	return FilteredView{Indices: indices}
}
