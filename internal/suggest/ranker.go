package suggest

import "sort"

const (
	// MinMatchScore is the quality floor; suggestions at or below it are
	// never surfaced.
	MinMatchScore = 0.3

	// DefaultLimit bounds the shortlist when the caller doesn't.
	DefaultLimit = 5
)

// RankOptions controls filtering and truncation of a ranked shortlist.
type RankOptions struct {
	Limit     int
	Dismissed map[string]struct{}
}

// Rank filters out low-quality and dismissed suggestions, sorts the rest
// by priority descending, and truncates to the top N. The sort is stable
// so equal-priority suggestions keep catalog order. The input slice is
// not modified.
func Rank(suggestions []Suggestion, opts RankOptions) []Suggestion {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	kept := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.MatchScore <= MinMatchScore {
			continue
		}
		if _, dismissed := opts.Dismissed[s.ID]; dismissed {
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Priority > kept[j].Priority
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
