package suggest

import (
	"math"
	"strings"
)

// MatchResult summarizes how well the pantry covers a recipe's required
// ingredients.
type MatchResult struct {
	MatchPercentage    int      `json:"match_percentage"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// NamesMatch reports whether a pantry ingredient name covers a required
// ingredient name. Matching is case-insensitive substring containment in
// either direction, so pantry "Spaghetti Pasta" covers required
// "spaghetti" and pantry "egg" covers required "eggs".
func NamesMatch(pantryName, requiredName string) bool {
	p := strings.ToLower(strings.TrimSpace(pantryName))
	r := strings.ToLower(strings.TrimSpace(requiredName))
	if p == "" || r == "" {
		return false
	}
	return strings.Contains(p, r) || strings.Contains(r, p)
}

// MatchIngredients computes coverage of required ingredient names by the
// current pantry. A recipe with no known required ingredients yields 0%
// and no missing list: absence of data must not look like a perfect
// match. Missing names keep their original order and casing.
func MatchIngredients(required, pantry []string) MatchResult {
	if len(required) == 0 {
		return MatchResult{MatchPercentage: 0, MissingIngredients: []string{}}
	}

	available := 0
	missing := make([]string, 0, len(required))
	for _, name := range required {
		if coveredBy(name, pantry) {
			available++
		} else {
			missing = append(missing, name)
		}
	}

	pct := int(math.Round(100 * float64(available) / float64(len(required))))
	return MatchResult{MatchPercentage: pct, MissingIngredients: missing}
}

func coveredBy(requiredName string, pantry []string) bool {
	for _, pantryName := range pantry {
		if NamesMatch(pantryName, requiredName) {
			return true
		}
	}
	return false
}
