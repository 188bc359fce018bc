package suggest

import "strings"

// restrictionKeywords maps a dietary restriction to the recipe-text
// keywords that disqualify it. This is a best-effort textual heuristic,
// not an ingredient-level guarantee; user-facing copy says as much.
// Unknown restriction names simply have no entry and no effect.
var restrictionKeywords = map[string][]string{
	"vegetarian": {"meat", "chicken", "beef", "pork", "fish", "salmon", "bacon", "shrimp", "turkey", "lamb"},
	"vegan": {
		"meat", "chicken", "beef", "pork", "fish", "salmon", "bacon", "shrimp", "turkey", "lamb",
		"dairy", "egg", "milk", "butter", "cheese", "cream", "yogurt", "honey",
	},
	"pescatarian": {"meat", "chicken", "beef", "pork", "bacon", "turkey", "lamb"},
	"gluten-free": {"wheat", "flour", "pasta", "bread", "noodle", "barley", "couscous"},
	"dairy-free":  {"milk", "butter", "cheese", "cream", "yogurt", "dairy"},
	"nut-free":    {"peanut", "almond", "walnut", "cashew", "pecan", "hazelnut", "pistachio"},
	"keto":        {"sugar", "flour", "bread", "pasta", "rice", "potato"},
	"low-carb":    {"sugar", "bread", "pasta", "rice", "potato"},
}

// IsCompliant checks a recipe's title and description against the user's
// dietary restrictions and allergies. The recipe fails if the combined
// text contains any keyword for any active restriction, or any allergy
// term verbatim. A nil preferences value is trivially compliant.
func IsCompliant(title, description string, prefs *UserPreferences) bool {
	if prefs == nil {
		return true
	}

	blob := strings.ToLower(title + " " + description)

	for _, restriction := range prefs.DietaryRestrictions {
		keywords, ok := restrictionKeywords[normalizeRestriction(restriction)]
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(blob, keyword) {
				return false
			}
		}
	}

	for _, allergy := range prefs.Allergies {
		term := strings.ToLower(strings.TrimSpace(allergy))
		if term != "" && strings.Contains(blob, term) {
			return false
		}
	}

	return true
}

// normalizeRestriction folds case and spacing so "Gluten Free" and
// "gluten-free" hit the same keyword list.
func normalizeRestriction(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "-")
}
