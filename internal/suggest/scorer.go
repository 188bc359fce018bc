package suggest

import (
	"fmt"
	"math"
)

// bucketWeights maps an urgency bucket to its contribution per matched
// expiring item. Expired and fresh items never contribute: spoiled food
// should not be cooked, and fresh food is not urgent.
var bucketWeights = map[Bucket]struct {
	Score    float64
	Priority int
}{
	BucketCritical: {Score: 0.4, Priority: 100},
	BucketWarning:  {Score: 0.3, Priority: 75},
	BucketUpcoming: {Score: 0.2, Priority: 50},
}

// ScoreRecipe combines expiration urgency, dietary compliance, skill fit
// and pantry availability into one Suggestion for a recipe. Deterministic
// given identical inputs; the caller passes the same expiring snapshot
// and pantry names to every recipe in a pass.
func ScoreRecipe(recipe Recipe, expiring []ClassifiedItem, pantryNames []string, prefs *UserPreferences) Suggestion {
	var score float64
	var priority int

	// Urgency: every expiring item this recipe would use pushes it up,
	// weighted by how soon the item goes bad.
	matched := make([]string, 0, len(expiring))
	for _, item := range expiring {
		weight, ok := bucketWeights[item.Bucket]
		if !ok {
			continue
		}
		if recipeUses(recipe, item.Name) {
			score += weight.Score
			priority += weight.Priority
			matched = append(matched, item.Name)
		}
	}

	if prefs != nil {
		if IsCompliant(recipe.Title, recipe.Description, prefs) {
			score += 0.1
			priority += 10
		} else {
			// Soft penalty, not a hard filter: the compliance check is a
			// textual heuristic and can misfire.
			score *= 0.3
			priority -= 50
		}

		adj := SkillAdjustment(recipe.Difficulty, prefs.CookingSkillLevel)
		score += adj
		priority += int(math.Round(adj * 20))
	}

	// Availability: fraction of the recipe's ingredients already in the
	// pantry. Unknown ingredient lists score a neutral 0.5.
	availability := 0.5
	if len(recipe.Ingredients) > 0 {
		res := MatchIngredients(recipe.Ingredients, pantryNames)
		availability = float64(len(recipe.Ingredients)-len(res.MissingIngredients)) / float64(len(recipe.Ingredients))
	}
	score += availability * 0.2
	priority += int(math.Round(availability * 30))

	score = clamp01(score)

	return Suggestion{
		ID:                   fmt.Sprintf("suggestion-%d", recipe.ID),
		RecipeID:             recipe.ID,
		Priority:             priority,
		MatchScore:           score,
		Reason:               reasonFor(matched),
		ExpiringIngredients:  matched,
		EstimatedPrepMinutes: recipe.PrepTimeMinutes + recipe.CookTimeMinutes,
	}
}

// recipeUses reports whether an expiring item name matches any of the
// recipe's required ingredients.
func recipeUses(recipe Recipe, itemName string) bool {
	for _, required := range recipe.Ingredients {
		if NamesMatch(itemName, required) {
			return true
		}
	}
	return false
}

// reasonFor builds the user-facing explanation from the first two
// matched expiring ingredient names.
func reasonFor(matched []string) string {
	switch len(matched) {
	case 0:
		return "Good match for your preferences"
	case 1:
		return fmt.Sprintf("Uses %s which expires soon", matched[0])
	default:
		return fmt.Sprintf("Uses %s and %s which expire soon", matched[0], matched[1])
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
