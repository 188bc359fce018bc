// Package suggest implements the recipe suggestion engine: expiration
// classification of pantry items, fuzzy ingredient matching, dietary
// compliance checks, skill fit, weighted scoring and ranking, and the
// expiration notification messages shown on the dashboard.
//
// Everything in this package is a pure function over snapshots passed in
// by the caller. The package owns no state, performs no I/O, and is safe
// to call concurrently. Callers load pantry items, recipes and
// preferences, pick a single "today" instant, and get fresh output on
// every call.
package suggest

import "time"

// Bucket is a discrete expiration urgency tier.
type Bucket string

const (
	BucketExpired  Bucket = "expired"
	BucketCritical Bucket = "critical"
	BucketWarning  Bucket = "warning"
	BucketUpcoming Bucket = "upcoming"
	BucketFresh    Bucket = "fresh"
)

// ItemKind distinguishes pantry ingredients from leftovers in
// notifications. The two kinds run through the same classification logic
// as independent passes.
type ItemKind string

const (
	KindIngredient ItemKind = "ingredient"
	KindLeftover   ItemKind = "leftover"
)

// Thresholds configures the day-count boundaries between urgency tiers.
// One Thresholds value is threaded through the classifier, the scorer and
// the notification composer so there is a single source of truth for
// "how urgent is 2 days".
type Thresholds struct {
	CriticalDays int
	WarningDays  int
	UpcomingDays int
}

// DefaultThresholds returns the standard 3/7/14 day tiers.
func DefaultThresholds() Thresholds {
	return Thresholds{CriticalDays: 3, WarningDays: 7, UpcomingDays: 14}
}

// normalized fills zero or nonsensical values with the defaults so a
// partially-populated Thresholds degrades gracefully instead of
// collapsing every bucket.
func (t Thresholds) normalized() Thresholds {
	def := DefaultThresholds()
	if t.CriticalDays <= 0 {
		t.CriticalDays = def.CriticalDays
	}
	if t.WarningDays <= t.CriticalDays {
		t.WarningDays = max(def.WarningDays, t.CriticalDays+1)
	}
	if t.UpcomingDays <= t.WarningDays {
		t.UpcomingDays = max(def.UpcomingDays, t.WarningDays+1)
	}
	return t
}

// PerishableItem is an immutable snapshot of a pantry ingredient or a
// leftover. Items without an expiration date are never classified as
// expiring.
type PerishableItem struct {
	ID        int
	Name      string
	Quantity  float64
	Unit      string
	Category  string
	ExpiresAt *time.Time
}

// Recipe is the slice of a recipe the engine needs. Ingredients holds the
// recipe's required ingredient names in display order, resolved by the
// caller; an empty list means the ingredients are unknown, which is
// scored neutrally rather than as a perfect or hopeless match.
type Recipe struct {
	ID              int
	Title           string
	Description     string
	PrepTimeMinutes int
	CookTimeMinutes int
	Servings        int
	Difficulty      string
	CuisineType     string
	Ingredients     []string
}

// UserPreferences carries the dietary and skill inputs. A nil
// *UserPreferences means no compliance or skill adjustments are applied.
type UserPreferences struct {
	DietaryRestrictions []string
	Allergies           []string
	CookingSkillLevel   string
}

// Suggestion is a derived, ephemeral record recomputed on every
// evaluation pass. Priority orders suggestions relative to each other;
// MatchScore is a bounded [0,1] quality heuristic used as a minimum
// filter.
type Suggestion struct {
	ID                   string   `json:"id"`
	RecipeID             int      `json:"recipe_id"`
	Priority             int      `json:"priority"`
	MatchScore           float64  `json:"match_score"`
	Reason               string   `json:"reason"`
	ExpiringIngredients  []string `json:"expiring_ingredients"`
	EstimatedPrepMinutes int      `json:"estimated_prep_minutes"`
}

// Input bundles everything one suggestion pass needs. Dismissed holds
// suggestion ids the user has already dismissed; the engine only filters
// on it and never stores it.
type Input struct {
	Today       time.Time
	Recipes     []Recipe
	Pantry      []PerishableItem
	Preferences *UserPreferences
	Thresholds  Thresholds
	Limit       int
	Dismissed   map[string]struct{}
}

// Suggest runs the full pipeline: classify the pantry, score every
// recipe against the expiring items, then filter, rank and truncate.
// With nothing expiring there is nothing to be proactive about, so the
// result is empty regardless of the catalog.
func Suggest(in Input) []Suggestion {
	t := in.Thresholds.normalized()

	classified := ClassifyItems(in.Today, in.Pantry, t)
	expiring := make([]ClassifiedItem, 0, len(classified))
	for _, item := range classified {
		switch item.Bucket {
		case BucketCritical, BucketWarning, BucketUpcoming:
			expiring = append(expiring, item)
		}
	}
	if len(expiring) == 0 {
		return nil
	}

	pantryNames := make([]string, 0, len(in.Pantry))
	for _, item := range in.Pantry {
		pantryNames = append(pantryNames, item.Name)
	}

	suggestions := make([]Suggestion, 0, len(in.Recipes))
	for _, recipe := range in.Recipes {
		suggestions = append(suggestions, ScoreRecipe(recipe, expiring, pantryNames, in.Preferences))
	}

	return Rank(suggestions, RankOptions{Limit: in.Limit, Dismissed: in.Dismissed})
}
