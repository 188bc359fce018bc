package suggest

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreRecipeUrgencyAndAvailability(t *testing.T) {
	recipe := Recipe{
		ID:              7,
		Title:           "Spaghetti Carbonara",
		Description:     "Classic pasta with eggs and cheese",
		PrepTimeMinutes: 15,
		CookTimeMinutes: 20,
		Difficulty:      "Medium",
		Ingredients:     []string{"spaghetti", "eggs", "parmesan cheese"},
	}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{ID: 1, Name: "Milk"}, Bucket: BucketCritical, DaysLeft: 2},
		{PerishableItem: PerishableItem{ID: 2, Name: "Eggs"}, Bucket: BucketCritical, DaysLeft: 2},
	}
	pantry := []string{"Milk", "Eggs", "Spaghetti Pasta"}

	s := ScoreRecipe(recipe, expiring, pantry, nil)

	// Eggs is the only expiring match: +0.4 / +100. Availability is 2/3:
	// +0.1333... score, +20 priority.
	if !almostEqual(s.MatchScore, 0.4+(2.0/3.0)*0.2) {
		t.Fatalf("match score = %v", s.MatchScore)
	}
	if s.Priority != 120 {
		t.Fatalf("priority = %d, want 120", s.Priority)
	}
	if s.Reason != "Uses Eggs which expires soon" {
		t.Fatalf("reason = %q", s.Reason)
	}
	if !reflect.DeepEqual(s.ExpiringIngredients, []string{"Eggs"}) {
		t.Fatalf("expiring ingredients = %v", s.ExpiringIngredients)
	}
	if s.EstimatedPrepMinutes != 35 {
		t.Fatalf("estimated prep minutes = %d, want 35", s.EstimatedPrepMinutes)
	}
	if s.ID != "suggestion-7" {
		t.Fatalf("suggestion id = %q", s.ID)
	}
}

func TestScoreRecipeNonCompliantPenalty(t *testing.T) {
	recipe := Recipe{
		ID:          3,
		Title:       "Fried Chicken",
		Difficulty:  "Easy",
		Ingredients: []string{"chicken"},
	}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{ID: 1, Name: "Chicken Breast"}, Bucket: BucketCritical, DaysLeft: 1},
	}
	prefs := &UserPreferences{
		DietaryRestrictions: []string{"Vegan"},
		CookingSkillLevel:   "Beginner",
	}

	s := ScoreRecipe(recipe, expiring, []string{"Chicken Breast"}, prefs)

	// 0.4 urgency, *0.3 non-compliant, +0.1 skill, +0.2 availability.
	if !almostEqual(s.MatchScore, 0.4*0.3+0.1+0.2) {
		t.Fatalf("match score = %v", s.MatchScore)
	}
	// 100 urgency, -50 non-compliant, +2 skill, +30 availability.
	if s.Priority != 82 {
		t.Fatalf("priority = %d, want 82", s.Priority)
	}
}

func TestScoreRecipeCompliantBonus(t *testing.T) {
	recipe := Recipe{
		ID:          4,
		Title:       "Vegetable Stir Fry",
		Difficulty:  "Easy",
		Ingredients: []string{"broccoli", "carrots"},
	}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{ID: 1, Name: "Broccoli"}, Bucket: BucketWarning, DaysLeft: 5},
	}
	prefs := &UserPreferences{
		DietaryRestrictions: []string{"vegan"},
		CookingSkillLevel:   "Intermediate",
	}

	s := ScoreRecipe(recipe, expiring, []string{"Broccoli"}, prefs)

	// 0.3 urgency + 0.1 compliant + 0.1 skill + 0.5*0.2 availability.
	if !almostEqual(s.MatchScore, 0.3+0.1+0.1+0.5*0.2) {
		t.Fatalf("match score = %v", s.MatchScore)
	}
	// 75 + 10 + 2 + 15.
	if s.Priority != 102 {
		t.Fatalf("priority = %d, want 102", s.Priority)
	}
}

func TestScoreRecipeUnknownIngredientsNeutral(t *testing.T) {
	recipe := Recipe{ID: 9, Title: "Mystery Casserole"}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{ID: 1, Name: "Milk"}, Bucket: BucketCritical, DaysLeft: 1},
	}

	s := ScoreRecipe(recipe, expiring, []string{"Milk"}, nil)

	// No known ingredients: urgency 0, availability clamps to 0.5.
	if !almostEqual(s.MatchScore, 0.5*0.2) {
		t.Fatalf("match score = %v, want neutral availability only", s.MatchScore)
	}
	if s.Priority != 15 {
		t.Fatalf("priority = %d, want 15", s.Priority)
	}
	if s.Reason != "Good match for your preferences" {
		t.Fatalf("reason = %q", s.Reason)
	}
}

func TestScoreRecipeClampsScore(t *testing.T) {
	recipe := Recipe{
		ID:          5,
		Title:       "Everything Soup",
		Ingredients: []string{"milk", "eggs", "cheese", "butter"},
	}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{Name: "Milk"}, Bucket: BucketCritical},
		{PerishableItem: PerishableItem{Name: "Eggs"}, Bucket: BucketCritical},
		{PerishableItem: PerishableItem{Name: "Cheese"}, Bucket: BucketCritical},
		{PerishableItem: PerishableItem{Name: "Butter"}, Bucket: BucketCritical},
	}
	pantry := []string{"Milk", "Eggs", "Cheese", "Butter"}

	s := ScoreRecipe(recipe, expiring, pantry, nil)
	if s.MatchScore > 1 {
		t.Fatalf("match score must stay in [0,1], got %v", s.MatchScore)
	}
	if s.MatchScore != 1 {
		t.Fatalf("four critical matches should saturate the score, got %v", s.MatchScore)
	}
}

func TestSuggestReasonNamesFirstTwo(t *testing.T) {
	recipe := Recipe{ID: 1, Title: "Omelette", Ingredients: []string{"eggs", "milk", "cheese"}}
	expiring := []ClassifiedItem{
		{PerishableItem: PerishableItem{Name: "Eggs"}, Bucket: BucketCritical},
		{PerishableItem: PerishableItem{Name: "Milk"}, Bucket: BucketWarning},
		{PerishableItem: PerishableItem{Name: "Cheese"}, Bucket: BucketWarning},
	}

	s := ScoreRecipe(recipe, expiring, []string{"Eggs", "Milk", "Cheese"}, nil)
	if s.Reason != "Uses Eggs and Milk which expire soon" {
		t.Fatalf("reason = %q", s.Reason)
	}
}

func TestSuggestNoExpiringItems(t *testing.T) {
	today := date(2025, time.March, 10)
	in := Input{
		Today: today,
		Recipes: []Recipe{
			{ID: 1, Title: "Perfect Match", Ingredients: []string{"rice"}},
		},
		Pantry: []PerishableItem{
			{ID: 1, Name: "Rice"}, // no expiration date
			{ID: 2, Name: "Canned Corn", ExpiresAt: datePtr(date(2026, time.January, 1))},
		},
	}

	if got := Suggest(in); len(got) != 0 {
		t.Fatalf("no expiring items must yield no suggestions, got %d", len(got))
	}
}

func TestSuggestDeterministic(t *testing.T) {
	today := date(2025, time.March, 10)
	in := Input{
		Today: today,
		Recipes: []Recipe{
			{ID: 1, Title: "Omelette", Difficulty: "Easy", Ingredients: []string{"eggs", "milk"}},
			{ID: 2, Title: "Pancakes", Difficulty: "Easy", Ingredients: []string{"flour", "milk", "eggs"}},
		},
		Pantry: []PerishableItem{
			{ID: 1, Name: "Eggs", ExpiresAt: datePtr(date(2025, time.March, 11))},
			{ID: 2, Name: "Milk", ExpiresAt: datePtr(date(2025, time.March, 14))},
		},
		Preferences: &UserPreferences{CookingSkillLevel: "Intermediate"},
	}

	first := Suggest(in)
	second := Suggest(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different output:\n%+v\n%+v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("expected suggestions for expiring eggs and milk")
	}
}
