package suggest

import (
	"reflect"
	"testing"
)

func TestNamesMatchSymmetry(t *testing.T) {
	tests := []struct {
		pantry   string
		required string
		want     bool
	}{
		{"Apples", "apple", true},
		{"Apple", "apples", true},
		{"Spaghetti Pasta", "spaghetti", true},
		{"Farm Eggs", "eggs", true},
		{"Milk", "parmesan cheese", false},
		{"", "eggs", false},
		{"eggs", "", false},
		{"CHICKEN BREAST", "chicken", true},
	}

	for _, tt := range tests {
		if got := NamesMatch(tt.pantry, tt.required); got != tt.want {
			t.Errorf("NamesMatch(%q, %q) = %v, want %v", tt.pantry, tt.required, got, tt.want)
		}
	}
}

func TestMatchIngredients(t *testing.T) {
	required := []string{"spaghetti", "eggs", "parmesan cheese"}
	pantry := []string{"Spaghetti Pasta", "Farm Eggs"}

	res := MatchIngredients(required, pantry)
	if res.MatchPercentage != 67 {
		t.Fatalf("match percentage = %d, want 67", res.MatchPercentage)
	}
	if !reflect.DeepEqual(res.MissingIngredients, []string{"parmesan cheese"}) {
		t.Fatalf("missing = %v, want [parmesan cheese]", res.MissingIngredients)
	}
}

func TestMatchIngredientsNoKnownIngredients(t *testing.T) {
	res := MatchIngredients(nil, []string{"Milk", "Eggs"})
	if res.MatchPercentage != 0 {
		t.Fatalf("unknown ingredient list must not look like a match, got %d%%", res.MatchPercentage)
	}
	if len(res.MissingIngredients) != 0 {
		t.Fatalf("unknown ingredient list should have empty missing list, got %v", res.MissingIngredients)
	}
}

func TestMatchIngredientsEmptyPantry(t *testing.T) {
	res := MatchIngredients([]string{"milk", "eggs"}, nil)
	if res.MatchPercentage != 0 {
		t.Fatalf("empty pantry should match 0%%, got %d%%", res.MatchPercentage)
	}
	if !reflect.DeepEqual(res.MissingIngredients, []string{"milk", "eggs"}) {
		t.Fatalf("missing should preserve order, got %v", res.MissingIngredients)
	}
}

// Coverage can only go up as more required ingredients become available.
func TestMatchPercentageMonotonic(t *testing.T) {
	required := []string{"milk", "eggs", "flour", "butter"}
	pantry := []string{}

	prev := 0
	for _, add := range required {
		pantry = append(pantry, add)
		res := MatchIngredients(required, pantry)
		if res.MatchPercentage < prev {
			t.Fatalf("match percentage dropped from %d to %d after adding %q", prev, res.MatchPercentage, add)
		}
		prev = res.MatchPercentage
	}
	if prev != 100 {
		t.Fatalf("full pantry should match 100%%, got %d%%", prev)
	}
}
