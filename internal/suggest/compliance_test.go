package suggest

import "testing"

func TestIsCompliant(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		prefs       *UserPreferences
		want        bool
	}{
		{
			name:  "nil preferences",
			title: "Beef Stew",
			prefs: nil,
			want:  true,
		},
		{
			name:  "vegan vs chicken",
			title: "Grilled Chicken Salad",
			prefs: &UserPreferences{DietaryRestrictions: []string{"Vegan"}},
			want:  false,
		},
		{
			name:        "vegan vs dairy in description",
			title:       "Mashed Potatoes",
			description: "Creamy potatoes with butter and milk",
			prefs:       &UserPreferences{DietaryRestrictions: []string{"vegan"}},
			want:        false,
		},
		{
			name:  "vegetarian allows dairy",
			title: "Cheese Omelette",
			prefs: &UserPreferences{DietaryRestrictions: []string{"vegetarian"}},
			want:  true,
		},
		{
			name:  "gluten free with spaces in restriction name",
			title: "Fresh Pasta Carbonara",
			prefs: &UserPreferences{DietaryRestrictions: []string{"Gluten Free"}},
			want:  false,
		},
		{
			name:  "unknown restriction is ignored",
			title: "Beef Wellington",
			prefs: &UserPreferences{DietaryRestrictions: []string{"paleo-extreme"}},
			want:  true,
		},
		{
			name:        "allergy term verbatim",
			title:       "Thai Satay",
			description: "Skewers with a rich peanut sauce",
			prefs:       &UserPreferences{Allergies: []string{"Peanut"}},
			want:        false,
		},
		{
			name:  "no restrictions at all",
			title: "Pork Ramen",
			prefs: &UserPreferences{},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompliant(tt.title, tt.description, tt.prefs); got != tt.want {
				t.Fatalf("IsCompliant = %v, want %v", got, tt.want)
			}
		})
	}
}
