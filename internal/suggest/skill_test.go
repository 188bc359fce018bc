package suggest

import "testing"

func TestSkillAdjustment(t *testing.T) {
	tests := []struct {
		difficulty string
		skill      string
		want       float64
	}{
		{"Easy", "Beginner", 0.1},        // at level
		{"Medium", "Beginner", 0},        // one step up: stretch zone
		{"Hard", "Beginner", -0.2},       // two steps up
		{"Hard", "Intermediate", 0},      // one step up
		{"Hard", "Advanced", 0.1},        // at level
		{"Easy", "Expert", 0.1},          // well below level
		{"medium", "ADVANCED", 0.1},      // case-insensitive
		{"Impossible", "Beginner", 0},    // unknown difficulty
		{"Easy", "grandmaster", 0},       // unknown skill
		{"", "", 0},                      // both missing
	}

	for _, tt := range tests {
		if got := SkillAdjustment(tt.difficulty, tt.skill); got != tt.want {
			t.Errorf("SkillAdjustment(%q, %q) = %v, want %v", tt.difficulty, tt.skill, got, tt.want)
		}
	}
}
