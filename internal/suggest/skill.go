package suggest

import "strings"

var difficultyScores = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

var skillScores = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
	"expert":       4,
}

// SkillAdjustment compares recipe difficulty against the user's skill
// level and returns an additive scalar: +0.1 when the recipe is at or
// below the user's level, -0.2 when it is more than one step above, 0 in
// the stretch zone between. Unrecognized labels contribute nothing
// rather than failing the pass.
func SkillAdjustment(difficulty, skillLevel string) float64 {
	d, ok := difficultyScores[strings.ToLower(strings.TrimSpace(difficulty))]
	if !ok {
		return 0
	}
	s, ok := skillScores[strings.ToLower(strings.TrimSpace(skillLevel))]
	if !ok {
		return 0
	}

	switch {
	case d <= s:
		return 0.1
	case d > s+1:
		return -0.2
	default:
		return 0
	}
}
