package suggest

import "testing"

func TestRankFiltersAndSorts(t *testing.T) {
	suggestions := []Suggestion{
		{ID: "suggestion-1", RecipeID: 1, Priority: 50, MatchScore: 0.6},
		{ID: "suggestion-2", RecipeID: 2, Priority: 120, MatchScore: 0.9},
		{ID: "suggestion-3", RecipeID: 3, Priority: 80, MatchScore: 0.3},  // at floor: dropped
		{ID: "suggestion-4", RecipeID: 4, Priority: 200, MatchScore: 0.2}, // below floor: dropped
		{ID: "suggestion-5", RecipeID: 5, Priority: 90, MatchScore: 0.5},
	}

	ranked := Rank(suggestions, RankOptions{})

	wantIDs := []string{"suggestion-2", "suggestion-5", "suggestion-1"}
	if len(ranked) != len(wantIDs) {
		t.Fatalf("got %d suggestions, want %d", len(ranked), len(wantIDs))
	}
	for i, want := range wantIDs {
		if ranked[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].ID, want)
		}
	}
	for _, s := range ranked {
		if s.MatchScore <= MinMatchScore {
			t.Fatalf("suggestion %s with score %v leaked past the floor", s.ID, s.MatchScore)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	suggestions := []Suggestion{
		{ID: "suggestion-1", Priority: 100, MatchScore: 0.5},
		{ID: "suggestion-2", Priority: 100, MatchScore: 0.5},
		{ID: "suggestion-3", Priority: 100, MatchScore: 0.5},
	}

	ranked := Rank(suggestions, RankOptions{})
	for i, want := range []string{"suggestion-1", "suggestion-2", "suggestion-3"} {
		if ranked[i].ID != want {
			t.Fatalf("tie order not preserved: position %d is %s", i, ranked[i].ID)
		}
	}
}

func TestRankTruncates(t *testing.T) {
	var suggestions []Suggestion
	for i := 0; i < 20; i++ {
		suggestions = append(suggestions, Suggestion{
			ID:         "suggestion-" + string(rune('a'+i)),
			Priority:   i,
			MatchScore: 0.8,
		})
	}

	if got := Rank(suggestions, RankOptions{}); len(got) != DefaultLimit {
		t.Fatalf("default limit not applied, got %d", len(got))
	}
	if got := Rank(suggestions, RankOptions{Limit: 3}); len(got) != 3 {
		t.Fatalf("explicit limit not applied, got %d", len(got))
	}
}

func TestRankDropsDismissed(t *testing.T) {
	suggestions := []Suggestion{
		{ID: "suggestion-1", Priority: 100, MatchScore: 0.9},
		{ID: "suggestion-2", Priority: 90, MatchScore: 0.8},
	}
	dismissed := map[string]struct{}{"suggestion-1": {}}

	ranked := Rank(suggestions, RankOptions{Dismissed: dismissed})
	if len(ranked) != 1 || ranked[0].ID != "suggestion-2" {
		t.Fatalf("dismissed suggestion leaked through: %+v", ranked)
	}
}
