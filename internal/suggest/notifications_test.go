package suggest

import (
	"testing"
	"time"
)

func TestComposeNotifications(t *testing.T) {
	today := date(2025, time.March, 10)
	items := []PerishableItem{
		{ID: 1, Name: "Milk", ExpiresAt: datePtr(date(2025, time.March, 12))},
		{ID: 2, Name: "Bread", ExpiresAt: datePtr(date(2025, time.March, 7))},
		{ID: 3, Name: "Yogurt", ExpiresAt: datePtr(date(2025, time.March, 10))},
		{ID: 4, Name: "Cheese", ExpiresAt: datePtr(date(2025, time.March, 11))},
		{ID: 5, Name: "Butter", ExpiresAt: datePtr(date(2025, time.March, 16))},
		{ID: 6, Name: "Apples", ExpiresAt: datePtr(date(2025, time.March, 20))}, // upcoming: no alert
		{ID: 7, Name: "Rice"}, // no date: no alert
	}

	notifications := ComposeNotifications(today, items, KindIngredient, DefaultThresholds())

	want := map[int]string{
		2: "Bread expired 3 days ago",
		3: "Yogurt expires today (critical)",
		4: "Cheese expires tomorrow (critical)",
		1: "Milk expires in 2 days (critical)",
		5: "Butter expires in 6 days (warning)",
	}
	if len(notifications) != len(want) {
		t.Fatalf("got %d notifications, want %d: %+v", len(notifications), len(want), notifications)
	}
	for _, n := range notifications {
		msg, ok := want[n.ItemID]
		if !ok {
			t.Fatalf("unexpected notification for item %d: %q", n.ItemID, n.Message)
		}
		if n.Message != msg {
			t.Fatalf("item %d message = %q, want %q", n.ItemID, n.Message, msg)
		}
		if n.ItemKind != KindIngredient {
			t.Fatalf("item %d kind = %s", n.ItemID, n.ItemKind)
		}
	}

	// Sorted soonest first, like every expiration view.
	wantOrder := []int{2, 3, 4, 1, 5}
	for i, id := range wantOrder {
		if notifications[i].ItemID != id {
			t.Fatalf("position %d: got item %d, want %d", i, notifications[i].ItemID, id)
		}
	}
}

func TestComposeNotificationsSeverities(t *testing.T) {
	today := date(2025, time.March, 10)
	items := []PerishableItem{
		{ID: 1, Name: "Old Soup", ExpiresAt: datePtr(date(2025, time.March, 9))},
		{ID: 2, Name: "Lasagna", ExpiresAt: datePtr(date(2025, time.March, 11))},
		{ID: 3, Name: "Curry", ExpiresAt: datePtr(date(2025, time.March, 15))},
	}

	notifications := ComposeNotifications(today, items, KindLeftover, DefaultThresholds())

	wantSeverity := map[int]Bucket{1: BucketExpired, 2: BucketCritical, 3: BucketWarning}
	for _, n := range notifications {
		if n.Severity != wantSeverity[n.ItemID] {
			t.Fatalf("item %d severity = %s, want %s", n.ItemID, n.Severity, wantSeverity[n.ItemID])
		}
		if n.ItemKind != KindLeftover {
			t.Fatalf("item %d should be tagged as leftover", n.ItemID)
		}
	}

	if notifications[0].Message != "Old Soup expired 1 day ago" {
		t.Fatalf("singular phrasing wrong: %q", notifications[0].Message)
	}
}
