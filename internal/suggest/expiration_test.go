package suggest

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(ts time.Time) *time.Time { return &ts }

func TestDaysLeft(t *testing.T) {
	today := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"same day", time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow morning", time.Date(2025, time.March, 11, 6, 0, 0, 0, time.UTC), 1},
		{"two days", date(2025, time.March, 12), 2},
		{"yesterday", time.Date(2025, time.March, 9, 23, 0, 0, 0, time.UTC), -1},
		{"a week out", date(2025, time.March, 17), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysLeft(today, tt.expiry); got != tt.want {
				t.Fatalf("DaysLeft = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	th := Thresholds{CriticalDays: 3, WarningDays: 7, UpcomingDays: 14}

	tests := []struct {
		daysLeft int
		want     Bucket
	}{
		{-5, BucketExpired},
		{-1, BucketExpired},
		{0, BucketCritical},
		{2, BucketCritical},
		{3, BucketCritical},
		{4, BucketWarning},
		{7, BucketWarning},
		{8, BucketUpcoming},
		{14, BucketUpcoming},
		{15, BucketFresh},
		{60, BucketFresh},
	}

	for _, tt := range tests {
		if got := Classify(tt.daysLeft, th); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.daysLeft, got, tt.want)
		}
	}
}

// Every day count must land in exactly one bucket: no gaps, no overlap.
func TestClassifyPartitions(t *testing.T) {
	thresholds := []Thresholds{
		{CriticalDays: 1, WarningDays: 2, UpcomingDays: 3},
		{CriticalDays: 3, WarningDays: 7, UpcomingDays: 14},
		{CriticalDays: 5, WarningDays: 10, UpcomingDays: 21},
	}

	for _, th := range thresholds {
		prev := BucketExpired
		for days := -10; days <= th.UpcomingDays+10; days++ {
			got := Classify(days, th)
			if got == "" {
				t.Fatalf("Classify(%d, %+v) returned empty bucket", days, th)
			}
			// Buckets only ever move toward fresh as days increase.
			if bucketRank(got) < bucketRank(prev) {
				t.Fatalf("bucket regressed from %s to %s at day %d (%+v)", prev, got, days, th)
			}
			prev = got
		}
		if Classify(0, th) != BucketCritical {
			t.Fatalf("day 0 must be critical for %+v", th)
		}
	}
}

func bucketRank(b Bucket) int {
	switch b {
	case BucketExpired:
		return 0
	case BucketCritical:
		return 1
	case BucketWarning:
		return 2
	case BucketUpcoming:
		return 3
	default:
		return 4
	}
}

func TestClassifyItems(t *testing.T) {
	today := date(2025, time.March, 10)
	items := []PerishableItem{
		{ID: 1, Name: "Rice"}, // no expiration date
		{ID: 2, Name: "Milk", ExpiresAt: datePtr(date(2025, time.March, 12))},
		{ID: 3, Name: "Yogurt", ExpiresAt: datePtr(date(2025, time.March, 11))},
		{ID: 4, Name: "Cheese", ExpiresAt: datePtr(date(2025, time.March, 12))},
		{ID: 5, Name: "Bread", ExpiresAt: datePtr(date(2025, time.March, 8))},
	}

	classified := ClassifyItems(today, items, DefaultThresholds())

	if len(classified) != 4 {
		t.Fatalf("expected 4 classified items (no-date item omitted), got %d", len(classified))
	}

	// Sorted soonest first; Milk before Cheese on the tie (input order).
	wantOrder := []int{5, 3, 2, 4}
	for i, want := range wantOrder {
		if classified[i].ID != want {
			t.Fatalf("position %d: got item %d, want %d", i, classified[i].ID, want)
		}
	}

	if classified[0].Bucket != BucketExpired {
		t.Fatalf("Bread should be expired, got %s", classified[0].Bucket)
	}
	if classified[1].Bucket != BucketCritical || classified[1].DaysLeft != 1 {
		t.Fatalf("Yogurt should be critical with 1 day left, got %s/%d", classified[1].Bucket, classified[1].DaysLeft)
	}
}

func TestExpiringExcludesFresh(t *testing.T) {
	today := date(2025, time.March, 10)
	items := []PerishableItem{
		{ID: 1, Name: "Milk", ExpiresAt: datePtr(date(2025, time.March, 12))},
		{ID: 2, Name: "Canned Beans", ExpiresAt: datePtr(date(2026, time.March, 10))},
	}

	expiring := Expiring(ClassifyItems(today, items, DefaultThresholds()))
	if len(expiring) != 1 || expiring[0].ID != 1 {
		t.Fatalf("expected only Milk to be expiring, got %+v", expiring)
	}
}

func TestThresholdsNormalized(t *testing.T) {
	th := Thresholds{}.normalized()
	if th != DefaultThresholds() {
		t.Fatalf("zero thresholds should normalize to defaults, got %+v", th)
	}

	th = Thresholds{CriticalDays: 10, WarningDays: 4, UpcomingDays: 2}.normalized()
	if th.WarningDays <= th.CriticalDays || th.UpcomingDays <= th.WarningDays {
		t.Fatalf("normalized thresholds must stay ordered, got %+v", th)
	}
}
