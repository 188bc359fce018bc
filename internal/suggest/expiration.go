package suggest

import (
	"math"
	"sort"
	"time"
)

// ClassifiedItem is a PerishableItem annotated with its urgency bucket
// and day count for one evaluation pass.
type ClassifiedItem struct {
	PerishableItem
	Bucket   Bucket
	DaysLeft int
}

// DaysLeft returns the number of whole days from today until expiry,
// comparing both at midnight in today's location. The ceiling matters:
// it is what separates "expires tomorrow" from "expires today" when the
// timestamps carry a time-of-day component.
func DaysLeft(today, expiry time.Time) int {
	from := midnight(today)
	to := midnight(expiry.In(today.Location()))
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

func midnight(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// Classify maps a day count onto an urgency bucket. The buckets
// partition the day line with no gaps: anything below zero is expired,
// anything beyond UpcomingDays is fresh.
func Classify(daysLeft int, t Thresholds) Bucket {
	t = t.normalized()
	switch {
	case daysLeft < 0:
		return BucketExpired
	case daysLeft <= t.CriticalDays:
		return BucketCritical
	case daysLeft <= t.WarningDays:
		return BucketWarning
	case daysLeft <= t.UpcomingDays:
		return BucketUpcoming
	default:
		return BucketFresh
	}
}

// ClassifyItems classifies every item that carries an expiration date.
// Items without one are omitted entirely, not reported as fresh. The
// result is sorted soonest-first; the sort is stable so same-date items
// keep their input order.
func ClassifyItems(today time.Time, items []PerishableItem, t Thresholds) []ClassifiedItem {
	t = t.normalized()

	classified := make([]ClassifiedItem, 0, len(items))
	for _, item := range items {
		if item.ExpiresAt == nil {
			continue
		}
		days := DaysLeft(today, *item.ExpiresAt)
		classified = append(classified, ClassifiedItem{
			PerishableItem: item,
			Bucket:         Classify(days, t),
			DaysLeft:       days,
		})
	}

	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].ExpiresAt.Before(*classified[j].ExpiresAt)
	})

	return classified
}

// Expiring filters classified items down to the ones worth surfacing on
// an expiration view: everything but fresh.
func Expiring(items []ClassifiedItem) []ClassifiedItem {
	out := make([]ClassifiedItem, 0, len(items))
	for _, item := range items {
		if item.Bucket != BucketFresh {
			out = append(out, item)
		}
	}
	return out
}
