package suggest

import (
	"fmt"
	"time"
)

// Notification is one user-facing expiration alert, derived fresh each
// pass. Severity is always expired, critical or warning; upcoming and
// fresh items never alert.
type Notification struct {
	ItemID   int      `json:"item_id"`
	ItemKind ItemKind `json:"item_kind"`
	Severity Bucket   `json:"severity"`
	Message  string   `json:"message"`
	DaysLeft int      `json:"days_left"`
}

// ComposeNotifications builds exactly one notification per item in the
// expired, critical or warning buckets. Ingredients and leftovers are
// composed in separate passes tagged with kind; no deduplication happens
// across the two.
func ComposeNotifications(today time.Time, items []PerishableItem, kind ItemKind, t Thresholds) []Notification {
	notifications := make([]Notification, 0, len(items))
	for _, item := range ClassifyItems(today, items, t) {
		switch item.Bucket {
		case BucketExpired, BucketCritical, BucketWarning:
		default:
			continue
		}
		notifications = append(notifications, Notification{
			ItemID:   item.ID,
			ItemKind: kind,
			Severity: item.Bucket,
			Message:  expirationMessage(item.Name, item.DaysLeft, item.Bucket),
			DaysLeft: item.DaysLeft,
		})
	}
	return notifications
}

// expirationMessage phrases a day count the way it is phrased everywhere
// else in the app: today, tomorrow, in N days, or N day(s) ago.
func expirationMessage(name string, daysLeft int, bucket Bucket) string {
	switch {
	case daysLeft < 0:
		ago := -daysLeft
		if ago == 1 {
			return fmt.Sprintf("%s expired 1 day ago", name)
		}
		return fmt.Sprintf("%s expired %d days ago", name, ago)
	case daysLeft == 0:
		return fmt.Sprintf("%s expires today (%s)", name, bucket)
	case daysLeft == 1:
		return fmt.Sprintf("%s expires tomorrow (%s)", name, bucket)
	default:
		return fmt.Sprintf("%s expires in %d days (%s)", name, daysLeft, bucket)
	}
}
