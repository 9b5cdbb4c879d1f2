package alerts

import (
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// DefaultRenewalThreshold is how long an active listing may sit untouched
// before a renewal reminder is due.
const DefaultRenewalThreshold = 30 * 24 * time.Hour

// Low-engagement rule: active for at least this long with fewer views than
// the floor.
const (
	lowEngagementAge = 60 * 24 * time.Hour
	lowViewsFloor    = 10
)

// DefaultROITarget is the target percentage used before one is configured.
const DefaultROITarget = 30.0

// NeedsRenewal reports whether an active listing is older than the renewal
// threshold. The listing start is preferred as the reference point; items
// that were never explicitly listed fall back to their last update.
func NeedsRenewal(item *model.Item, now time.Time, threshold time.Duration) bool {
	if item.Status != model.StatusActive {
		return false
	}
	ref := item.UpdatedAt
	if item.ListedAt != nil {
		ref = *item.ListedAt
	}
	return now.Sub(ref) > threshold
}

// LowEngagement reports whether an active listing has been up for 60 days
// or more with fewer than 10 views.
func LowEngagement(item *model.Item, now time.Time) bool {
	if item.Status != model.StatusActive || item.ListedAt == nil {
		return false
	}
	return now.Sub(*item.ListedAt) >= lowEngagementAge && item.Views < lowViewsFloor
}

// BelowTarget reports whether a sold item's ROI is defined and under the
// target percentage.
func BelowTarget(item *model.Item, target float64) bool {
	if item.Status != model.StatusSold {
		return false
	}
	m := model.ComputeMetrics(item)
	return m.ROI != nil && *m.ROI < target
}
