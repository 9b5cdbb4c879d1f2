// Package alerts evaluates listing and profitability rules against the
// inventory and records the resulting notifications. Evaluation is
// on-demand: callers trigger a sweep and the engine inserts at most one
// unread notification per item and rule, so repeated sweeps do not pile
// up duplicates.
package alerts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// Engine runs alert sweeps against the database.
type Engine struct {
	DB               *sql.DB
	RenewalThreshold time.Duration
}

// NewEngine returns an engine with the default renewal threshold.
func NewEngine(db *sql.DB) *Engine {
	return &Engine{DB: db, RenewalThreshold: DefaultRenewalThreshold}
}

// EvaluateProfitAlerts checks every sold item against the configured ROI
// target and records a profit_alert for each one below it. Returns the
// number of notifications created.
func (e *Engine) EvaluateProfitAlerts(ctx context.Context) (int, error) {
	target, err := store.GetROITarget(ctx, e.DB, DefaultROITarget)
	if err != nil {
		return 0, fmt.Errorf("failed to load roi target: %w", err)
	}

	items, err := store.ListItems(ctx, e.DB, store.ItemFilter{Status: model.StatusSold})
	if err != nil {
		return 0, fmt.Errorf("failed to list sold items: %w", err)
	}

	created := 0
	for _, item := range items {
		if !BelowTarget(&item, target) {
			continue
		}
		m := model.ComputeMetrics(&item)
		n := &model.Notification{
			Type:    model.NotifProfitAlert,
			Title:   "ROI below target",
			Message: fmt.Sprintf("%q sold at %.1f%% ROI, under your %.1f%% target", item.Title, *m.ROI, target),
			ItemID:  item.ID,
		}
		ok, err := e.record(ctx, n)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	slog.Info("profit alert sweep finished", "target", target, "created", created)
	return created, nil
}

// EvaluateRenewals records a listing_renewal notification for every active
// listing older than the engine's renewal threshold. Returns the number of
// notifications created.
func (e *Engine) EvaluateRenewals(ctx context.Context, now time.Time) (int, error) {
	items, err := store.ListItems(ctx, e.DB, store.ItemFilter{Status: model.StatusActive})
	if err != nil {
		return 0, fmt.Errorf("failed to list active items: %w", err)
	}

	created := 0
	for _, item := range items {
		if !NeedsRenewal(&item, now, e.RenewalThreshold) {
			continue
		}
		days := int(e.RenewalThreshold / (24 * time.Hour))
		n := &model.Notification{
			Type:    model.NotifListingRenewal,
			Title:   "Listing needs renewal",
			Message: fmt.Sprintf("%q has been listed for over %d days, consider renewing it", item.Title, days),
			ItemID:  item.ID,
		}
		ok, err := e.record(ctx, n)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	slog.Info("renewal sweep finished", "created", created)
	return created, nil
}

// CheckMilestone records a milestone notification when the month's profit
// has reached the goal. Returns true if a notification was created.
func (e *Engine) CheckMilestone(ctx context.Context, monthlyProfit, goal float64) (bool, error) {
	if goal <= 0 || monthlyProfit < goal {
		return false, nil
	}
	n := &model.Notification{
		Type:    model.NotifMilestone,
		Title:   "Monthly goal reached",
		Message: fmt.Sprintf("You made %.2f profit this month, passing your %.2f goal", monthlyProfit, goal),
	}
	return e.record(ctx, n)
}

// record inserts the notification unless an unread one with the same item
// and type already exists. The notification's ID and timestamp are filled
// in here.
func (e *Engine) record(ctx context.Context, n *model.Notification) (bool, error) {
	exists, err := store.HasUnreadNotification(ctx, e.DB, n.ItemID, n.Type)
	if err != nil {
		return false, fmt.Errorf("failed to check existing notifications: %w", err)
	}
	if exists {
		return false, nil
	}

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if err := store.CreateNotification(ctx, e.DB, n); err != nil {
		return false, fmt.Errorf("failed to record notification: %w", err)
	}
	return true, nil
}
