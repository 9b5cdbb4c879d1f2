package alerts

import (
	"testing"
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestNeedsRenewal(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	listed := now.Add(-40 * 24 * time.Hour)

	item := &model.Item{Status: model.StatusActive, ListedAt: &listed, UpdatedAt: now}
	if !NeedsRenewal(item, now, DefaultRenewalThreshold) {
		t.Error("40 day old listing should need renewal")
	}

	// The listing start wins over a recent update.
	item.UpdatedAt = now.Add(-time.Hour)
	if !NeedsRenewal(item, now, DefaultRenewalThreshold) {
		t.Error("recent update should not reset the renewal clock")
	}

	fresh := now.Add(-10 * 24 * time.Hour)
	item.ListedAt = &fresh
	if NeedsRenewal(item, now, DefaultRenewalThreshold) {
		t.Error("10 day old listing should not need renewal")
	}

	// No listing start: fall back to the last update.
	stale := &model.Item{Status: model.StatusActive, UpdatedAt: now.Add(-31 * 24 * time.Hour)}
	if !NeedsRenewal(stale, now, DefaultRenewalThreshold) {
		t.Error("stale item without listed_at should need renewal")
	}

	sold := &model.Item{Status: model.StatusSold, ListedAt: &listed}
	if NeedsRenewal(sold, now, DefaultRenewalThreshold) {
		t.Error("sold items never need renewal")
	}
}

func TestLowEngagement(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	old := now.Add(-61 * 24 * time.Hour)
	recent := now.Add(-30 * 24 * time.Hour)

	cases := []struct {
		name string
		item model.Item
		want bool
	}{
		{"old and unseen", model.Item{Status: model.StatusActive, ListedAt: &old, Views: 3}, true},
		{"old but popular", model.Item{Status: model.StatusActive, ListedAt: &old, Views: 50}, false},
		{"too recent", model.Item{Status: model.StatusActive, ListedAt: &recent, Views: 0}, false},
		{"never listed", model.Item{Status: model.StatusActive, Views: 0}, false},
		{"not active", model.Item{Status: model.StatusDraft, ListedAt: &old, Views: 0}, false},
	}
	for _, tc := range cases {
		if got := LowEngagement(&tc.item, now); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBelowTarget(t *testing.T) {
	sold := &model.Item{
		Status:        model.StatusSold,
		PurchasePrice: 50,
		SoldPrice:     fp(60),
	}
	// profit 10 on 50 = 20% roi
	if !BelowTarget(sold, 30.0) {
		t.Error("20%% roi should be below a 30%% target")
	}
	if BelowTarget(sold, 15.0) {
		t.Error("20%% roi should not be below a 15%% target")
	}

	free := &model.Item{Status: model.StatusSold, PurchasePrice: 0, SoldPrice: fp(40)}
	if BelowTarget(free, 30.0) {
		t.Error("undefined roi should never trigger")
	}

	active := &model.Item{Status: model.StatusActive, PurchasePrice: 50, SoldPrice: fp(60)}
	if BelowTarget(active, 30.0) {
		t.Error("only sold items are checked")
	}
}
