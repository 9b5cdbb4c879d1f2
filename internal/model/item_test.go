package model

import (
	"errors"
	"testing"
	"time"
)

func f(v float64) *float64 { return &v }

func TestMetricsUndefinedWithoutSoldPrice(t *testing.T) {
	item := &Item{PurchasePrice: 40, ListedPrice: 55}
	m := ComputeMetrics(item)
	if m.Profit != nil {
		t.Errorf("expected undefined profit, got %v", *m.Profit)
	}
	if m.ROI != nil {
		t.Errorf("expected undefined ROI, got %v", *m.ROI)
	}
}

func TestMetricsProfitAndROI(t *testing.T) {
	item := &Item{
		PurchasePrice:      40,
		SoldPrice:          f(100),
		ShippingCost:       5,
		VintedFee:          3,
		BuyerProtectionFee: 2,
	}
	m := ComputeMetrics(item)
	if m.Profit == nil || *m.Profit != 50 {
		t.Errorf("expected profit 50, got %v", m.Profit)
	}
	if m.ROI == nil || *m.ROI != 125.0 {
		t.Errorf("expected ROI 125.0, got %v", m.ROI)
	}
}

func TestMetricsROIUndefinedForZeroPurchasePrice(t *testing.T) {
	item := &Item{PurchasePrice: 0, SoldPrice: f(100)}
	m := ComputeMetrics(item)
	if m.Profit == nil || *m.Profit != 100 {
		t.Errorf("expected profit 100, got %v", m.Profit)
	}
	if m.ROI != nil {
		t.Errorf("expected undefined ROI for zero purchase price, got %v", *m.ROI)
	}
}

func TestMetricsAllowLoss(t *testing.T) {
	// sold_price below cost is valid; profit just goes negative.
	item := &Item{PurchasePrice: 50, SoldPrice: f(20)}
	m := ComputeMetrics(item)
	if m.Profit == nil || *m.Profit != -30 {
		t.Errorf("expected profit -30, got %v", m.Profit)
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	item := &Item{ListedPrice: -1}
	err := item.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "brand", "category", "condition", "listed_price"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected violation for %q, got %v", field, verr.Fields)
		}
	}
}

func TestValidateAcceptsCompleteItem(t *testing.T) {
	item := &Item{
		Title:       "Zara Wool Coat",
		Brand:       "Zara",
		Category:    "Women's Clothing",
		Condition:   "Very good",
		ListedPrice: 55,
		Status:      StatusDraft,
	}
	if err := item.Validate(); err != nil {
		t.Errorf("expected valid item, got %v", err)
	}
}

func TestValidateRejectsUnknownStatus(t *testing.T) {
	item := &Item{
		Title:       "Coat",
		Brand:       "Zara",
		Category:    "Women's Clothing",
		Condition:   "Good",
		ListedPrice: 10,
		Status:      "pending",
	}
	err := item.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["status"]; !ok {
		t.Errorf("expected status violation, got %v", verr.Fields)
	}
}

func TestApplyUpdateSetsSoldAtOnSale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := &Item{Status: StatusActive}

	item.ApplyUpdate(ItemUpdate{SoldPrice: NullablePrice{Set: true, Value: f(30)}}, now)

	if item.SoldAt == nil || !item.SoldAt.Equal(now) {
		t.Errorf("expected sold_at %v, got %v", now, item.SoldAt)
	}
	if item.Status != StatusSold {
		t.Errorf("expected status sold, got %q", item.Status)
	}
	if !item.UpdatedAt.Equal(now) {
		t.Errorf("expected updated_at bumped to %v, got %v", now, item.UpdatedAt)
	}
}

func TestApplyUpdateStatusOverrideWins(t *testing.T) {
	now := time.Now()
	status := StatusArchived
	item := &Item{Status: StatusActive}

	item.ApplyUpdate(ItemUpdate{
		SoldPrice: NullablePrice{Set: true, Value: f(30)},
		Status:    &status,
	}, now)

	if item.Status != StatusArchived {
		t.Errorf("explicit status should win, got %q", item.Status)
	}
	if item.SoldAt == nil {
		t.Error("sold_at should still be set")
	}
}

func TestApplyUpdateClearsSoldAt(t *testing.T) {
	soldAt := time.Now().Add(-time.Hour)
	item := &Item{Status: StatusSold, SoldPrice: f(30), SoldAt: &soldAt}

	item.ApplyUpdate(ItemUpdate{SoldPrice: NullablePrice{Set: true, Value: nil}}, time.Now())

	if item.SoldPrice != nil {
		t.Errorf("expected sold_price cleared, got %v", *item.SoldPrice)
	}
	if item.SoldAt != nil {
		t.Errorf("expected sold_at cleared, got %v", item.SoldAt)
	}
}

func TestApplyUpdateSetsListedAtOnActivation(t *testing.T) {
	now := time.Now()
	status := StatusActive
	item := &Item{Status: StatusDraft}

	item.ApplyUpdate(ItemUpdate{Status: &status}, now)
	if item.ListedAt == nil {
		t.Fatal("expected listed_at set on first activation")
	}
	first := *item.ListedAt

	// A later update must not move the original listing time.
	item.ApplyUpdate(ItemUpdate{Views: intp(5)}, now.Add(time.Hour))
	if !item.ListedAt.Equal(first) {
		t.Errorf("listed_at moved from %v to %v", first, item.ListedAt)
	}
}

func TestApplyUpdatePartialMerge(t *testing.T) {
	item := &Item{Title: "Coat", Brand: "Zara", Views: 3}
	title := "Wool Coat"

	item.ApplyUpdate(ItemUpdate{Title: &title}, time.Now())

	if item.Title != "Wool Coat" {
		t.Errorf("expected title updated, got %q", item.Title)
	}
	if item.Brand != "Zara" || item.Views != 3 {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags([]string{" vintage ", "", "designer", "vintage", "  "})
	if len(tags) != 2 || tags[0] != "vintage" || tags[1] != "designer" {
		t.Errorf("unexpected tags: %v", tags)
	}
}

func intp(v int) *int { return &v }
