// Package stats aggregates inventory figures for the dashboard and
// per-item analytics. Everything here is a pure fold over item slices;
// the API layer decides what to load and when.
package stats

import (
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/alerts"
	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// DashboardStats summarizes the whole inventory at a point in time.
// Monthly figures cover the current calendar month.
type DashboardStats struct {
	TotalItems          int     `json:"total_items"`
	ActiveListings      int     `json:"active_listings"`
	SoldItems           int     `json:"sold_items"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalProfit         float64 `json:"total_profit"`
	AverageROI          float64 `json:"average_roi"`
	ItemsNeedingRenewal int     `json:"items_needing_renewal"`
	LowPerformingItems  int     `json:"low_performing_items"`
	MonthlyProfit       float64 `json:"monthly_profit"`
	MonthlySalesCount   int     `json:"monthly_sales_count"`
}

// Performance holds engagement figures for a single listing. All fields
// stay zero for items that were never listed.
type Performance struct {
	ViewsPerDay    float64 `json:"views_per_day"`
	LikesPerDay    float64 `json:"likes_per_day"`
	EngagementRate float64 `json:"engagement_rate"`
	TimeActive     int     `json:"time_active"`
}

// Compute folds the item collection into dashboard statistics. Only sold
// items contribute to revenue, profit and ROI; items with a zero purchase
// price are left out of the ROI average.
func Compute(items []model.Item, now time.Time) DashboardStats {
	var s DashboardStats
	s.TotalItems = len(items)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var roiSum float64
	var roiCount int
	for i := range items {
		item := &items[i]
		switch item.Status {
		case model.StatusActive:
			s.ActiveListings++
			if alerts.NeedsRenewal(item, now, alerts.DefaultRenewalThreshold) {
				s.ItemsNeedingRenewal++
			}
			if alerts.LowEngagement(item, now) {
				s.LowPerformingItems++
			}
		case model.StatusSold:
			s.SoldItems++
			m := model.ComputeMetrics(item)
			if m.Profit == nil {
				continue
			}
			s.TotalRevenue += *item.SoldPrice
			s.TotalProfit += *m.Profit
			if item.SoldAt != nil && !item.SoldAt.Before(monthStart) {
				s.MonthlyProfit += *m.Profit
				s.MonthlySalesCount++
			}
			if m.ROI != nil {
				roiSum += *m.ROI
				roiCount++
			}
		}
	}
	if roiCount > 0 {
		s.AverageROI = roiSum / float64(roiCount)
	}
	return s
}

// ItemPerformance derives per-day engagement figures for one item. The
// first day of a listing counts as a full day so fresh listings do not
// divide by zero.
func ItemPerformance(item *model.Item, now time.Time) Performance {
	var p Performance
	if item.ListedAt == nil {
		return p
	}
	days := int(now.Sub(*item.ListedAt).Hours() / 24)
	if days < 1 {
		days = 1
	}
	p.TimeActive = days
	p.ViewsPerDay = float64(item.Views) / float64(days)
	p.LikesPerDay = float64(item.Likes) / float64(days)
	if item.Views > 0 {
		p.EngagementRate = float64(item.Likes) / float64(item.Views) * 100
	}
	return p
}
