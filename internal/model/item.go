package model

import (
	"strings"
	"time"
)

// Item represents one trackable resale inventory unit with its acquisition,
// listing and sale facts. Profit and ROI are never stored; they are derived
// on demand by ComputeMetrics.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Size        string   `json:"size,omitempty"`
	Color       string   `json:"color,omitempty"`
	Condition   string   `json:"condition"`
	Tags        []string `json:"tags"`

	PurchasePrice      float64  `json:"purchase_price"`
	ListedPrice        float64  `json:"listed_price"`
	SoldPrice          *float64 `json:"sold_price,omitempty"`
	ShippingCost       float64  `json:"shipping_cost"`
	VintedFee          float64  `json:"vinted_fee"`
	BuyerProtectionFee float64  `json:"buyer_protection_fee"`

	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Watchers int `json:"watchers"`
	Messages int `json:"messages"`

	Status string `json:"status"`

	Photos []Photo `json:"photos"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ListedAt  *time.Time `json:"listed_at,omitempty"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
}

// Item statuses.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusArchived = "archived"
)

// Statuses lists all valid item statuses.
var Statuses = []string{StatusDraft, StatusActive, StatusSold, StatusArchived}

// Categories lists the canonical item categories.
var Categories = []string{
	"Women's Clothing",
	"Men's Clothing",
	"Shoes",
	"Accessories",
	"Bags",
	"Jewelry",
	"Home & Garden",
	"Electronics",
}

// Conditions lists the canonical item conditions.
var Conditions = []string{
	"New with tags",
	"New without tags",
	"Very good",
	"Good",
	"Satisfactory",
}

// ValidStatus reports whether s is a known item status.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Metrics holds the derived financial figures for an item. Nil fields mean
// the value is undefined: profit requires a sold price, ROI additionally
// requires a positive purchase price (never Infinity or NaN).
type Metrics struct {
	Profit *float64 `json:"profit,omitempty"`
	ROI    *float64 `json:"roi,omitempty"`
}

// ComputeMetrics derives profit and ROI from an item's financial facts.
func ComputeMetrics(item *Item) Metrics {
	var m Metrics
	if item.SoldPrice == nil {
		return m
	}
	profit := *item.SoldPrice - (item.PurchasePrice + item.ShippingCost + item.VintedFee + item.BuyerProtectionFee)
	m.Profit = &profit
	if item.PurchasePrice > 0 {
		roi := profit / item.PurchasePrice * 100
		m.ROI = &roi
	}
	return m
}

// Validate checks the item's required fields and constraints, collecting
// every violation instead of stopping at the first.
func (item *Item) Validate() error {
	violations := map[string]string{}

	if strings.TrimSpace(item.Title) == "" {
		violations["title"] = "title is required"
	}
	if strings.TrimSpace(item.Brand) == "" {
		violations["brand"] = "brand is required"
	}
	if strings.TrimSpace(item.Category) == "" {
		violations["category"] = "category is required"
	}
	if strings.TrimSpace(item.Condition) == "" {
		violations["condition"] = "condition is required"
	}
	if item.ListedPrice < 0 {
		violations["listed_price"] = "listed price must not be negative"
	}
	if item.PurchasePrice < 0 {
		violations["purchase_price"] = "purchase price must not be negative"
	}
	if item.SoldPrice != nil && *item.SoldPrice < 0 {
		violations["sold_price"] = "sold price must not be negative"
	}
	if item.ShippingCost < 0 {
		violations["shipping_cost"] = "shipping cost must not be negative"
	}
	if item.VintedFee < 0 {
		violations["vinted_fee"] = "vinted fee must not be negative"
	}
	if item.BuyerProtectionFee < 0 {
		violations["buyer_protection_fee"] = "buyer protection fee must not be negative"
	}
	if item.Status != "" && !ValidStatus(item.Status) {
		violations["status"] = "unknown status"
	}

	if len(violations) > 0 {
		return &ValidationError{Fields: violations}
	}
	return nil
}

// NormalizeTags trims whitespace, drops empty entries and deduplicates while
// preserving first-seen order.
func NormalizeTags(tags []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
