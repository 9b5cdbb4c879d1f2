package model

import (
	"encoding/json"
	"time"
)

// NullablePrice distinguishes an absent JSON field from an explicit null,
// so a patch can clear the sold price as well as set it.
type NullablePrice struct {
	Set   bool
	Value *float64
}

func (p *NullablePrice) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	return json.Unmarshal(b, &p.Value)
}

// ItemUpdate is a partial update: nil fields are left untouched.
type ItemUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Brand       *string   `json:"brand"`
	Size        *string   `json:"size"`
	Color       *string   `json:"color"`
	Condition   *string   `json:"condition"`
	Tags        *[]string `json:"tags"`

	PurchasePrice      *float64      `json:"purchase_price"`
	ListedPrice        *float64      `json:"listed_price"`
	SoldPrice          NullablePrice `json:"sold_price"`
	ShippingCost       *float64      `json:"shipping_cost"`
	VintedFee          *float64      `json:"vinted_fee"`
	BuyerProtectionFee *float64      `json:"buyer_protection_fee"`

	Views    *int `json:"views"`
	Likes    *int `json:"likes"`
	Watchers *int `json:"watchers"`
	Messages *int `json:"messages"`

	Status *string `json:"status"`
}

// ApplyUpdate merges the provided fields over the item and maintains the
// lifecycle timestamps:
//   - sold_price appearing sets sold_at and, unless the patch overrides the
//     status itself, moves the item to sold;
//   - sold_price being cleared clears sold_at;
//   - the first transition to active sets listed_at;
//   - updated_at is always bumped.
func (item *Item) ApplyUpdate(upd ItemUpdate, now time.Time) {
	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Brand != nil {
		item.Brand = *upd.Brand
	}
	if upd.Size != nil {
		item.Size = *upd.Size
	}
	if upd.Color != nil {
		item.Color = *upd.Color
	}
	if upd.Condition != nil {
		item.Condition = *upd.Condition
	}
	if upd.Tags != nil {
		item.Tags = NormalizeTags(*upd.Tags)
	}
	if upd.PurchasePrice != nil {
		item.PurchasePrice = *upd.PurchasePrice
	}
	if upd.ListedPrice != nil {
		item.ListedPrice = *upd.ListedPrice
	}
	if upd.ShippingCost != nil {
		item.ShippingCost = *upd.ShippingCost
	}
	if upd.VintedFee != nil {
		item.VintedFee = *upd.VintedFee
	}
	if upd.BuyerProtectionFee != nil {
		item.BuyerProtectionFee = *upd.BuyerProtectionFee
	}
	if upd.Views != nil {
		item.Views = *upd.Views
	}
	if upd.Likes != nil {
		item.Likes = *upd.Likes
	}
	if upd.Watchers != nil {
		item.Watchers = *upd.Watchers
	}
	if upd.Messages != nil {
		item.Messages = *upd.Messages
	}

	if upd.SoldPrice.Set {
		wasSold := item.SoldPrice != nil
		item.SoldPrice = upd.SoldPrice.Value
		switch {
		case !wasSold && item.SoldPrice != nil:
			soldAt := now
			item.SoldAt = &soldAt
			if upd.Status == nil {
				item.Status = StatusSold
			}
		case wasSold && item.SoldPrice == nil:
			item.SoldAt = nil
		}
	}

	if upd.Status != nil {
		item.Status = *upd.Status
	}

	if item.Status == StatusActive && item.ListedAt == nil {
		listedAt := now
		item.ListedAt = &listedAt
	}

	item.UpdatedAt = now
}
