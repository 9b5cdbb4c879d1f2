// Package csvio maps item records to and from a tabular text format for
// bulk import and export.
//
// Import uses a deliberately relaxed parser matching the files this tracker
// targets (simple marketplace exports): fields are split on commas and
// double quotes are stripped, so commas embedded inside quoted fields are
// not preserved. Export writes well-formed CSV via encoding/csv. The
// asymmetry is intentional and documented here rather than "fixed".
package csvio

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// headerAliases maps lowercased import header names to canonical fields.
var headerAliases = map[string]string{
	"title":          "title",
	"name":           "title",
	"brand":          "brand",
	"category":       "category",
	"size":           "size",
	"color":          "color",
	"colour":         "color",
	"condition":      "condition",
	"purchase_price": "purchase_price",
	"purchase price": "purchase_price",
	"cost":           "purchase_price",
	"listed_price":   "listed_price",
	"listed price":   "listed_price",
	"price":          "listed_price",
	"description":    "description",
	"tags":           "tags",
}

// exportColumns is the fixed export column order.
var exportColumns = []string{
	"title", "brand", "category", "size", "color", "condition",
	"purchase_price", "listed_price", "sold_price", "shipping_cost",
	"vinted_fee", "buyer_protection_fee", "views", "likes", "watchers",
	"messages", "status", "description", "tags", "created_at",
}

// Parse reads CSV text (header row plus data rows) into item records.
// Headers are matched case-insensitively against the alias table;
// unrecognized headers are ignored. Malformed numbers coerce to 0. A row is
// dropped unless title, brand and category are all non-empty after mapping;
// dropped rows are only counted, not reported.
func Parse(text string) (accepted []model.Item, rejected int) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, 0
	}

	headers := splitFields(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}

	for _, line := range lines[1:] {
		values := splitFields(line)

		var item model.Item
		for i, header := range headers {
			var value string
			if i < len(values) {
				value = values[i]
			}
			switch headerAliases[header] {
			case "title":
				item.Title = value
			case "brand":
				item.Brand = value
			case "category":
				item.Category = value
			case "size":
				item.Size = value
			case "color":
				item.Color = value
			case "condition":
				item.Condition = value
			case "purchase_price":
				item.PurchasePrice = parseFloat(value)
			case "listed_price":
				item.ListedPrice = parseFloat(value)
			case "description":
				item.Description = value
			case "tags":
				item.Tags = model.NormalizeTags(strings.Split(value, ";"))
			}
		}

		// Admission filter: the sole requirement for bulk import.
		if item.Title == "" || item.Brand == "" || item.Category == "" {
			rejected++
			continue
		}
		accepted = append(accepted, item)
	}

	return accepted, rejected
}

// Serialize writes items as CSV with the fixed export column order. Absent
// optional values render as empty fields.
func Serialize(items []model.Item) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(exportColumns); err != nil {
		return "", err
	}

	for _, item := range items {
		soldPrice := ""
		if item.SoldPrice != nil {
			soldPrice = formatFloat(*item.SoldPrice)
		}
		row := []string{
			item.Title,
			item.Brand,
			item.Category,
			item.Size,
			item.Color,
			item.Condition,
			formatFloat(item.PurchasePrice),
			formatFloat(item.ListedPrice),
			soldPrice,
			formatFloat(item.ShippingCost),
			formatFloat(item.VintedFee),
			formatFloat(item.BuyerProtectionFee),
			strconv.Itoa(item.Views),
			strconv.Itoa(item.Likes),
			strconv.Itoa(item.Watchers),
			strconv.Itoa(item.Messages),
			item.Status,
			item.Description,
			strings.Join(item.Tags, ";"),
			formatTime(item.CreatedAt),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return sb.String(), w.Error()
}

// splitFields splits a line on commas, trims whitespace and strips double
// quotes. Commas inside quoted fields are not escaped (relaxed mode).
func splitFields(line string) []string {
	parts := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
	}
	return parts
}

// parseFloat coerces malformed numbers to 0 instead of failing the row.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
