package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// ItemFilter narrows and orders ListItems results. Empty filter fields pass
// everything through; SortBy selects the ordering field.
type ItemFilter struct {
	Status   string
	Category string
	Brand    string
	SortBy   string
}

// sortColumns maps ListItems sort names to columns. Unknown names fall back
// to creation date.
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"listed_price": "listed_price",
	"views":        "views",
	"likes":        "likes",
}

const itemColumns = `id, title, description, category, brand, size, color, condition, tags,
	 purchase_price, listed_price, sold_price, shipping_cost, vinted_fee, buyer_protection_fee,
	 views, likes, watchers, messages, status, created_at, updated_at, listed_at, sold_at`

// CreateItem persists a fully populated item record.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) error {
	var soldPrice sql.NullFloat64
	if item.SoldPrice != nil {
		soldPrice = sql.NullFloat64{Float64: *item.SoldPrice, Valid: true}
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, title, description, category, brand, size, color, condition, tags,
		   purchase_price, listed_price, sold_price, shipping_cost, vinted_fee, buyer_protection_fee,
		   views, likes, watchers, messages, status, created_at, updated_at, listed_at, sold_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.Category, item.Brand, item.Size, item.Color,
		item.Condition, strings.Join(item.Tags, ";"),
		item.PurchasePrice, item.ListedPrice, soldPrice, item.ShippingCost, item.VintedFee,
		item.BuyerProtectionFee,
		item.Views, item.Likes, item.Watchers, item.Messages, item.Status,
		item.CreatedAt, item.UpdatedAt, item.ListedAt, item.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// CreateItems persists a batch of items. Rows are inserted independently:
// a failing row is logged and skipped, the rest continue. Returns the items
// that were actually stored.
func CreateItems(ctx context.Context, db *sql.DB, items []model.Item) ([]model.Item, error) {
	created := make([]model.Item, 0, len(items))
	for i := range items {
		if err := CreateItem(ctx, db, &items[i]); err != nil {
			slog.Warn("skipping batch row", "title", items[i].Title, "error", err)
			continue
		}
		created = append(created, items[i])
	}
	return created, nil
}

// GetItem returns an item by ID with its photo set, or nil if unknown.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	photos, err := GetPhotos(ctx, db, id)
	if err != nil {
		return nil, err
	}
	item.Photos = photos
	return item, nil
}

// ListItems returns items matching the filter. Photo sets are not loaded.
// Ordering is by the selected sort field descending, ties broken by ID
// ascending for determinism.
func ListItems(ctx context.Context, db *sql.DB, f ItemFilter) ([]model.Item, error) {
	where := []string{}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.Brand != "" {
		where = append(where, "brand = ?")
		args = append(args, f.Brand)
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	sortCol, ok := sortColumns[f.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	query += fmt.Sprintf(" ORDER BY %s DESC, id ASC", sortCol)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem overwrites an item row. Returns model.ErrNotFound for an
// unknown ID.
func UpdateItem(ctx context.Context, db *sql.DB, item *model.Item) error {
	var soldPrice sql.NullFloat64
	if item.SoldPrice != nil {
		soldPrice = sql.NullFloat64{Float64: *item.SoldPrice, Valid: true}
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET title = ?, description = ?, category = ?, brand = ?, size = ?, color = ?,
		   condition = ?, tags = ?, purchase_price = ?, listed_price = ?, sold_price = ?,
		   shipping_cost = ?, vinted_fee = ?, buyer_protection_fee = ?,
		   views = ?, likes = ?, watchers = ?, messages = ?, status = ?,
		   updated_at = ?, listed_at = ?, sold_at = ?
		 WHERE id = ?`,
		item.Title, item.Description, item.Category, item.Brand, item.Size, item.Color,
		item.Condition, strings.Join(item.Tags, ";"),
		item.PurchasePrice, item.ListedPrice, soldPrice,
		item.ShippingCost, item.VintedFee, item.BuyerProtectionFee,
		item.Views, item.Likes, item.Watchers, item.Messages, item.Status,
		item.UpdatedAt, item.ListedAt, item.SoldAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item and, via cascade, its photo set. Deleting an
// unknown (or already deleted) ID returns model.ErrNotFound.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var description, size, color, condition, tags sql.NullString
	var soldPrice sql.NullFloat64
	var listedAt, soldAt sql.NullTime

	err := row.Scan(
		&item.ID, &item.Title, &description, &item.Category, &item.Brand, &size, &color,
		&condition, &tags,
		&item.PurchasePrice, &item.ListedPrice, &soldPrice, &item.ShippingCost,
		&item.VintedFee, &item.BuyerProtectionFee,
		&item.Views, &item.Likes, &item.Watchers, &item.Messages, &item.Status,
		&item.CreatedAt, &item.UpdatedAt, &listedAt, &soldAt,
	)
	if err != nil {
		return nil, err
	}

	item.Description = description.String
	item.Size = size.String
	item.Color = color.String
	item.Condition = condition.String
	if tags.String != "" {
		item.Tags = strings.Split(tags.String, ";")
	} else {
		item.Tags = []string{}
	}
	if soldPrice.Valid {
		item.SoldPrice = &soldPrice.Float64
	}
	if listedAt.Valid {
		t := listedAt.Time
		item.ListedAt = &t
	}
	if soldAt.Valid {
		t := soldAt.Time
		item.SoldAt = &t
	}
	return item, nil
}
