package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// GetPhotos returns an item's photo set in display order.
func GetPhotos(ctx context.Context, db *sql.DB, itemID string) (model.PhotoSet, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, data, mime, is_main FROM photos
		 WHERE item_id = ? ORDER BY position`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting photos: %w", err)
	}
	defer rows.Close()

	photos := model.PhotoSet{}
	for rows.Next() {
		var p model.Photo
		var name sql.NullString
		if err := rows.Scan(&p.ID, &name, &p.Data, &p.MIME, &p.Main); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		p.Name = name.String
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// SavePhotos replaces an item's stored photo set with the given one. The
// set is small (at most model.MaxPhotos), so a delete-and-reinsert inside a
// transaction keeps positions and flags trivially consistent.
func SavePhotos(ctx context.Context, db *sql.DB, itemID string, photos model.PhotoSet) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving photos: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("clearing photos: %w", err)
	}

	for pos, p := range photos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO photos (id, item_id, position, name, data, mime, is_main)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, itemID, pos, p.Name, p.Data, p.MIME, p.Main,
		)
		if err != nil {
			return fmt.Errorf("inserting photo: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving photos: %w", err)
	}
	return nil
}
