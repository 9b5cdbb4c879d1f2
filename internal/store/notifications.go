package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
)

// CreateNotification inserts a notification produced by the alert engine.
func CreateNotification(ctx context.Context, db *sql.DB, n *model.Notification) error {
	var itemID sql.NullString
	if n.ItemID != "" {
		itemID = sql.NullString{String: n.ItemID, Valid: true}
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO notifications (id, type, title, message, item_id, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Type, n.Title, n.Message, itemID, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// ListNotifications returns notifications, newest first, ties broken by ID
// ascending. With unreadOnly set, read notifications are filtered out.
func ListNotifications(ctx context.Context, db *sql.DB, unreadOnly bool) ([]model.Notification, error) {
	query := `SELECT id, type, title, message, item_id, read, created_at FROM notifications`
	if unreadOnly {
		query += ` WHERE read = 0`
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		var itemID sql.NullString
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &itemID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.ItemID = itemID.String
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead sets the read flag. Unknown IDs return
// model.ErrNotFound; marking an already-read notification is a no-op.
func MarkNotificationRead(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// HasUnreadNotification reports whether an unread notification of the given
// type already references the item. The alert engine uses this for its
// conditional-insert de-duplication.
func HasUnreadNotification(ctx context.Context, db *sql.DB, itemID, ntype string) (bool, error) {
	// Notifications without an item reference store NULL, not ''.
	query := `SELECT COUNT(*) FROM notifications WHERE type = ? AND read = 0 AND item_id = ?`
	args := []any{ntype, itemID}
	if itemID == "" {
		query = `SELECT COUNT(*) FROM notifications WHERE type = ? AND read = 0 AND item_id IS NULL`
		args = []any{ntype}
	}

	var count int
	err := db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking unread notification: %w", err)
	}
	return count > 0, nil
}
