package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
)

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('jwt_secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'jwt_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying jwt_secret: %w", err)
	}

	return secret, nil
}

// GetROITarget returns the current ROI target percentage, seeding the given
// default on first read (same INSERT OR IGNORE idiom as the JWT secret).
func GetROITarget(ctx context.Context, db *sql.DB, defaultPct float64) (float64, error) {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('roi_target', ?)`,
		strconv.FormatFloat(defaultPct, 'f', -1, 64),
	)
	if err != nil {
		return 0, fmt.Errorf("seeding roi_target: %w", err)
	}

	var raw string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'roi_target'`,
	).Scan(&raw)
	if err != nil {
		return 0, fmt.Errorf("querying roi_target: %w", err)
	}

	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing roi_target %q: %w", raw, err)
	}
	return pct, nil
}

// SetROITarget replaces the current ROI target; only one is current at a
// time.
func SetROITarget(ctx context.Context, db *sql.DB, pct float64) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES ('roi_target', ?)`,
		strconv.FormatFloat(pct, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("storing roi_target: %w", err)
	}
	return nil
}
