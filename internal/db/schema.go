package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    description          TEXT,
    category             TEXT NOT NULL,
    brand                TEXT NOT NULL,
    size                 TEXT,
    color                TEXT,
    condition            TEXT,
    tags                 TEXT,
    purchase_price       REAL NOT NULL DEFAULT 0,
    listed_price         REAL NOT NULL DEFAULT 0,
    sold_price           REAL,
    shipping_cost        REAL NOT NULL DEFAULT 0,
    vinted_fee           REAL NOT NULL DEFAULT 0,
    buyer_protection_fee REAL NOT NULL DEFAULT 0,
    views                INTEGER NOT NULL DEFAULT 0,
    likes                INTEGER NOT NULL DEFAULT 0,
    watchers             INTEGER NOT NULL DEFAULT 0,
    messages             INTEGER NOT NULL DEFAULT 0,
    status               TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'active', 'sold', 'archived')),
    created_at           DATETIME NOT NULL,
    updated_at           DATETIME NOT NULL,
    listed_at            DATETIME,
    sold_at              DATETIME
);

CREATE INDEX IF NOT EXISTS idx_items_status ON items(status);

CREATE TABLE IF NOT EXISTS photos (
    id       TEXT PRIMARY KEY,
    item_id  TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name     TEXT,
    data     BLOB NOT NULL,
    mime     TEXT NOT NULL,
    is_main  INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_photos_item ON photos(item_id, position);

CREATE TABLE IF NOT EXISTS notifications (
    id         TEXT PRIMARY KEY,
    type       TEXT NOT NULL CHECK (type IN ('profit_alert', 'milestone', 'restock', 'listing_renewal', 'market_trend')),
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    item_id    TEXT,
    read       INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(item_id, type) WHERE read = 0;

CREATE TABLE IF NOT EXISTS accounts (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    display_name  TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
