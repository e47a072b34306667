package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	category TEXT NOT NULL,
	price    DOUBLE PRECISION NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS warehouses (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	location TEXT NOT NULL,
	capacity INTEGER NOT NULL CHECK (capacity >= 0)
);

CREATE TABLE IF NOT EXISTS inventory_entries (
	id           TEXT PRIMARY KEY,
	warehouse_id TEXT NOT NULL REFERENCES warehouses (id) ON DELETE CASCADE,
	product_id   TEXT NOT NULL,
	quantity     INTEGER NOT NULL CHECK (quantity > 0),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (warehouse_id, product_id)
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the schema when it does not exist yet. The unique
// (warehouse_id, product_id) constraint is what makes the stock upsert
// atomic, so it lives here rather than in application code.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
