package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps every cart mutation globally serialized,
	// so two rapid edits to the same line cannot interleave.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Cart lines: one row per stock-keeping item, count >= 1 always.
CREATE TABLE IF NOT EXISTS cart_items(
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL UNIQUE,
  count INTEGER NOT NULL CHECK (count >= 1),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Sealed profile records (shipping address, payment method), one row per
-- logical key, fully overwritten on save.
CREATE TABLE IF NOT EXISTS profile_blobs(
  key TEXT PRIMARY KEY,
  nonce BLOB NOT NULL,
  sealed BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
