package repos

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn, adminUser, adminPassword string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := pingWithRetry(db, 5); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the admin credential exists (idempotent; safe to run every start).
	if err := seedAdmin(db, adminUser, adminPassword); err != nil {
		return nil, err
	}

	return db, nil
}

func pingWithRetry(db *sqlx.DB, attempts int) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		wait := time.Duration(i) * 500 * time.Millisecond
		log.Printf("[db] ping failed (attempt %d/%d): %v; retrying in %s", i, attempts, err, wait)
		time.Sleep(wait)
	}
	return fmt.Errorf("database unreachable: %w", err)
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Catalog
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  prod_name TEXT NOT NULL,
  prod_price NUMERIC NOT NULL,
  prod_image TEXT,
  prod_description TEXT
);

-- Single shared cart. prod_id is the key so add-to-cart can upsert in one
-- statement instead of check-then-insert.
CREATE TABLE IF NOT EXISTS cart(
  prod_id INTEGER PRIMARY KEY,
  prod_qty INTEGER NOT NULL CHECK (prod_qty >= 1)
);

-- Signup inserts unconditionally; no uniqueness on username.
CREATE TABLE IF NOT EXISTS user_login(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  password_hash TEXT NOT NULL
);

-- Read-only from the API; rows arrive via seeding only.
CREATE TABLE IF NOT EXISTS admin_login(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedAdmin(db *sqlx.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO admin_login(username, password_hash)
		VALUES(?, ?)
		ON CONFLICT(username) DO NOTHING
	`, username, string(hash))
	return err
}
