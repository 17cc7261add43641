package store_test

import (
	"database/sql"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/trknhr/spellfix/internal/store"
)

func setupMigrateTestDB(t *testing.T) (*sql.DB, func()) {
	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	return db, func() {
		db.Close()
	}
}

func TestMigrate(t *testing.T) {
	db, cleanup := setupMigrateTestDB(t)
	defer cleanup()

	if err := store.Migrate(db); err != nil {
		t.Fatalf("initial migrate failed: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='custom_words'`).Scan(&name)
	if err != nil {
		t.Fatalf("expected table custom_words to exist: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO custom_words (word) VALUES ('golang')`); err != nil {
		t.Errorf("failed to insert into custom_words: %v", err)
	}
}
