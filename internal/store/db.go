package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/trknhr/spellfix/internal/logger"
	_ "github.com/tursodatabase/go-libsql"
)

func OpenDefaultDB() (*sql.DB, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dbPath := filepath.Join(cacheDir, "spellfix", "spellfix.db")
	logger.Debug("dbPath: %s", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	return sql.Open("libsql", dbPath)
}
