package main

import (
	"fmt"
	"os"

	"github.com/trknhr/spellfix/cmd"
	"github.com/trknhr/spellfix/internal/logger"
	"github.com/trknhr/spellfix/internal/store"
)

func main() {
	if err := logger.Init(os.Getenv("SPELLFIX_LOG_FILE"), os.Getenv("SPELLFIX_LOG_LEVEL")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := store.OpenDefaultDB()
	if err != nil {
		logger.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		logger.Error("failed to migrate database: %v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(db); err != nil {
		os.Exit(1)
	}
}
