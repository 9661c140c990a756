package main

import (
	"log/slog"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/storage"
)

// buildIndex loads c into an in-memory SQLite index.
// The caller is responsible for calling Close() on the returned DB.
func buildIndex(c snippet.Collection) (*storage.DB, error) {
	db, err := storage.OpenDB(storage.MemoryDB)
	if err != nil {
		return nil, exitErrorf(ExitError, "opening index: %v", err)
	}
	n, err := db.RebuildFromCollection(c)
	if err != nil {
		db.Close()
		return nil, exitErrorf(ExitError, "building index: %v", err)
	}
	slog.Debug("built index", "snippets", n)
	return db, nil
}
