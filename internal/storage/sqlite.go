package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matsen/devvault/internal/snippet"
	_ "modernc.org/sqlite"
)

// MemoryDB is the DSN for an ephemeral in-memory index.
const MemoryDB = ":memory:"

// DB wraps a SQLite database used as a query layer over the snippet collection.
// The JSON store stays the source of truth; the index is rebuilt from it.
type DB struct {
	db *sql.DB
}

// TagCount is the number of snippets carrying a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// KeyCount is the number of snippets sharing a key.
type KeyCount struct {
	Key   string
	Count int
}

// OpenDB opens or creates a SQLite database at the given path.
// Pass MemoryDB for an index that lives only as long as the process.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite doesn't support concurrent writes, and each
	// connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- pos is the snippet's position in the collection
		CREATE TABLE IF NOT EXISTS snippets (
			pos INTEGER PRIMARY KEY,
			key TEXT NOT NULL,
			description TEXT NOT NULL,
			command TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_snippets_key ON snippets(key);

		CREATE TABLE IF NOT EXISTS snippet_tags (
			pos INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			tag TEXT NOT NULL,
			tag_lc TEXT NOT NULL,
			PRIMARY KEY (pos, idx)
		);

		CREATE INDEX IF NOT EXISTS idx_snippet_tags_lc ON snippet_tags(tag_lc);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromCollection clears the database and fills it from c.
// Returns the number of snippets indexed.
func (d *DB) RebuildFromCollection(c snippet.Collection) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snippets"); err != nil {
		return 0, fmt.Errorf("clearing snippets table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM snippet_tags"); err != nil {
		return 0, fmt.Errorf("clearing snippet_tags table: %w", err)
	}

	snippetStmt, err := tx.Prepare(`INSERT INTO snippets (pos, key, description, command) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing snippets insert: %w", err)
	}
	defer snippetStmt.Close()

	tagStmt, err := tx.Prepare(`INSERT INTO snippet_tags (pos, idx, tag, tag_lc) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing tags insert: %w", err)
	}
	defer tagStmt.Close()

	for pos, s := range c {
		if _, err := snippetStmt.Exec(pos, s.Key, s.Description, s.Command); err != nil {
			return 0, fmt.Errorf("inserting snippet %q: %w", s.Key, err)
		}
		for idx, tag := range s.Tags {
			// Lowercase in Go: SQLite's lower() only folds ASCII.
			if _, err := tagStmt.Exec(pos, idx, tag, strings.ToLower(tag)); err != nil {
				return 0, fmt.Errorf("inserting tag %q for %q: %w", tag, s.Key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(c), nil
}

// TagCounts returns how many snippets carry each tag, compared case-insensitively.
// Each tag is reported in the spelling of its first occurrence. Results are ordered
// by count descending, then tag.
func (d *DB) TagCounts() ([]TagCount, error) {
	rows, err := d.db.Query(`
		SELECT
			(SELECT t2.tag FROM snippet_tags t2
			 WHERE t2.tag_lc = t.tag_lc
			 ORDER BY t2.pos, t2.idx LIMIT 1) AS display,
			COUNT(DISTINCT t.pos) AS n
		FROM snippet_tags t
		GROUP BY t.tag_lc
		ORDER BY n DESC, t.tag_lc ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tag counts: %w", err)
	}
	defer rows.Close()

	counts := []TagCount{}
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning tag count: %w", err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// DuplicateKeys returns keys held by more than one snippet with the number
// of entries for each, ordered by their first position in the collection.
func (d *DB) DuplicateKeys() ([]KeyCount, error) {
	rows, err := d.db.Query(`
		SELECT key, COUNT(*) FROM snippets
		GROUP BY key
		HAVING COUNT(*) > 1
		ORDER BY MIN(pos)
	`)
	if err != nil {
		return nil, fmt.Errorf("querying duplicate keys: %w", err)
	}
	defer rows.Close()

	var dups []KeyCount
	for rows.Next() {
		var kc KeyCount
		if err := rows.Scan(&kc.Key, &kc.Count); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		dups = append(dups, kc)
	}
	return dups, rows.Err()
}
