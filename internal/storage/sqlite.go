// Package storage keeps named word lists in a SQLite word bank.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrListNotFound is returned when a named word list does not exist.
var ErrListNotFound = errors.New("storage: word list not found")

// Store manages the SQLite database connection for the word bank.
type Store struct {
	db *sql.DB
}

// ListInfo describes one stored word list.
type ListInfo struct {
	Name       string
	Source     string
	Count      int
	ImportedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS word_lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL DEFAULT '',
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS words (
			list_id INTEGER NOT NULL REFERENCES word_lists(id),
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (list_id, position)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportList stores words under name, replacing any list of the same name.
// Returns the number of words stored.
func (s *Store) ImportList(name, source string, words []string) (int, error) {
	if name == "" {
		return 0, errors.New("storage: list name is empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM words WHERE list_id IN (SELECT id FROM word_lists WHERE name = ?)", name,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot clear list %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM word_lists WHERE name = ?", name); err != nil {
		return 0, fmt.Errorf("storage: cannot replace list %q: %w", name, err)
	}

	res, err := tx.Exec("INSERT INTO word_lists (name, source) VALUES (?, ?)", name, source)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create list %q: %w", name, err)
	}
	listID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (list_id, position, word) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err := stmt.Exec(listID, i, w); err != nil {
			return 0, fmt.Errorf("storage: cannot insert word %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(words), nil
}

// Words returns the words of the named list in import order.
func (s *Store) Words(name string) ([]string, error) {
	var listID int64
	err := s.db.QueryRow("SELECT id FROM word_lists WHERE name = ?", name).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query list: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT word FROM words WHERE list_id = ? ORDER BY position",
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return words, nil
}

// Lists returns every stored list with its word count, sorted by name.
func (s *Store) Lists() ([]ListInfo, error) {
	rows, err := s.db.Query(
		`SELECT l.name, l.source, COUNT(w.word), l.imported_at
		 FROM word_lists l
		 LEFT JOIN words w ON w.list_id = l.id
		 GROUP BY l.id
		 ORDER BY l.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lists: %w", err)
	}
	defer rows.Close()

	var lists []ListInfo
	for rows.Next() {
		var info ListInfo
		var importedAt any
		if err := rows.Scan(&info.Name, &info.Source, &info.Count, &importedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.ImportedAt = parseTime(importedAt)
		lists = append(lists, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return lists, nil
}

// DeleteList removes the named list and its words.
func (s *Store) DeleteList(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM words WHERE list_id IN (SELECT id FROM word_lists WHERE name = ?)", name,
	); err != nil {
		return fmt.Errorf("storage: cannot delete words: %w", err)
	}

	res, err := tx.Exec("DELETE FROM word_lists WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete list: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrListNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles the datetime column arriving as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
