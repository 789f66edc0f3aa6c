// Package library stores the tags of audio files in a SQLite database kept
// alongside the files. It plays the role of the tagging library: one
// property map per file, read and replaced as a whole.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/tagger/internal/tags"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// ErrFileNotFound is returned when the audio file being opened does not exist.
var ErrFileNotFound = errors.New("file not found")

// Library is a tag store backed by SQLite
type Library struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the tag library at dbPath
func Open(dbPath string, logger zerolog.Logger) (*Library, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent across queries
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			file_id INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			UNIQUE (file_id, name)
		);

		CREATE TABLE IF NOT EXISTS tag_values (
			tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (tag_id, position)
		);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Library{db: db, logger: logger}, nil
}

// Close closes the database connection
func (l *Library) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Load returns the stored tags of the file at path. A file that exists on
// disk but has never been tagged has an empty property map.
func (l *Library) Load(ctx context.Context, path string) (*tags.PropertyMap, error) {
	key, err := resolve(path)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT t.name, v.value
		FROM files f
		JOIN tags t ON t.file_id = f.id
		LEFT JOIN tag_values v ON v.tag_id = t.id
		WHERE f.path = ?
		ORDER BY t.name ASC, v.position ASC
	`

	rows, err := l.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]string)
	var order []string
	for rows.Next() {
		var name string
		var value sql.NullString

		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}

		if _, seen := grouped[name]; !seen {
			grouped[name] = []string{}
			order = append(order, name)
		}
		if value.Valid {
			grouped[name] = append(grouped[name], value.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	props := &tags.PropertyMap{}
	for _, name := range order {
		props.Set(name, grouped[name])
	}

	l.logger.Debug().Str("file", key).Int("tags", props.Len()).Msg("Loaded tags")
	return props, nil
}

// Store replaces the stored tags of the file at path with props
func (l *Library) Store(ctx context.Context, path string, props *tags.PropertyMap) error {
	key, err := resolve(path)
	if err != nil {
		return err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsert := `
		INSERT INTO files (path, updated_at) VALUES (?, ?)
		ON CONFLICT (path) DO UPDATE SET updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, upsert, key, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to record file: %w", err)
	}

	var fileID int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM files WHERE path = ?", key).Scan(&fileID); err != nil {
		return fmt.Errorf("failed to look up file: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}

	insertTag, err := tx.PrepareContext(ctx, "INSERT INTO tags (file_id, name) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer insertTag.Close()

	insertValue, err := tx.PrepareContext(ctx, "INSERT INTO tag_values (tag_id, position, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer insertValue.Close()

	for name, values := range props.All() {
		result, err := insertTag.ExecContext(ctx, fileID, name)
		if err != nil {
			return fmt.Errorf("failed to insert tag %s: %w", name, err)
		}

		tagID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get insert id: %w", err)
		}

		for i, value := range values {
			if _, err := insertValue.ExecContext(ctx, tagID, i, value); err != nil {
				return fmt.Errorf("failed to insert value of %s: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	l.logger.Debug().Str("file", key).Int("tags", props.Len()).Msg("Stored tags")
	return nil
}

// Files returns the paths of every file the library holds tags for
func (l *Library) Files(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, "SELECT path FROM files ORDER BY path ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		paths = append(paths, path)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}

	return paths, nil
}

// resolve turns path into the absolute key used in the database and checks
// that the file exists.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	return abs, nil
}
