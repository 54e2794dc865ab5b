// Package store persists attention analyses in SQLite: the source image,
// its resolved metrics, and the predicted point sets. Rendered frames are
// never stored; overlays are re-rendered from these inputs on demand.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
)

// ErrNotFound is returned when no analysis exists for the requested id.
var ErrNotFound = errors.New("store: analysis not found")

// Analysis is one persisted record: an uploaded image plus the attention
// data predicted for it. Secondary carries the optional comparison set; its
// producer is a collaborator concern, the store only carries it.
type Analysis struct {
	ID          int64         `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	Filename    string        `json:"filename"`
	ContentType string        `json:"content_type"`
	Image       []byte        `json:"-"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Points      attention.Set `json:"points"`
	Secondary   attention.Set `json:"secondary,omitempty"`
}

// Store wraps the SQLite database. Safe for concurrent use; database/sql
// serializes access through its pool.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and runs the
// schema migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// WAL for concurrent readers during writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enabling WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enabling foreign keys: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at   TEXT NOT NULL,
	filename     TEXT NOT NULL,
	content_type TEXT NOT NULL,
	image        BLOB NOT NULL,
	width        INTEGER NOT NULL,
	height       INTEGER NOT NULL,
	points       TEXT NOT NULL,
	secondary    TEXT
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("store: migrating schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts the analysis and fills in its ID and CreatedAt.
func (s *Store) Save(ctx context.Context, a *Analysis) error {
	points, err := json.Marshal(a.Points)
	if err != nil {
		return fmt.Errorf("store: encoding points: %w", err)
	}

	var secondary any
	if a.Secondary != nil {
		data, err := json.Marshal(a.Secondary)
		if err != nil {
			return fmt.Errorf("store: encoding secondary points: %w", err)
		}
		secondary = string(data)
	}

	a.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := s.db.ExecContext(ctx, `
INSERT INTO analyses (created_at, filename, content_type, image, width, height, points, secondary)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.CreatedAt.Format(time.RFC3339), a.Filename, a.ContentType,
		a.Image, a.Width, a.Height, string(points), secondary)
	if err != nil {
		return fmt.Errorf("store: inserting analysis: %w", err)
	}

	a.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("store: reading insert id: %w", err)
	}
	return nil
}

// Get returns the full analysis, image bytes included.
func (s *Store) Get(ctx context.Context, id int64) (*Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, filename, content_type, image, width, height, points, secondary
FROM analyses WHERE id = ?`, id)

	var (
		a         Analysis
		createdAt string
		points    string
		secondary sql.NullString
	)
	err := row.Scan(&a.ID, &createdAt, &a.Filename, &a.ContentType,
		&a.Image, &a.Width, &a.Height, &points, &secondary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: scanning analysis %d: %w", id, err)
	}

	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("store: parsing created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(points), &a.Points); err != nil {
		return nil, fmt.Errorf("store: decoding points: %w", err)
	}
	if secondary.Valid {
		if err := json.Unmarshal([]byte(secondary.String), &a.Secondary); err != nil {
			return nil, fmt.Errorf("store: decoding secondary points: %w", err)
		}
	}
	return &a, nil
}

// List returns all analyses newest first, without image bytes.
func (s *Store) List(ctx context.Context) ([]Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, filename, content_type, width, height, points, secondary
FROM analyses ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: listing analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var (
			a         Analysis
			createdAt string
			points    string
			secondary sql.NullString
		)
		if err := rows.Scan(&a.ID, &createdAt, &a.Filename, &a.ContentType,
			&a.Width, &a.Height, &points, &secondary); err != nil {
			return nil, fmt.Errorf("store: scanning list row: %w", err)
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("store: parsing created_at: %w", err)
		}
		if err := json.Unmarshal([]byte(points), &a.Points); err != nil {
			return nil, fmt.Errorf("store: decoding points: %w", err)
		}
		if secondary.Valid {
			if err := json.Unmarshal([]byte(secondary.String), &a.Secondary); err != nil {
				return nil, fmt.Errorf("store: decoding secondary points: %w", err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes an analysis.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("store: deleting analysis %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: reading rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
