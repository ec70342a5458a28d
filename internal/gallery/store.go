// Package gallery persists finished artwork in a local SQLite database.
package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("gallery: record not found")

// Record is one saved artwork. ID is the creation time in Unix milliseconds.
type Record struct {
	ID          int64
	Data        string // data URL
	MimeType    string
	CreatedDate string
}

func (r Record) Created() time.Time { return time.UnixMilli(r.ID) }

const schema = `
CREATE TABLE IF NOT EXISTS gallery (
	id           INTEGER PRIMARY KEY,
	data         TEXT NOT NULL,
	mime_type    TEXT NOT NULL,
	created_date TEXT NOT NULL
);`

// Store is the gallery record store.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[GALLERY] Opened %s", path)
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a new record and returns it. IDs are creation timestamps;
// a collision moves the new ID forward by a millisecond.
func (s *Store) Save(ctx context.Context, data, mimeType string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec := Record{
		ID:          now.UnixMilli(),
		Data:        data,
		MimeType:    mimeType,
		CreatedDate: now.Format("2006-01-02"),
	}

	var last sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(id) FROM gallery").Scan(&last); err != nil {
		return Record{}, fmt.Errorf("failed to read last id: %w", err)
	}
	if last.Valid && rec.ID <= last.Int64 {
		rec.ID = last.Int64 + 1
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO gallery (id, data, mime_type, created_date) VALUES (?, ?, ?, ?)",
		rec.ID, rec.Data, rec.MimeType, rec.CreatedDate)
	if err != nil {
		return Record{}, fmt.Errorf("failed to save artwork: %w", err)
	}
	log.Printf("[GALLERY] Saved %d (%s, %d bytes)", rec.ID, rec.MimeType, len(rec.Data))
	return rec, nil
}

// ListAll returns every record, newest first.
func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, data, mime_type, created_date FROM gallery ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list artwork: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Data, &r.MimeType, &r.CreatedDate); err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list artwork: %w", err)
	}
	return out, nil
}

// Get returns one record.
func (s *Store) Get(ctx context.Context, id int64) (Record, error) {
	r := Record{ID: id}
	err := s.db.QueryRowContext(ctx,
		"SELECT data, mime_type, created_date FROM gallery WHERE id = ?", id).
		Scan(&r.Data, &r.MimeType, &r.CreatedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read artwork %d: %w", id, err)
	}
	return r, nil
}

// Delete removes a record. Deleting a missing ID returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM gallery WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete artwork %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	log.Printf("[GALLERY] Deleted %d", id)
	return nil
}
