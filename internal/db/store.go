package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jwulff/intake/internal/item"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	createdAt REAL NOT NULL,
	transcription TEXT,
	previewText TEXT NOT NULL DEFAULT '',
	processed INTEGER NOT NULL DEFAULT 0,
	archived INTEGER NOT NULL DEFAULT 0,
	recordId TEXT,
	payload BLOB
);

CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	itemId TEXT NOT NULL,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	createdAt REAL NOT NULL
);
`

// Store provides read-write access to the intake SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path with WAL enabled.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadItems returns all items, most recent first.
func (s *Store) LoadItems() ([]item.Entity, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, createdAt, transcription, previewText, processed, archived, recordId, payload
		FROM items
		ORDER BY createdAt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []item.Entity
	for rows.Next() {
		var e item.Entity
		var createdAt float64
		var transcription, recordID sql.NullString
		var processed, archived int
		if err := rows.Scan(&e.ID, &e.Kind, &createdAt, &transcription,
			&e.PreviewText, &processed, &archived, &recordID, &e.Payload); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		e.CreatedAt = timeFromUnix(createdAt)
		e.Processed = processed != 0
		e.Archived = archived != 0
		if transcription.Valid {
			t := transcription.String
			e.Transcription = &t
		}
		if recordID.Valid {
			r := recordID.String
			e.RecordID = &r
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// InsertItem persists a newly captured item.
func (s *Store) InsertItem(e item.Entity) error {
	_, err := s.db.Exec(`
		INSERT INTO items (id, kind, createdAt, transcription, previewText, processed, archived, recordId, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, string(e.Kind), unixFromTime(e.CreatedAt), nullString(e.Transcription),
		e.PreviewText, boolInt(e.Processed), boolInt(e.Archived), nullString(e.RecordID), e.Payload)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// SetTranscription writes a completed transcription onto an item.
func (s *Store) SetTranscription(id, text string) error {
	if _, err := s.db.Exec(`UPDATE items SET transcription = ? WHERE id = ?`, text, id); err != nil {
		return fmt.Errorf("set transcription: %w", err)
	}
	return nil
}

// SetArchived sets the archived flag on an item.
func (s *Store) SetArchived(id string, archived bool) error {
	if _, err := s.db.Exec(`UPDATE items SET archived = ? WHERE id = ?`, boolInt(archived), id); err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	return nil
}

// DeleteItem removes an item row. Missing rows are not an error.
func (s *Store) DeleteItem(id string) error {
	if _, err := s.db.Exec(`DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// CreateRecord converts an item into a finished record: inserts the record
// and marks the item processed in one transaction.
func (s *Store) CreateRecord(e item.Entity) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		ItemID:    e.ID,
		Title:     recordTitle(e),
		Body:      e.Text(),
		CreatedAt: time.Now(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Record{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO records (id, itemId, title, body, createdAt)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.ItemID, rec.Title, rec.Body, unixFromTime(rec.CreatedAt)); err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE items SET processed = 1, recordId = ? WHERE id = ?
	`, rec.ID, rec.ItemID); err != nil {
		return Record{}, fmt.Errorf("mark item processed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// recordTitle derives a short title from the item's text, falling back to
// the kind label.
func recordTitle(e item.Entity) string {
	text := strings.TrimSpace(e.Text())
	if text == "" {
		return e.Kind.Descriptor().Label
	}
	const maxTitle = 60
	runes := []rune(text)
	if len(runes) > maxTitle {
		return string(runes[:maxTitle-1]) + "…"
	}
	return text
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
