package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/postboard/internal/db"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("audit entry not found")

// Store persists audit entries.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a new audit entry. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_entries (id, timestamp, action, post_id, summary, previous_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp,
		string(entry.Action),
		entry.PostID,
		entry.Summary,
		nullString(entry.PreviousValue),
		nullString(entry.NewValue),
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

// GetByID retrieves a single audit entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, action, post_id, summary, previous_value, new_value
		FROM audit_entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting audit entry: %w", err)
	}
	return e, nil
}

// Query returns entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	query := `SELECT id, timestamp, action, post_id, summary, previous_value, new_value
		FROM audit_entries WHERE 1=1`
	args := []any{}

	if filter.Action != "" {
		query += " AND action = ?"
		args = append(args, string(filter.Action))
	}
	if filter.PostID > 0 {
		query += " AND post_id = ?"
		args = append(args, filter.PostID)
	}

	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var e Entry
	var action string
	var prev, next sql.NullString
	if err := sc.Scan(&e.ID, &e.Timestamp, &action, &e.PostID, &e.Summary, &prev, &next); err != nil {
		return nil, err
	}
	e.Action = Action(action)
	e.PreviousValue = prev.String
	e.NewValue = next.String
	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
