package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"umascan/internal/config"
)

// Store manages match history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.History.Path
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Add records one match outcome and returns the stored row.
func (s *Store) Add(ctx context.Context, entry Entry) (*Entry, error) {
	if entry.EventID == "" {
		return nil, errors.New("entry has no event id")
	}

	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	var fragmentsJSON any
	if len(entry.Fragments) > 0 {
		data, err := json.Marshal(entry.Fragments)
		if err != nil {
			return nil, fmt.Errorf("marshal fragments: %w", err)
		}
		fragmentsJSON = string(data)
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO matches (
            session_id, event_id, event_name, owner_name,
            score, fragments_json, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.EventID,
		entry.EventName,
		nullableString(entry.OwnerName),
		entry.Score,
		fragmentsJSON,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches one recorded match by identifier. A missing row yields
// (nil, nil).
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM matches WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return entry, nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Search returns entries whose event or owner name contains the term,
// case-insensitively, most recent first.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Recent(ctx, limit)
	}
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM matches
         WHERE LOWER(event_name) LIKE ? OR LOWER(COALESCE(owner_name, '')) LIKE ?
         ORDER BY created_at DESC, id DESC LIMIT ?`,
		pattern,
		pattern,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search matches: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Summarize aggregates stored history: total rows, distinct sessions, and
// per-owner match counts sorted by frequency.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	summary := Summary{}
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1), COUNT(DISTINCT session_id) FROM matches`)
	if err := row.Scan(&summary.Total, &summary.Sessions); err != nil {
		return Summary{}, fmt.Errorf("history totals: %w", err)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT owner_name, COUNT(1) FROM matches
         WHERE owner_name IS NOT NULL AND owner_name != ''
         GROUP BY owner_name ORDER BY COUNT(1) DESC, owner_name`,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("history owners: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var oc OwnerCount
		if err := rows.Scan(&oc.Name, &oc.Count); err != nil {
			return Summary{}, err
		}
		summary.Owners = append(summary.Owners, oc)
	}
	return summary, rows.Err()
}

// Clear removes all recorded matches and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM matches`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

const entryColumns = `id, session_id, event_id, event_name, owner_name, score, fragments_json, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		entry         Entry
		ownerName     sql.NullString
		fragmentsJSON sql.NullString
		createdAt     string
	)
	if err := row.Scan(
		&entry.ID,
		&entry.SessionID,
		&entry.EventID,
		&entry.EventName,
		&ownerName,
		&entry.Score,
		&fragmentsJSON,
		&createdAt,
	); err != nil {
		return nil, err
	}

	entry.OwnerName = ownerName.String
	if fragmentsJSON.Valid && fragmentsJSON.String != "" {
		if err := json.Unmarshal([]byte(fragmentsJSON.String), &entry.Fragments); err != nil {
			return nil, fmt.Errorf("unmarshal fragments: %w", err)
		}
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	entry.CreatedAt = parsed
	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
