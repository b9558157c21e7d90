// Package renderlog persists render events in SQLite so the preview server
// and CLI can report recent composition activity.
package renderlog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
)

// Event is one recorded render.
type Event struct {
	ID        int64
	RenderID  string
	PageID    string
	Outcome   string // success|failed
	Duration  time.Duration
	Warnings  int
	Timestamp time.Time
}

// Store is a SQLite-backed render event log.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (and initializes) a render log. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "open render log")
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "initialize render log schema")
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS renders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		render_id TEXT NOT NULL,
		page_id TEXT NOT NULL,
		outcome TEXT NOT NULL,
		duration_us INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		timestamp INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_render_id ON renders(render_id);
	CREATE INDEX IF NOT EXISTS idx_page_id ON renders(page_id);
	CREATE INDEX IF NOT EXISTS idx_timestamp ON renders(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Record appends one render event.
func (s *Store) Record(ctx context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders (render_id, page_id, outcome, duration_us, warnings, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.RenderID, ev.PageID, ev.Outcome, ev.Duration.Microseconds(), ev.Warnings, ts.UnixMicro())
	if err != nil {
		return cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "record render event").
			WithContext("page_id", ev.PageID)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, render_id, page_id, outcome, duration_us, warnings, timestamp
		 FROM renders ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "query render events")
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var ev Event
		var durUS, ts int64
		if err := rows.Scan(&ev.ID, &ev.RenderID, &ev.PageID, &ev.Outcome, &durUS, &ev.Warnings, &ts); err != nil {
			return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "scan render event")
		}
		ev.Duration = time.Duration(durUS) * time.Microsecond
		ev.Timestamp = time.UnixMicro(ts)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "iterate render events")
	}
	return events, nil
}

// OutcomeCounts returns the number of recorded events per outcome.
func (s *Store) OutcomeCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM renders GROUP BY outcome`)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "count render outcomes")
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int64)
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, cerrors.Wrap(err, cerrors.CategoryStore, cerrors.SeverityError, "scan outcome count")
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %s (%s, %d warnings, %s)",
		ev.RenderID, ev.PageID, ev.Outcome, ev.Warnings, ev.Duration)
}
