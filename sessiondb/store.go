package sessiondb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/andesnlp/garbler/dataset"
	_ "modernc.org/sqlite"
)

// SchemaSQL creates the session log tables.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    seed INTEGER NOT NULL,
    example_count INTEGER NOT NULL,
    spans_total INTEGER NOT NULL,
    spans_preserved INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS outcomes (
    session_id TEXT NOT NULL REFERENCES sessions(id),
    example_index INTEGER NOT NULL,
    level TEXT NOT NULL,
    attempts INTEGER NOT NULL,
    spans_total INTEGER NOT NULL,
    spans_preserved INTEGER NOT NULL,
    PRIMARY KEY (session_id, example_index)
);
`

// Store is a sqlite-backed session log.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the session database at path and
// applies the schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sessiondb: open: %w", err)
	}
	if _, err := conn.Exec(SchemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sessiondb: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.conn.Close() }

// Record persists one build report: the session row plus every outcome,
// in a single transaction.
func (s *Store) Record(report *dataset.Report) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("sessiondb: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO sessions(id, created_at, seed, example_count, spans_total, spans_preserved) VALUES(?,?,?,?,?,?)`,
		report.SessionID,
		time.Now().UTC().Format(time.RFC3339),
		report.Seed,
		len(report.Outcomes),
		report.Overall.Total,
		report.Overall.Preserved,
	); err != nil {
		return fmt.Errorf("sessiondb: insert session: %w", err)
	}

	for _, o := range report.Outcomes {
		if _, err := tx.Exec(
			`INSERT INTO outcomes(session_id, example_index, level, attempts, spans_total, spans_preserved) VALUES(?,?,?,?,?,?)`,
			report.SessionID,
			o.Index,
			o.Level,
			o.Result.Attempts,
			o.Result.Report.Total,
			o.Result.Report.Preserved,
		); err != nil {
			return fmt.Errorf("sessiondb: insert outcome %d: %w", o.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sessiondb: commit: %w", err)
	}
	return nil
}

// SessionSummary is one row of the sessions table.
type SessionSummary struct {
	ID             string
	CreatedAt      string
	Seed           int64
	ExampleCount   int
	SpansTotal     int
	SpansPreserved int
}

// Sessions lists recorded sessions, newest first.
func (s *Store) Sessions() ([]SessionSummary, error) {
	rows, err := s.conn.Query(
		`SELECT id, created_at, seed, example_count, spans_total, spans_preserved
		 FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sessiondb: query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var ss SessionSummary
		if err := rows.Scan(&ss.ID, &ss.CreatedAt, &ss.Seed, &ss.ExampleCount, &ss.SpansTotal, &ss.SpansPreserved); err != nil {
			return nil, fmt.Errorf("sessiondb: scan session: %w", err)
		}
		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sessiondb: iterate sessions: %w", err)
	}
	return out, nil
}

// OutcomeCount returns the number of outcome rows for a session.
func (s *Store) OutcomeCount(sessionID string) (int, error) {
	var n int
	err := s.conn.QueryRow(
		`SELECT COUNT(*) FROM outcomes WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sessiondb: count outcomes: %w", err)
	}
	return n, nil
}
