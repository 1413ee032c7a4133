// Package journal records committed navigations in sqlite so a session's
// trail survives restarts. It observes the pipeline from the outside; the
// guard core never reads or writes it.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Visit is one committed navigation.
type Visit struct {
	ID         string
	SessionID  string
	Route      string
	Address    string
	Decision   string // "allow" or "redirect"
	OccurredAt time.Time
}

// Journal writes visits for one app session.
type Journal struct {
	db      *sql.DB
	session string
}

// Open opens sqlite with sensible defaults.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// New starts a journal with a fresh session id.
func New(db *sql.DB) *Journal {
	return &Journal{db: db, session: uuid.NewString()}
}

func (j *Journal) SessionID() string {
	return j.session
}

// Record stores one committed navigation.
func (j *Journal) Record(ctx context.Context, routeName, address, decision string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO visits (id, session_id, route, address, decision, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), j.session, routeName, address, decision, now())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Recent returns the latest visits across all sessions, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, session_id, route, address, decision, occurred_at
		 FROM visits ORDER BY occurred_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Route, &v.Address, &v.Decision, &v.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
