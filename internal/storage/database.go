package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// Database keeps the log of countdown sessions.
type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initTables() error {
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            target DATETIME NOT NULL,
            started_at DATETIME NOT NULL,
            reached_at DATETIME,
            overtime BOOLEAN NOT NULL DEFAULT 0
        )
    `)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}

	_, err = d.db.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at)`)
	if err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}
	return nil
}

// StartSession records a new countdown towards target and fills in its ID.
func (d *Database) StartSession(session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	_, err := d.db.Exec(`
        INSERT INTO sessions (id, target, started_at, reached_at, overtime)
        VALUES (?, ?, ?, ?, ?)
    `, session.ID, session.Target.UTC(), session.StartedAt.UTC(), nullTime(session.ReachedAt), session.Overtime)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// MarkReached records when the session's target was reached.
func (d *Database) MarkReached(id string, at time.Time) error {
	res, err := d.db.Exec(`
        UPDATE sessions
        SET reached_at = ?
        WHERE id = ? AND reached_at IS NULL
    `, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first.
func (d *Database) RecentSessions(limit int) ([]*models.Session, error) {
	rows, err := d.db.Query(`
        SELECT id, target, started_at, reached_at, overtime
        FROM sessions
        ORDER BY started_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s := &models.Session{}
		var reached sql.NullTime
		if err := rows.Scan(&s.ID, &s.Target, &s.StartedAt, &reached, &s.Overtime); err != nil {
			return nil, err
		}
		if reached.Valid {
			t := reached.Time
			s.ReachedAt = &t
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetSessionStats summarizes the sessions started between startDate and endDate.
func (d *Database) GetSessionStats(startDate, endDate time.Time) (*models.SessionStats, error) {
	stats := &models.SessionStats{}

	err := d.db.QueryRow(`
        SELECT
            COUNT(*) as sessions,
            COALESCE(SUM(CASE WHEN reached_at IS NOT NULL THEN 1 ELSE 0 END), 0) as reached,
            COALESCE(SUM(strftime('%s', target) - strftime('%s', started_at)), 0) as total_duration
        FROM sessions
        WHERE started_at BETWEEN ? AND ?
    `, startDate.UTC(), endDate.UTC()).Scan(&stats.TotalSessions, &stats.ReachedSessions, &stats.TotalDuration)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	if stats.TotalSessions > 0 {
		stats.AverageDuration = float64(stats.TotalDuration) / float64(stats.TotalSessions)
	}
	return stats, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
