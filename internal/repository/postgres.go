package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aquaseal/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository persists delivered contact submissions for the sales team
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the submissions table when it does not exist yet
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contact_submissions (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			phone       TEXT NOT NULL,
			email       TEXT NOT NULL DEFAULT '',
			service     TEXT NOT NULL,
			area_sqm    DOUBLE PRECISION,
			message     TEXT NOT NULL DEFAULT '',
			received_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure submissions schema: %w", err)
	}
	return nil
}

// InsertSubmission stores a delivered contact submission
func (r *PostgresRepository) InsertSubmission(ctx context.Context, sub *model.ContactSubmission) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, phone, email, service, area_sqm, message, received_at)
		VALUES (:id, :name, :phone, :email, :service, :area_sqm, :message, :received_at)`,
		sub)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// RecentSubmissions returns the newest submissions, most recent first
func (r *PostgresRepository) RecentSubmissions(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}

	subs := []model.ContactSubmission{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT id, name, phone, email, service, area_sqm, message, received_at
		FROM contact_submissions
		ORDER BY received_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}

	return subs, nil
}
