package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/lib/pq"

	"github.com/xaenox/memedb/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(config DatabaseConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return store, nil
}

func (s *PostgresStore) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStore) Append(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (meme_id, original_tags, corrected_tags, user_action,
			description, template, confidence, added, removed, common_patterns, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		feedback.MemeID,
		pq.Array(feedback.OriginalTags),
		pq.Array(feedback.CorrectedTags),
		feedback.UserAction,
		feedback.Description,
		feedback.Template,
		feedback.Confidence,
		pq.Array(feedback.Improvements.Added),
		pq.Array(feedback.Improvements.Removed),
		pq.Array(feedback.Improvements.CommonPatterns),
		feedback.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("error storing feedback: %v", err)
	}

	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*models.Feedback, error) {
	query := `
		SELECT meme_id, original_tags, corrected_tags, user_action,
			description, template, confidence, added, removed, common_patterns, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying feedback: %v", err)
	}
	defer rows.Close()

	entries, err := scanFeedback(rows)
	if err != nil {
		return nil, err
	}

	// Newest-last, matching the append-only memory store.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *PostgresStore) All(ctx context.Context) ([]*models.Feedback, error) {
	query := `
		SELECT meme_id, original_tags, corrected_tags, user_action,
			description, template, confidence, added, removed, common_patterns, created_at
		FROM feedback
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying feedback: %v", err)
	}
	defer rows.Close()

	return scanFeedback(rows)
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting feedback: %v", err)
	}
	return count, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func scanFeedback(rows *sql.Rows) ([]*models.Feedback, error) {
	var entries []*models.Feedback
	for rows.Next() {
		feedback := &models.Feedback{}
		err := rows.Scan(
			&feedback.MemeID,
			pq.Array(&feedback.OriginalTags),
			pq.Array(&feedback.CorrectedTags),
			&feedback.UserAction,
			&feedback.Description,
			&feedback.Template,
			&feedback.Confidence,
			pq.Array(&feedback.Improvements.Added),
			pq.Array(&feedback.Improvements.Removed),
			pq.Array(&feedback.Improvements.CommonPatterns),
			&feedback.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning feedback: %v", err)
		}
		entries = append(entries, feedback)
	}
	return entries, rows.Err()
}
