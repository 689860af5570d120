package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brightpath-ai/website/internal/service"
)

// ContactStore persists contact form submissions. Persistence is optional
// at runtime; the relay to the external endpoint works without it.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Insert stores a submission and returns its row id.
func (s *ContactStore) Insert(ctx context.Context, sub service.ContactSubmission) (int, error) {
	query := `
		INSERT INTO contact_submissions (submission_id, name, email, company, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int
	err := s.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Company,
		sub.Message,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contact submission %s: %w", sub.ID, err)
	}

	return id, nil
}

// Recent returns the newest submissions, most recent first.
func (s *ContactStore) Recent(ctx context.Context, limit int) ([]service.ContactSubmission, error) {
	query := `
		SELECT submission_id, name, email, COALESCE(company, ''), message
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []service.ContactSubmission
	for rows.Next() {
		var sub service.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Company, &sub.Message); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}
