package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/ignite/newsletter-viewer/internal/domain"
	"github.com/ignite/newsletter-viewer/internal/service/newsletter"
)

// NewsletterRepo implements newsletter.Repository against PostgreSQL.
type NewsletterRepo struct{ db *sql.DB }

// NewNewsletterRepo creates a Postgres-backed newsletter repository.
func NewNewsletterRepo(db *sql.DB) *NewsletterRepo { return &NewsletterRepo{db: db} }

// GetByIDAndEmail looks up a newsletter by id and owning email. On the first
// successful lookup of an unread row it flips the read flag with a second
// statement. The read and the update are deliberately not wrapped in a
// transaction: two concurrent first readers may both issue the update, which
// is harmless because the target value is idempotently true. The WHERE guard
// keeps the flip to a single logical transition.
func (r *NewsletterRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Newsletter, error) {
	n := &domain.Newsletter{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, content, email, image_url, "read", created_at, updated_at
		FROM newsletters
		WHERE id = $1 AND email = $2
	`, id, email).Scan(
		&n.ID, &n.Content, &n.Email, &n.ImageURL, &n.Read, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, newsletter.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get newsletter: %w", err)
	}

	if !n.Read {
		_, err := r.db.ExecContext(ctx, `
			UPDATE newsletters
			SET "read" = TRUE, updated_at = NOW()
			WHERE id = $1 AND NOT "read"
		`, id)
		if err != nil {
			return nil, fmt.Errorf("mark newsletter read: %w", err)
		}
		log.Printf("Newsletter %s marked as read", id)
		n.Read = true
	}

	return n, nil
}

// Insert persists a newsletter row. Timestamps default server-side.
func (r *NewsletterRepo) Insert(ctx context.Context, n *domain.Newsletter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO newsletters (id, content, email, image_url, "read", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`, n.ID, n.Content, n.Email, n.ImageURL, n.Read)
	if err != nil {
		return fmt.Errorf("insert newsletter: %w", err)
	}
	return nil
}

// InitSchema creates the newsletters table if it does not exist. The service
// owns no migrations beyond this; rows arrive out-of-band.
func (r *NewsletterRepo) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS newsletters (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			email      TEXT NOT NULL,
			image_url  TEXT NOT NULL,
			"read"     BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("init newsletters schema: %w", err)
	}
	return nil
}
