package newsletter

import (
	"context"

	"github.com/ignite/newsletter-viewer/internal/domain"
)

// Repository defines the data access contract for newsletters.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetByIDAndEmail returns the newsletter matching both id and email.
	// Returns ErrNotFound when no row matches (mismatched email on an
	// existing id is indistinguishable from a missing id). On the first
	// successful lookup of an unread newsletter the implementation marks
	// it read before returning, so callers always observe Read == true.
	GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Newsletter, error)

	// Insert persists a new newsletter. Used by out-of-band tooling only;
	// no HTTP write path exists.
	Insert(ctx context.Context, n *domain.Newsletter) error
}

// ImageResolver converts an image reference into a fetchable URL.
// References that are not storage URIs pass through unchanged.
type ImageResolver interface {
	Resolve(ctx context.Context, imageURL string) (string, error)
}
