package newsletter

import (
	"context"
	"fmt"
	"log"

	"github.com/ignite/newsletter-viewer/internal/domain"
)

// Service implements the newsletter read flow. It coordinates the repository
// lookup (which carries the mark-as-read side effect) with image resolution.
// All public methods are safe for concurrent use if the underlying
// repository is concurrency-safe.
type Service struct {
	repo   Repository
	images ImageResolver
}

// NewService creates a newsletter service backed by the given repository
// and image resolver.
func NewService(repo Repository, images ImageResolver) *Service {
	return &Service{repo: repo, images: images}
}

// View looks up the newsletter for id+email and returns it together with a
// fetchable image URL. The lookup marks the newsletter read on first access.
// Returns ErrNotFound when no record matches and ErrImageUnavailable when a
// storage-backed image cannot be presigned.
func (s *Service) View(ctx context.Context, id, email string) (*domain.Newsletter, string, error) {
	n, err := s.repo.GetByIDAndEmail(ctx, id, email)
	if err != nil {
		return nil, "", err
	}

	imageURL, err := s.images.Resolve(ctx, n.ImageURL)
	if err != nil {
		log.Printf("ERROR: failed to resolve image %s for newsletter %s: %v", n.ImageURL, n.ID, err)
		return nil, "", fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	}

	return n, imageURL, nil
}
