package newsletter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ignite/newsletter-viewer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	record *domain.Newsletter
	err    error
}

func (f *fakeRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*domain.Newsletter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeRepo) Insert(ctx context.Context, n *domain.Newsletter) error { return nil }

type fakeResolver struct {
	out string
	err error
}

func (f *fakeResolver) Resolve(ctx context.Context, imageURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.out != "" {
		return f.out, nil
	}
	return imageURL, nil
}

func testRecord() *domain.Newsletter {
	return &domain.Newsletter{
		ID:        "n1",
		Content:   "Weekly digest",
		Email:     "a@x.com",
		ImageURL:  "https://cdn.example.com/x.png",
		Read:      true,
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestViewPassesThroughDirectImageURL(t *testing.T) {
	svc := NewService(&fakeRepo{record: testRecord()}, &fakeResolver{})

	n, imageURL, err := svc.View(context.Background(), "n1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "https://cdn.example.com/x.png", imageURL)
}

func TestViewReturnsResolvedImageURL(t *testing.T) {
	rec := testRecord()
	rec.ImageURL = "s3://bucket/key.png"
	svc := NewService(&fakeRepo{record: rec}, &fakeResolver{out: "https://signed.example.com/key.png?sig=abc"})

	_, imageURL, err := svc.View(context.Background(), "n1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/key.png?sig=abc", imageURL)
}

func TestViewNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{err: ErrNotFound}, &fakeResolver{})

	_, _, err := svc.View(context.Background(), "missing", "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewResolverFailure(t *testing.T) {
	rec := testRecord()
	rec.ImageURL = "s3://bucket/key.png"
	svc := NewService(&fakeRepo{record: rec}, &fakeResolver{err: errors.New("access denied")})

	_, _, err := svc.View(context.Background(), "n1", "a@x.com")
	assert.ErrorIs(t, err, ErrImageUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestViewStoreFailure(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, &fakeResolver{})

	_, _, err := svc.View(context.Background(), "n1", "a@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
