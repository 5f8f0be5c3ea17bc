// Package media resolves newsletter image references into fetchable URLs.
//
// References of the form s3://bucket/key are exchanged for time-limited
// presigned GET URLs; everything else (the common case of externally hosted
// images) passes through untouched.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ignite/newsletter-viewer/internal/domain"
)

// PresignAPI is the slice of the S3 presign client the resolver needs.
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Resolver converts s3:// image references into presigned GET URLs.
// A single Resolver is safe for concurrent use.
type Resolver struct {
	presigner     PresignAPI
	defaultBucket string
	expiry        time.Duration
}

// NewResolver creates a resolver backed by a real S3 client. defaultBucket is
// used for references whose bucket segment is empty; expiry bounds the
// lifetime of every URL the resolver mints.
func NewResolver(client *s3.Client, defaultBucket string, expiry time.Duration) *Resolver {
	return NewResolverWithPresigner(s3.NewPresignClient(client), defaultBucket, expiry)
}

// NewResolverWithPresigner creates a resolver with an explicit presign
// implementation. Used by tests.
func NewResolverWithPresigner(p PresignAPI, defaultBucket string, expiry time.Duration) *Resolver {
	return &Resolver{presigner: p, defaultBucket: defaultBucket, expiry: expiry}
}

// Resolve returns a fetchable URL for the given image reference.
//
// Non-storage references are returned unchanged with a nil error. Storage
// references are split into bucket and key and presigned; a reference with
// no key (e.g. "s3://bucket") is treated as opaque and passed through, which
// matches how the viewer behaves for any URL it doesn't understand. This is
// a single best-effort attempt with no retry.
func (r *Resolver) Resolve(ctx context.Context, imageURL string) (string, error) {
	if !strings.HasPrefix(imageURL, domain.StorageScheme) {
		return imageURL, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(imageURL, domain.StorageScheme), "/")
	if !ok || key == "" {
		return imageURL, nil
	}
	if bucket == "" {
		bucket = r.defaultBucket
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = r.expiry
	})
	if err != nil {
		return "", fmt.Errorf("presign s3://%s/%s: %w", bucket, key, err)
	}

	return req.URL, nil
}
