package media

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresigner struct {
	url        string
	err        error
	lastBucket string
	lastKey    string
	lastOpts   s3.PresignOptions
}

func (s *stubPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastBucket = *params.Bucket
	s.lastKey = *params.Key
	for _, fn := range optFns {
		fn(&s.lastOpts)
	}
	return &v4.PresignedHTTPRequest{URL: s.url, Method: "GET"}, nil
}

func TestResolvePassThrough(t *testing.T) {
	r := NewResolverWithPresigner(&stubPresigner{}, "default-bucket", time.Hour)

	tests := []string{
		"https://cdn.example.com/x.png",
		"http://images.example.com/a/b/c.jpg",
		"//protocol-relative.example.com/x.png",
		"",
	}
	for _, in := range tests {
		out, err := r.Resolve(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, in, out, "non-storage reference must pass through unchanged")
	}
}

func TestResolvePresignsStorageReference(t *testing.T) {
	stub := &stubPresigner{url: "https://bucket.s3.amazonaws.com/key.png?X-Amz-Signature=abc"}
	r := NewResolverWithPresigner(stub, "default-bucket", time.Hour)

	out, err := r.Resolve(context.Background(), "s3://bucket/key.png")
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.s3.amazonaws.com/key.png?X-Amz-Signature=abc", out)
	assert.NotEqual(t, "s3://bucket/key.png", out)
	assert.Equal(t, "bucket", stub.lastBucket)
	assert.Equal(t, "key.png", stub.lastKey)
	assert.Equal(t, time.Hour, stub.lastOpts.Expires)
}

func TestResolveKeepsNestedKey(t *testing.T) {
	stub := &stubPresigner{url: "https://signed.example.com/2026/03/cover.png"}
	r := NewResolverWithPresigner(stub, "default-bucket", 30*time.Minute)

	_, err := r.Resolve(context.Background(), "s3://assets/2026/03/cover.png")
	require.NoError(t, err)

	assert.Equal(t, "assets", stub.lastBucket)
	assert.Equal(t, "2026/03/cover.png", stub.lastKey)
	assert.Equal(t, 30*time.Minute, stub.lastOpts.Expires)
}

func TestResolveEmptyBucketUsesDefault(t *testing.T) {
	stub := &stubPresigner{url: "https://signed.example.com/key.png"}
	r := NewResolverWithPresigner(stub, "default-bucket", time.Hour)

	_, err := r.Resolve(context.Background(), "s3:///key.png")
	require.NoError(t, err)
	assert.Equal(t, "default-bucket", stub.lastBucket)
}

func TestResolveKeylessReferencePassesThrough(t *testing.T) {
	stub := &stubPresigner{url: "https://should-not-be-used.example.com"}
	r := NewResolverWithPresigner(stub, "default-bucket", time.Hour)

	out, err := r.Resolve(context.Background(), "s3://bucket-only")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket-only", out)
	assert.Empty(t, stub.lastKey)
}

func TestResolveBackendFailure(t *testing.T) {
	r := NewResolverWithPresigner(&stubPresigner{err: errors.New("access denied")}, "default-bucket", time.Hour)

	_, err := r.Resolve(context.Background(), "s3://bucket/key.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presign s3://bucket/key.png")
}
