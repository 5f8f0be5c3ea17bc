package newsletter

import "errors"

// Sentinel errors for the newsletter service layer.
var (
	// ErrNotFound covers both a missing id and an existing id queried with
	// the wrong email. Collapsing the two avoids leaking record existence.
	ErrNotFound = errors.New("newsletter not found")

	// ErrImageUnavailable means a storage-backed image reference could not
	// be turned into a fetchable URL.
	ErrImageUnavailable = errors.New("image resource unavailable")
)
