package domain

import (
	"strings"
	"time"
)

// StorageScheme is the URI prefix marking an image reference that lives in
// object storage rather than behind a directly fetchable URL.
const StorageScheme = "s3://"

// Newsletter represents a single stored newsletter, keyed by id and scoped
// to one recipient email. Rows are created out-of-band; the service only
// reads them and flips the read flag.
type Newsletter struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Email     string    `json:"email" db:"email"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasStorageImage reports whether the image reference points into object
// storage and needs presigning before it can be embedded in a page.
func (n Newsletter) HasStorageImage() bool {
	return strings.HasPrefix(n.ImageURL, StorageScheme)
}
