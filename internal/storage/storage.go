package storage

import (
	"context"
	"io"
)

// ObjectStorage is the contract the generation flow needs from the asset
// store: write bytes under a key, get back a public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}
