package object

import (
	"context"
	"io"
)

// ObjectStore is the contract for binary object persistence. Save namespaces
// uploads by owner and picks its own key; SaveWithKey writes to a key the
// caller controls, which the export service uses for its artifacts.
type ObjectStore interface {
	Save(ctx context.Context, owner string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
