// Package blob abstracts the object store that holds client-uploaded
// documents.
package blob

import (
	"context"
	"io"
)

// Store writes uploaded files under project-namespaced keys.
type Store interface {
	// Put stores the object and returns only when the write is durable.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}
