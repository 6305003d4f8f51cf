// Package blobstore abstracts where snapshot blobs live: local files,
// memory, S3 or any S3-compatible service.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing immutable snapshot
// blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a new writable blob. The blob becomes visible to
	// Open only after a successful Close.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a snapshot blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a write-once handle. Data is durable after Close.
type WritableBlob interface {
	io.Writer
	io.Closer
}

// Mappable is an optional interface for Blobs that expose their contents
// as a byte slice without copying. The slice is valid until the Blob is
// closed.
type Mappable interface {
	Bytes() ([]byte, error)
}

// ReadAll reads a whole blob, using the zero-copy path when the blob
// supports it.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err == nil {
			out := make([]byte, len(data))
			copy(out, data)
			return out, nil
		}
	}
	data := make([]byte, b.Size())
	if len(data) == 0 {
		return data, nil
	}
	n, err := b.ReadAt(ctx, data, 0)
	if err == io.EOF && int64(n) == b.Size() {
		err = nil
	}
	return data[:n], err
}
