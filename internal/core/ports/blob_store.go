package ports

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
)

// BlobStore is the opaque binary storage consumed by the core, keyed by id.
// The core never interprets blob contents; it only attaches references to
// catalog records and resolves them to URLs on the read side.
//
// Blob operations are individually idempotent and live outside the unit of
// work: a blob orphaned by a failed transaction is reclaimed later by the
// cleanup job rather than rolled back.
type BlobStore interface {
	// Put stores the data and returns the generated blob id.
	Put(ctx context.Context, data []byte, contentType string) (kernel.UUID, error)

	// Get returns the blob contents and content type.
	Get(ctx context.Context, id kernel.UUID) ([]byte, string, error)

	// GetURL returns the URL under which the blob is served.
	GetURL(ctx context.Context, id kernel.UUID) (string, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListCreatedBefore returns the ids of blobs stored before the cutoff.
	// Used by the orphan cleanup job.
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
