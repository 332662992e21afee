package storage

import (
	"context"
	"fmt"
)

// Store persists raw content blobs addressed by an opaque reference.
// It has no metadata awareness; the catalog is the only place that knows
// which record a reference belongs to.
type Store interface {
	// Put persists data at a freshly generated unique reference.
	Put(ctx context.Context, data []byte) (string, error)
	// PutVariant persists a derived blob next to ref, overwriting any
	// previous variant of the same width.
	PutVariant(ctx context.Context, ref string, width int, data []byte) error
	// Get returns the blob at ref, or a NotFound error.
	Get(ctx context.Context, ref string) ([]byte, error)
	// Exists is a non-failing existence check.
	Exists(ctx context.Context, ref string) bool
}

// VariantRef derives the reference of a resized variant from the original.
// Readers reconstruct variant locations from this convention, so it is a
// wire contract shared with the thumbnail worker.
func VariantRef(ref string, width int) string {
	return fmt.Sprintf("%s_%d", ref, width)
}
