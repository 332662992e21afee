// Package access holds the ownership/visibility predicates gating file reads
// and mutations. Content reads are more permissive than detail views: a public
// file's bytes are readable by anyone, but its metadata, listing and
// publish/unpublish surface stay owner-only. That asymmetry is deliberate.
package access

import (
	"files-manager/internal/domain/file"

	"github.com/google/uuid"
)

// CanRead reports whether a requester (nil for anonymous) may read the
// file's content bytes.
func CanRead(requesterID *uuid.UUID, f *file.File) bool {
	if f.IsPublic {
		return true
	}
	return requesterID != nil && *requesterID == f.UserID
}

// CanMutate reports whether a requester may see the file's detail view or
// change its visibility. Public visibility grants no mutate rights.
func CanMutate(requesterID uuid.UUID, f *file.File) bool {
	return requesterID == f.UserID
}
