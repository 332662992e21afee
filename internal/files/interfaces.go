package files

import (
	"context"

	"files-manager/internal/domain/file"

	"github.com/google/uuid"
)

// Catalog is the metadata store consumed by the service. Implemented by
// postgres.FileRepository; tests substitute an in-memory fake.
type Catalog interface {
	CreateFile(ctx context.Context, input file.CreateInput) (*file.File, error)
	FileByID(ctx context.Context, id uuid.UUID) (*file.File, error)
	FilesByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID, page, pageSize int) ([]*file.File, error)
	SetPublic(ctx context.Context, id uuid.UUID, public bool) error
}

// Enqueuer hands jobs to the background queue. Enqueue failures never fail
// the calling operation; they are logged and dropped.
type Enqueuer interface {
	Enqueue(ctx context.Context, queue string, payload interface{}) error
}
