package handler

import (
	"context"

	"github.com/google/uuid"

	"files-manager/internal/domain/file"
	"files-manager/internal/domain/user"
	"files-manager/internal/files"
)

// Consumer-side interfaces defined by handlers; each lists only the methods
// the handler actually calls, so tests can substitute small fakes.

// UserHandler interfaces
type UserCreator interface {
	Create(ctx context.Context, input user.CreateInput) (*user.User, error)
	ByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type WelcomeEnqueuer interface {
	Enqueue(ctx context.Context, name string, payload interface{}) error
}

// AuthHandler interfaces
type UserGetter interface {
	ByEmail(ctx context.Context, email string) (*user.User, error)
}

type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, token string) error
}

// FileHandler interface; implemented by files.Service.
type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, input files.UploadInput) (*file.File, error)
	Show(ctx context.Context, requesterID, fileID uuid.UUID) (*file.File, error)
	List(ctx context.Context, requesterID uuid.UUID, parentID *uuid.UUID, page int) ([]*file.File, error)
	SetPublic(ctx context.Context, requesterID, fileID uuid.UUID, public bool) (*file.File, error)
	Content(ctx context.Context, requesterID *uuid.UUID, fileID uuid.UUID, size int) ([]byte, *file.File, error)
}

// AppHandler interfaces
type Pinger interface {
	Alive(ctx context.Context) bool
}

type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

type FileCounter interface {
	CountFiles(ctx context.Context) (int64, error)
}
