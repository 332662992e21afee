package files

import (
	"context"
	"encoding/base64"
	"errors"

	"files-manager/internal/access"
	"files-manager/internal/domain/file"
	"files-manager/internal/queue"
	"files-manager/internal/storage"
	apperrors "files-manager/pkg/errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PageSize is the fixed listing page size; pages are zero-indexed.
const PageSize = 20

const (
	msgMissingName     = "Missing name"
	msgMissingType     = "Missing type"
	msgMissingData     = "Missing data"
	msgInvalidData     = "invalid data encoding"
	msgParentNotFound  = "Parent not found"
	msgParentNotFolder = "Parent is not a folder"
	msgNotFound        = "Not found"
)

// Service implements the file lifecycle: the upload pipeline, visibility
// changes, and the gated read paths. Access denial and absence are reported
// as the same NotFound so private file ids cannot be enumerated.
type Service struct {
	catalog Catalog
	store   storage.Store
	jobs    Enqueuer
	log     zerolog.Logger
}

func NewService(catalog Catalog, store storage.Store, jobs Enqueuer, log zerolog.Logger) *Service {
	return &Service{
		catalog: catalog,
		store:   store,
		jobs:    jobs,
		log:     log,
	}
}

type UploadInput struct {
	Name     string
	Type     string
	ParentID *uuid.UUID
	IsPublic bool
	Data     string // base64-encoded content; empty for folders
}

// Upload validates the request, persists content before metadata, and for
// images enqueues a thumbnail job. The checks run in a fixed order and the
// first failure wins.
func (s *Service) Upload(ctx context.Context, ownerID uuid.UUID, input UploadInput) (*file.File, error) {
	if input.Name == "" {
		return nil, apperrors.Validation(msgMissingName)
	}

	fileType := file.Type(input.Type)
	if !fileType.Valid() {
		return nil, apperrors.Validation(msgMissingType)
	}

	if fileType != file.TypeFolder && input.Data == "" {
		return nil, apperrors.Validation(msgMissingData)
	}

	if input.ParentID != nil {
		parent, err := s.catalog.FileByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Validation(msgParentNotFound)
			}
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, apperrors.Validation(msgParentNotFolder)
		}
	}

	// Content is durable before metadata exists, so a record never points
	// at a missing blob.
	var localPath string
	if fileType != file.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(input.Data)
		if err != nil {
			return nil, apperrors.Validation(msgInvalidData)
		}

		localPath, err = s.store.Put(ctx, data)
		if err != nil {
			return nil, err
		}
	}

	created, err := s.catalog.CreateFile(ctx, file.CreateInput{
		UserID:    ownerID,
		Name:      input.Name,
		Type:      fileType,
		IsPublic:  input.IsPublic,
		ParentID:  input.ParentID,
		LocalPath: localPath,
	})
	if err != nil {
		// The blob is orphaned here; there is no compensating delete and
		// no stronger atomicity than the catalog itself provides.
		return nil, err
	}

	if created.Type == file.TypeImage {
		job := queue.ThumbnailJob{UserID: ownerID, FileID: created.ID}
		if err := s.jobs.Enqueue(ctx, queue.QueueThumbnails, job); err != nil {
			// fire-and-forget: the upload already succeeded
			s.log.Warn().Err(err).Str("file_id", created.ID.String()).Msg("failed to enqueue thumbnail job")
		}
	}

	return created, nil
}

// Show returns the detail view of a file. Ownership is required regardless
// of the public flag.
func (s *Service) Show(ctx context.Context, requesterID, fileID uuid.UUID) (*file.File, error) {
	f, err := s.catalog.FileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(requesterID, f) {
		return nil, apperrors.NotFound(msgNotFound)
	}

	return f, nil
}

// List returns one page of the requester's files under the given parent.
// Pages past the end are empty, not an error.
func (s *Service) List(ctx context.Context, requesterID uuid.UUID, parentID *uuid.UUID, page int) ([]*file.File, error) {
	if page < 0 {
		page = 0
	}
	return s.catalog.FilesByParent(ctx, requesterID, parentID, page, PageSize)
}

// SetPublic flips the visibility flag and returns the updated record.
// Only the owner may publish or unpublish; the operation is idempotent.
func (s *Service) SetPublic(ctx context.Context, requesterID, fileID uuid.UUID, public bool) (*file.File, error) {
	f, err := s.catalog.FileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(requesterID, f) {
		return nil, apperrors.NotFound(msgNotFound)
	}

	if err := s.catalog.SetPublic(ctx, fileID, public); err != nil {
		return nil, err
	}

	return s.catalog.FileByID(ctx, fileID)
}

// Content returns a file's bytes, or a thumbnail variant when size is
// non-zero. Readability follows CanRead: public content is open to anyone,
// private content to the owner only. A variant that has not been generated
// yet reads as NotFound, never as a failure.
func (s *Service) Content(ctx context.Context, requesterID *uuid.UUID, fileID uuid.UUID, size int) ([]byte, *file.File, error) {
	f, err := s.catalog.FileByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	if !access.CanRead(requesterID, f) {
		return nil, nil, apperrors.NotFound(msgNotFound)
	}

	if f.IsFolder() {
		return nil, nil, apperrors.FolderNoContent()
	}

	ref := f.LocalPath
	if size != 0 {
		ref = storage.VariantRef(ref, size)
	}

	data, err := s.store.Get(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	return data, f, nil
}
