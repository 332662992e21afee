package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"files-manager/internal/domain/file"
	"files-manager/internal/queue"
	"files-manager/internal/storage"
	"files-manager/internal/thumbnail"
	apperrors "files-manager/pkg/errors"
)

const (
	msgMissingFileID = "Missing fileId"
	msgMissingUserID = "Missing userId"
	msgFileNotFound  = "File not found"
)

// FileCatalog is the catalog slice needed to resolve a thumbnail job.
type FileCatalog interface {
	FileByID(ctx context.Context, id uuid.UUID) (*file.File, error)
}

// ThumbnailProcessor renders the fixed-width variants for an uploaded image.
type ThumbnailProcessor struct {
	catalog FileCatalog
	store   storage.Store
	log     zerolog.Logger
}

func NewThumbnailProcessor(catalog FileCatalog, store storage.Store, log zerolog.Logger) *ThumbnailProcessor {
	return &ThumbnailProcessor{catalog: catalog, store: store, log: log}
}

func (p *ThumbnailProcessor) Process(ctx context.Context, payload []byte) error {
	var job queue.ThumbnailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return apperrors.JobFailed("invalid thumbnail job payload", err)
	}
	if job.FileID == uuid.Nil {
		return apperrors.JobFailed(msgMissingFileID, nil)
	}
	if job.UserID == uuid.Nil {
		return apperrors.JobFailed(msgMissingUserID, nil)
	}

	f, err := p.catalog.FileByID(ctx, job.FileID)
	if err != nil {
		return apperrors.JobFailed(msgFileNotFound, err)
	}
	// The job carries the owner; a mismatch means the file changed hands or
	// the payload was forged, either way the job is void.
	if f.UserID != job.UserID {
		return apperrors.JobFailed(msgFileNotFound, nil)
	}

	original, err := p.store.Get(ctx, f.LocalPath)
	if err != nil {
		return apperrors.JobFailed("original content unavailable", err)
	}

	log := p.log.With().Stringer("file_id", f.ID).Logger()
	for _, width := range thumbnail.Widths {
		variant, err := thumbnail.Resize(original, width)
		if err != nil {
			return apperrors.JobFailed("thumbnail generation failed", err)
		}
		if err := p.store.PutVariant(ctx, f.LocalPath, width, variant); err != nil {
			return apperrors.JobFailed("thumbnail write failed", err)
		}
		log.Debug().Int("width", width).Msg("thumbnail generated")
	}

	log.Info().Msg("thumbnails ready")
	return nil
}
