package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"files-manager/internal/domain/user"
	"files-manager/internal/queue"
	apperrors "files-manager/pkg/errors"
)

const msgUserNotFound = "User not found"

// UserCatalog is the catalog slice needed to resolve a welcome job.
type UserCatalog interface {
	ByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// WelcomeSender delivers the welcome notification; implemented by
// mailer.Service.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, email string) error
}

// WelcomeProcessor greets freshly registered users.
type WelcomeProcessor struct {
	catalog UserCatalog
	sender  WelcomeSender
	log     zerolog.Logger
}

func NewWelcomeProcessor(catalog UserCatalog, sender WelcomeSender, log zerolog.Logger) *WelcomeProcessor {
	return &WelcomeProcessor{catalog: catalog, sender: sender, log: log}
}

func (p *WelcomeProcessor) Process(ctx context.Context, payload []byte) error {
	var job queue.WelcomeJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return apperrors.JobFailed("invalid welcome job payload", err)
	}
	if job.UserID == uuid.Nil {
		return apperrors.JobFailed(msgMissingUserID, nil)
	}

	u, err := p.catalog.ByID(ctx, job.UserID)
	if err != nil {
		return apperrors.JobFailed(msgUserNotFound, err)
	}

	if err := p.sender.SendWelcome(ctx, u.Email); err != nil {
		return apperrors.JobFailed("welcome notification failed", err)
	}

	p.log.Info().Stringer("user_id", u.ID).Msg("welcome sent")
	return nil
}
