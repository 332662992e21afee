package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"files-manager/internal/auth"
	"files-manager/internal/domain/user"
	"files-manager/internal/queue"
	apperrors "files-manager/pkg/errors"
	"files-manager/pkg/validator"
)

type UserHandler struct {
	users UserCreator
	jobs  WelcomeEnqueuer
	log   zerolog.Logger
}

func NewUserHandler(users UserCreator, jobs WelcomeEnqueuer, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, jobs: jobs, log: log}
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PostNew registers a user and queues the welcome notification. A duplicate
// email is a client error, not a conflict the caller can act on differently.
func (h *UserHandler) PostNew(c echo.Context) error {
	var req CreateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Password(req.Password); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	u, err := h.users.Create(ctx, user.CreateInput{
		Email:        req.Email,
		PasswordHash: auth.HashPassword(req.Password),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return respondError(c, http.StatusBadRequest, msgAlreadyExist)
		}
		return respondError(c, http.StatusInternalServerError, msgCreateUserFail)
	}

	if err := h.jobs.Enqueue(ctx, queue.QueueWelcome, queue.WelcomeJob{UserID: u.ID}); err != nil {
		// registration already succeeded; the greeting is best-effort
		h.log.Warn().Err(err).Stringer("user_id", u.ID).Msg("failed to enqueue welcome job")
	}

	return c.JSON(http.StatusCreated, UserView{ID: u.ID.String(), Email: u.Email})
}

// GetMe echoes the authenticated user's identity.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	u, err := h.users.ByID(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	return c.JSON(http.StatusOK, UserView{ID: u.ID.String(), Email: u.Email})
}
