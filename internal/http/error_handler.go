package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "files-manager/pkg/errors"
	"files-manager/pkg/logger"
)

// CustomHTTPErrorHandler is the backstop for errors that escape handlers.
// Sentinel kinds map to status codes; anything unrecognized is a sanitized
// 500. Handlers normally respond in place, so reaching this path usually
// means an infrastructure failure.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "Not found"
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = "Unauthorized"
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrFolderNoContent),
			errors.Is(err, apperrors.ErrConflict):
			code = http.StatusBadRequest
			message = "Bad request"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && code < 500 {
			message = appErr.Message
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if code >= 500 {
		// infrastructure errors can carry connection strings or credentials
		c.Logger().Errorf("request failed: request_id=%s status=%d err=%s",
			requestID, code, logger.SanitizeLogMessage(err.Error()))
		message = "Internal server error"
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
