package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"files-manager/internal/auth"
)

// AuthHandler implements the Basic-auth token exchange: connect trades
// email:password for an opaque session token, disconnect revokes it.
type AuthHandler struct {
	users  UserGetter
	tokens TokenIssuer
}

func NewAuthHandler(users UserGetter, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type ConnectResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) GetConnect(c echo.Context) error {
	email, password, ok := basicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	u, err := h.users.ByEmail(c.Request().Context(), email)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	if !auth.VerifyPassword(password, u.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	token, err := h.tokens.Issue(c.Request().Context(), u.ID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	return c.JSON(http.StatusOK, ConnectResponse{Token: token})
}

func (h *AuthHandler) GetDisconnect(c echo.Context) error {
	token := c.Request().Header.Get(auth.HeaderToken)
	if token == "" {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	if err := h.tokens.Revoke(c.Request().Context(), token); err != nil {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	return c.NoContent(http.StatusNoContent)
}

// basicCredentials decodes an "Authorization: Basic ..." header into
// email and password. The password may itself contain colons, so only the
// first separator splits.
func basicCredentials(header string) (string, string, bool) {
	if !strings.HasPrefix(header, basicScheme) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicScheme))
	if err != nil {
		return "", "", false
	}

	parts := strings.SplitN(string(decoded), ":", basicCredsParts)
	if len(parts) != basicCredsParts || parts[0] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}
