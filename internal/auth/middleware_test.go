package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "files-manager/pkg/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	tokens map[string]uuid.UUID
}

func (r *fakeResolver) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	if id, ok := r.tokens[token]; ok {
		return id, nil
	}
	return uuid.Nil, apperrors.Unauthorized(msgUnauthorized)
}

func TestRequireToken(t *testing.T) {
	userID := uuid.New()
	m := NewMiddleware(&fakeResolver{tokens: map[string]uuid.UUID{"good": userID}})
	e := echo.New()

	handler := func(c echo.Context) error {
		got, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, got)
		return c.NoContent(http.StatusOK)
	}

	// valid token
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderToken, "good")
	rec := httptest.NewRecorder()
	err := m.RequireToken()(handler)(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// missing token
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	err = m.RequireToken()(handler)(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	// invalid token
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderToken, "bad")
	rec = httptest.NewRecorder()
	err = m.RequireToken()(handler)(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalToken(t *testing.T) {
	userID := uuid.New()
	m := NewMiddleware(&fakeResolver{tokens: map[string]uuid.UUID{"good": userID}})
	e := echo.New()

	var seen *uuid.UUID
	handler := func(c echo.Context) error {
		seen = GetOptionalUserID(c)
		return c.NoContent(http.StatusOK)
	}

	// anonymous passes through
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, m.OptionalToken()(handler)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)

	// bad token degrades to anonymous instead of rejecting
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderToken, "bad")
	rec = httptest.NewRecorder()
	require.NoError(t, m.OptionalToken()(handler)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)

	// good token is attached
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderToken, "good")
	rec = httptest.NewRecorder()
	require.NoError(t, m.OptionalToken()(handler)(e.NewContext(req, rec)))
	require.NotNil(t, seen)
	assert.Equal(t, userID, *seen)
}

func TestHashPassword(t *testing.T) {
	// fixed digest: the stored-credential format must not drift
	assert.Equal(t, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8", HashPassword("password"))
	assert.True(t, VerifyPassword("password", HashPassword("password")))
	assert.False(t, VerifyPassword("wrong", HashPassword("password")))
}
