package worker

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/internal/domain/user"
	"files-manager/internal/queue"
	apperrors "files-manager/pkg/errors"
)

type fakeUserCatalog struct {
	users map[uuid.UUID]*user.User
}

func (c *fakeUserCatalog) ByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := c.users[id]
	if !ok {
		return nil, apperrors.NotFound("Not found")
	}
	return u, nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (s *fakeSender) SendWelcome(_ context.Context, email string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, email)
	return nil
}

func TestWelcomeProcessor(t *testing.T) {
	u := &user.User{ID: uuid.New(), Email: "bob@dylan.com"}
	catalog := &fakeUserCatalog{users: map[uuid.UUID]*user.User{u.ID: u}}
	sender := &fakeSender{}
	p := NewWelcomeProcessor(catalog, sender, zerolog.Nop())

	err := p.Process(context.Background(), marshalJob(t, queue.WelcomeJob{UserID: u.ID}))
	require.NoError(t, err)
	assert.Equal(t, []string{"bob@dylan.com"}, sender.sent)
}

func TestWelcomeProcessorValidation(t *testing.T) {
	catalog := &fakeUserCatalog{users: map[uuid.UUID]*user.User{}}
	p := NewWelcomeProcessor(catalog, &fakeSender{}, zerolog.Nop())

	tests := []struct {
		name    string
		payload []byte
		wantMsg string
	}{
		{"malformed payload", []byte("not json"), "invalid welcome job payload"},
		{"missing userId", marshalJob(t, queue.WelcomeJob{}), "Missing userId"},
		{"unknown user", marshalJob(t, queue.WelcomeJob{UserID: uuid.New()}), "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Process(context.Background(), tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrJobFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
