package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

const providerLog = "log"

// LogProvider writes the message to the log instead of delivering it.
// Used when no mail provider is configured.
type LogProvider struct {
	log zerolog.Logger
}

func NewLogProvider(log zerolog.Logger) *LogProvider {
	return &LogProvider{log: log}
}

func (p *LogProvider) Name() string {
	return providerLog
}

func (p *LogProvider) Send(_ context.Context, email *Email) error {
	p.log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg(email.Text)
	return nil
}
