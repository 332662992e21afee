package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLogMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"password in dsn",
			"connect failed: host=db password=hunter2 dbname=files_manager",
			"connect failed: host=db password=[REDACTED] dbname=files_manager",
		},
		{
			"token header",
			"rejected token: abc-123",
			"rejected token=[REDACTED]",
		},
		{
			"clean message passes through",
			"file not found: /tmp/files_manager/xyz",
			"file not found: /tmp/files_manager/xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLogMessage(tt.in))
		})
	}
}

func TestSanitizeMap(t *testing.T) {
	in := map[string]interface{}{
		"email":         "bob@dylan.com",
		"password_hash": "5baa61e4",
		"token":         "abc",
	}

	out := SanitizeMap(in)
	assert.Equal(t, "bob@dylan.com", out["email"])
	assert.Equal(t, "[REDACTED]", out["password_hash"])
	assert.Equal(t, "[REDACTED]", out["token"])
}
