package tg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prilive-com/tgsend/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := &tg.APIError{Code: 400, Description: "Bad Request", Method: "sendMessage"}
	assert.Equal(t, "tgsend: sendMessage failed: Bad Request (code=400)", err.Error())
}

func TestDetectSentinel(t *testing.T) {
	tests := []struct {
		name string
		code int
		desc string
		want error
	}{
		{"chat not found by description", 400, "Bad Request: chat not found", tg.ErrChatNotFound},
		{"bot blocked by description", 403, "Forbidden: bot was blocked by the user", tg.ErrBotBlocked},
		{"401 fallback", 401, "Unauthorized", tg.ErrUnauthorized},
		{"403 fallback", 403, "Forbidden", tg.ErrForbidden},
		{"404 fallback", 404, "Not Found", tg.ErrNotFound},
		{"429 fallback", 429, "Too Many Requests: retry after 5", tg.ErrTooManyRequests},
		{"unknown", 400, "Bad Request: message text is empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tg.DetectSentinel(tt.code, tt.desc))
		})
	}
}

func TestAPIError_ErrorsIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", tg.NewAPIError("getMe", 401, "Unauthorized"))
	assert.True(t, errors.Is(err, tg.ErrUnauthorized))

	var apiErr *tg.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "getMe", apiErr.Method)
	assert.Equal(t, 401, apiErr.Code)
}

func TestConfigError_Unwrap(t *testing.T) {
	err := tg.NewConfigError(tg.ErrSectionNotFound, "Work", "section not present in /etc/tgsend.conf")

	assert.True(t, errors.Is(err, tg.ErrSectionNotFound))
	assert.False(t, errors.Is(err, tg.ErrConfigNotFound))
	assert.Equal(t, "tgsend: config: Work - section not present in /etc/tgsend.conf", err.Error())
}

func TestValidationError_Error(t *testing.T) {
	err := tg.NewValidationError("options", "must have at least 2 options")
	assert.Equal(t, "tgsend: validation: options - must have at least 2 options", err.Error())
}
