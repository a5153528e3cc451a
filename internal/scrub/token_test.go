package scrub_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgsend/internal/scrub"
	"github.com/prilive-com/tgsend/tg"
)

const token = tg.SecretToken("123456:ABCdef")

func TestTokenFromError_PassThrough(t *testing.T) {
	assert.Nil(t, scrub.TokenFromError(nil, token))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, scrub.TokenFromError(plain, token))
	assert.Equal(t, plain, scrub.TokenFromError(plain, tg.SecretToken("")))
}

func TestTokenFromError_ScrubsAndKeepsChain(t *testing.T) {
	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	wrapped := fmt.Errorf("Get \"https://api.telegram.org/bot123456:ABCdef/getMe\": %w", netErr)

	result := scrub.TokenFromError(wrapped, token)

	assert.NotContains(t, result.Error(), "ABCdef")
	assert.Contains(t, result.Error(), "bot[REDACTED]/getMe")

	var opErr *net.OpError
	require.True(t, errors.As(result, &opErr))
	assert.Equal(t, "dial", opErr.Op)
}

func TestTokenFromError_ContextErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("Post \"https://api.telegram.org/bot123456:ABCdef/sendPhoto\": %w", context.DeadlineExceeded)

	assert.ErrorIs(t, scrub.TokenFromError(wrapped, token), context.DeadlineExceeded)
}

func TestString(t *testing.T) {
	assert.Equal(t, "/bot[REDACTED]/sendMessage", scrub.String("/bot123456:ABCdef/sendMessage", token))
	assert.Equal(t, "unchanged", scrub.String("unchanged", tg.SecretToken("")))
}
