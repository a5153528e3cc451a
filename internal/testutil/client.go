package testutil

import (
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgsend/sender"
)

// CircuitBreakerAggressiveTrip returns settings for testing breaker behavior.
// Trips after just 2 consecutive failures.
func CircuitBreakerAggressiveTrip() sender.CircuitBreakerSettings {
	return sender.CircuitBreakerSettings{
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}
}

// NewTestClient creates a client pointed at baseURL with TestChatID as
// the default destination.
func NewTestClient(t *testing.T, baseURL string, opts ...sender.Option) *sender.Client {
	t.Helper()

	defaultOpts := []sender.Option{
		sender.WithBaseURL(baseURL),
		sender.WithChatID(TestChatID),
	}

	client, err := sender.New(TestToken, append(defaultOpts, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })
	return client
}

// NewBreakerTestClient creates a client whose circuit breaker trips aggressively.
func NewBreakerTestClient(t *testing.T, baseURL string, opts ...sender.Option) *sender.Client {
	t.Helper()
	return NewTestClient(t, baseURL, append([]sender.Option{
		sender.WithCircuitBreaker(CircuitBreakerAggressiveTrip()),
	}, opts...)...)
}
