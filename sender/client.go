package sender

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/prilive-com/tgsend/internal/httpclient"
	"github.com/prilive-com/tgsend/internal/scrub"
	"github.com/prilive-com/tgsend/tg"
)

// errServerFailure marks a 5xx response for the circuit breaker. It never
// leaves the package: the response itself is returned to the caller.
var errServerFailure = errors.New("server failure")

// CircuitBreakerSettings configures the optional circuit breaker.
type CircuitBreakerSettings struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	// If 0, internal counts never reset in closed state.
	Interval time.Duration

	// Timeout is the duration of the open state before transitioning to half-open.
	Timeout time.Duration

	// ReadyToTrip determines if breaker should trip based on failure counts.
	// If nil, trips after 5 consecutive failures.
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultCircuitBreakerSettings returns production-ready defaults.
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// Client sends messages and media through the Telegram Bot API.
// A Client holds one set of credentials for its whole lifetime.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*Response]
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL sets the API base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.config.BaseURL = url
	}
}

// WithChatID sets the default destination chat.
func WithChatID(chatID string) Option {
	return func(c *Client) {
		c.config.ChatID = chatID
	}
}

// WithParseMode sets the default parse mode.
func WithParseMode(mode tg.ParseMode) Option {
	return func(c *Client) {
		c.config.ParseMode = mode
	}
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
// Calls wait for a token; a cancelled context aborts the wait.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithCircuitBreaker enables a circuit breaker. Transport errors and 5xx
// responses count as failures; while open, calls fail with tg.ErrCircuitOpen.
func WithCircuitBreaker(settings CircuitBreakerSettings) Option {
	return func(c *Client) {
		if settings.ReadyToTrip == nil {
			settings.ReadyToTrip = DefaultCircuitBreakerSettings().ReadyToTrip
		}
		c.breaker = gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
			Name:         "tgsend",
			MaxRequests:  settings.MaxRequests,
			Interval:     settings.Interval,
			Timeout:      settings.Timeout,
			ReadyToTrip:  settings.ReadyToTrip,
			IsSuccessful: isBreakerSuccess,
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Info("circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
				)
			},
		})
	}
}

// New creates a new Client with the given token and options.
func New(token string, opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Token = tg.SecretToken(token)
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates a Client from a Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Token.IsEmpty() {
		return nil, tg.ErrInvalidToken
	}

	c := &Client{config: cfg}

	// The breaker's state hook needs a logger, so set the default first.
	c.logger = slog.Default()
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		c.httpClient = httpclient.NewDefault()
	}
	if c.config.ParseMode == "" {
		c.config.ParseMode = tg.ParseModeMarkdownV2
	}
	if c.config.MaxResponseSize <= 0 {
		c.config.MaxResponseSize = DefaultConfig().MaxResponseSize
	}
	if !c.config.ParseMode.IsValid() {
		return nil, tg.NewValidationError("parse_mode", fmt.Sprintf("unsupported parse mode %q", c.config.ParseMode))
	}

	return c, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// ChatID returns the default destination chat, which may be empty.
func (c *Client) ChatID() string {
	return c.config.ChatID
}

// ParseMode returns the default parse mode.
func (c *Client) ParseMode() tg.ParseMode {
	return c.config.ParseMode
}

// query issues a GET with the request encoded in the query string.
func (c *Client) query(ctx context.Context, method string, payload any) (*Response, error) {
	req, err := BuildMultipartRequest(payload)
	if err != nil {
		return nil, err
	}
	defer req.Close()
	return c.execute(ctx, http.MethodGet, method, req)
}

// upload issues a multipart POST. Files opened for the request are closed
// before upload returns, whatever the outcome.
func (c *Client) upload(ctx context.Context, method string, payload any) (*Response, error) {
	req, err := BuildMultipartRequest(payload)
	if err != nil {
		return nil, err
	}
	defer req.Close()

	for _, f := range req.Files {
		c.logger.Debug("attaching file", "method", method, "field", f.FieldName, "file", f.FileName)
	}
	return c.execute(ctx, http.MethodPost, method, req)
}

func (c *Client) execute(ctx context.Context, httpMethod, method string, req *MultipartRequest) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.breaker == nil {
		return c.doRequest(ctx, httpMethod, method, req)
	}

	resp, err := c.breaker.Execute(func() (*Response, error) {
		resp, err := c.doRequest(ctx, httpMethod, method, req)
		if err == nil && resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerFailure
		}
		return resp, err
	})
	switch {
	case errors.Is(err, errServerFailure):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %w", tg.ErrCircuitOpen, err)
	}
	return resp, err
}

func (c *Client) doRequest(ctx context.Context, httpMethod, method string, payload *MultipartRequest) (*Response, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.config.BaseURL, c.config.Token.Value(), method)

	var (
		req     *http.Request
		err     error
		encDone chan struct{}
	)

	if httpMethod == http.MethodGet {
		if len(payload.Params) > 0 {
			url += "?" + payload.Query().Encode()
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", scrub.TokenFromError(err, c.config.Token))
		}
	} else {
		// Streamed via io.Pipe so large files are never buffered.
		pr, pw := io.Pipe()
		encoder := NewMultipartEncoder(pw)
		encDone = make(chan struct{})

		go func() {
			defer close(encDone)
			if encErr := encoder.Encode(payload); encErr != nil {
				pw.CloseWithError(fmt.Errorf("failed to encode multipart request: %w", encErr))
				return
			}
			if encErr := encoder.Close(); encErr != nil {
				pw.CloseWithError(fmt.Errorf("failed to close multipart encoder: %w", encErr))
				return
			}
			pw.Close()
		}()
		// The encoder may still hold file readers when Do returns early.
		defer func() {
			pr.Close()
			<-encDone
		}()

		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", scrub.TokenFromError(err, c.config.Token))
		}
		req.Header.Set("Content-Type", encoder.ContentType())
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, scrub.TokenFromError(err, c.config.Token)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", scrub.TokenFromError(err, c.config.Token))
	}
	if int64(len(body)) > c.config.MaxResponseSize {
		return nil, tg.ErrResponseTooLarge
	}

	result := newResponse(method, resp.StatusCode, body)
	c.logger.Debug("bot api call",
		"method", method,
		"http_method", httpMethod,
		"status", result.StatusCode,
		"ok", result.OK,
		"duration", time.Since(start),
	)
	return result, nil
}

// isBreakerSuccess decides what counts as a breaker failure.
// Only 5xx responses and transport errors trip the breaker;
// context cancellation is the caller's doing, not service degradation.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return false
}
