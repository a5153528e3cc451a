package tg

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors - use with errors.Is()
var (
	// Configuration errors
	ErrConfigNotFound  = errors.New("tgsend: configuration file not found")
	ErrSectionNotFound = errors.New("tgsend: configuration section not found")
	ErrNoToken         = errors.New("tgsend: could not find a valid configuration with BotToken")
	ErrInvalidToken    = errors.New("tgsend: invalid bot token")

	// Per-call errors
	ErrNoChatID = errors.New("tgsend: no chat ID specified")

	// API errors
	ErrUnauthorized    = errors.New("tgsend: unauthorized (invalid token)")
	ErrForbidden       = errors.New("tgsend: forbidden")
	ErrNotFound        = errors.New("tgsend: not found")
	ErrTooManyRequests = errors.New("tgsend: too many requests")
	ErrChatNotFound    = errors.New("tgsend: chat not found")
	ErrBotBlocked      = errors.New("tgsend: bot blocked by user")

	// Client errors
	ErrCircuitOpen      = errors.New("tgsend: circuit breaker open")
	ErrResponseTooLarge = errors.New("tgsend: response too large")
)

// APIError represents a failed Bot API call.
// Use errors.As() to extract details, errors.Is() to match sentinels.
type APIError struct {
	Code        int
	Description string
	Method      string
	Parameters  *ResponseParameters
	cause       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tgsend: %s failed: %s (code=%d)", e.Method, e.Description, e.Code)
}

// Unwrap returns the underlying sentinel error for errors.Is() support.
func (e *APIError) Unwrap() error { return e.cause }

// NewAPIError creates an APIError with automatic sentinel detection.
func NewAPIError(method string, code int, description string) *APIError {
	return &APIError{
		Code:        code,
		Description: description,
		Method:      method,
		cause:       DetectSentinel(code, description),
	}
}

// DetectSentinel maps Telegram error codes and descriptions to sentinel errors.
// Descriptions win over status codes because they are more specific.
func DetectSentinel(code int, desc string) error {
	descLower := strings.ToLower(desc)
	switch {
	case strings.Contains(descLower, "chat not found"):
		return ErrChatNotFound
	case strings.Contains(descLower, "bot was blocked"):
		return ErrBotBlocked
	}

	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrTooManyRequests
	}

	return nil
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tgsend: validation: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigError describes a credential resolution failure. Key names the
// file, section or setting involved.
type ConfigError struct {
	Key     string
	Message string
	cause   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tgsend: config: %s - %s", e.Key, e.Message)
}

// Unwrap returns the sentinel the error was built from.
func (e *ConfigError) Unwrap() error { return e.cause }

// NewConfigError creates a ConfigError that matches cause with errors.Is.
func NewConfigError(cause error, key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message, cause: cause}
}
