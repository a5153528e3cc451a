package tg

import "log/slog"

const redacted = "[REDACTED]"

// SecretToken wraps a bot token so it is never printed or logged by accident.
// Implements fmt.Stringer, fmt.GoStringer, slog.LogValuer and encoding.TextMarshaler.
type SecretToken string

// Value returns the actual token. Only the request URL builder should call it.
func (s SecretToken) Value() string { return string(s) }

// String returns a redacted placeholder.
func (s SecretToken) String() string { return redacted }

// GoString returns a redacted placeholder for %#v.
func (s SecretToken) GoString() string { return `tg.SecretToken("` + redacted + `")` }

// LogValue keeps the token out of slog output.
func (s SecretToken) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalText keeps the token out of JSON and similar encodings.
func (s SecretToken) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// IsEmpty returns true if no token is set.
func (s SecretToken) IsEmpty() bool {
	return s == ""
}
