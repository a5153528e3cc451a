// Package scrub removes the bot token from errors and diagnostic text.
package scrub

import (
	"strings"

	"github.com/prilive-com/tgsend/tg"
)

const placeholder = "[REDACTED]"

// String replaces every occurrence of the token in s.
func String(s string, token tg.SecretToken) string {
	if token.IsEmpty() {
		return s
	}
	return strings.ReplaceAll(s, token.Value(), placeholder)
}

// TokenFromError rewrites the message of err without the token.
// net/http puts the request URL, token included, into its error strings.
// The original error stays reachable through Unwrap for errors.Is/As.
func TokenFromError(err error, token tg.SecretToken) error {
	if err == nil || token.IsEmpty() {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, token.Value()) {
		return err
	}
	return &scrubbedError{msg: String(msg, token), err: err}
}

type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }
