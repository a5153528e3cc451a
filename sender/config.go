package sender

import (
	"github.com/prilive-com/tgsend/tg"
)

// Config holds sender configuration.
type Config struct {
	// Bot token
	Token tg.SecretToken

	// ChatID is the default destination, used when a call does not name one.
	ChatID string

	// ParseMode is used when a call leaves ParseMode empty.
	ParseMode tg.ParseMode

	// API settings
	BaseURL         string
	MaxResponseSize int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ParseMode:       tg.ParseModeMarkdownV2,
		BaseURL:         "https://api.telegram.org",
		MaxResponseSize: 10 << 20, // 10MB
	}
}
