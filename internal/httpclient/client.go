// Package httpclient builds the HTTP transport used to reach the Bot API.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Config holds HTTP client configuration. Zero durations mean no limit.
type Config struct {
	// RequestTimeout bounds a whole request including the upload.
	// Default 0: the caller's context decides.
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	TLSTimeout     time.Duration
	IdleTimeout    time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultConfig returns the transport settings used by sender.New.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:      10 * time.Second,
		TLSTimeout:          10 * time.Second,
		IdleTimeout:         90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
	}
}

// New creates an HTTP client with TLS 1.2 or newer.
func New(cfg Config) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		TLSHandshakeTimeout:   cfg.TLSTimeout,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout,
	}
}

// NewDefault creates a client with default configuration.
func NewDefault() *http.Client {
	return New(DefaultConfig())
}

// WithTimeout returns a default client whose requests are bounded by d.
func WithTimeout(d time.Duration) *http.Client {
	cfg := DefaultConfig()
	cfg.RequestTimeout = d
	return New(cfg)
}
