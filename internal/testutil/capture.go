package testutil

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UploadedFile is a file part received in a multipart request.
type UploadedFile struct {
	Name    string
	Content []byte
}

// Capture represents a captured HTTP request with timestamp.
type Capture struct {
	Method      string
	Path        string
	Query       url.Values
	Form        url.Values
	Files       map[string]UploadedFile
	Headers     http.Header
	Body        []byte
	ContentType string
	Timestamp   time.Time
}

// AssertPath verifies the request path.
func (c *Capture) AssertPath(t *testing.T, expected string) {
	t.Helper()
	assert.Equal(t, expected, c.Path, "unexpected path")
}

// AssertMethod verifies the HTTP method.
func (c *Capture) AssertMethod(t *testing.T, expected string) {
	t.Helper()
	assert.Equal(t, expected, c.Method, "unexpected method")
}

// AssertContentType verifies the Content-Type header contains expected value.
func (c *Capture) AssertContentType(t *testing.T, expected string) {
	t.Helper()
	assert.Contains(t, c.ContentType, expected, "unexpected content-type")
}

// AssertParam verifies a parameter sent in the query string or form body.
func (c *Capture) AssertParam(t *testing.T, key, expected string) {
	t.Helper()
	if !c.HasParam(key) {
		t.Errorf("parameter %q not found", key)
		return
	}
	assert.Equal(t, expected, c.Param(key), "unexpected parameter: "+key)
}

// AssertParamAbsent verifies a parameter was NOT sent.
func (c *Capture) AssertParamAbsent(t *testing.T, key string) {
	t.Helper()
	assert.False(t, c.HasParam(key), "parameter should be absent: "+key)
}

// AssertFile verifies an uploaded file part.
func (c *Capture) AssertFile(t *testing.T, field, name string, content []byte) {
	t.Helper()
	f, ok := c.Files[field]
	require.True(t, ok, "file part not found: "+field)
	assert.Equal(t, name, f.Name, "unexpected file name for "+field)
	assert.Equal(t, content, f.Content, "unexpected file content for "+field)
}

// HasParam reports whether key was sent as query or form value.
func (c *Capture) HasParam(key string) bool {
	if _, ok := c.Query[key]; ok {
		return true
	}
	_, ok := c.Form[key]
	return ok
}

// Param returns the first value of key from the query string or form body.
func (c *Capture) Param(key string) string {
	if v := c.Query.Get(key); v != "" {
		return v
	}
	return c.Form.Get(key)
}

// ParamJSON decodes a JSON-encoded parameter into target.
func (c *Capture) ParamJSON(t *testing.T, key string, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(c.Param(key)), target), "failed to decode parameter "+key)
}

// BodyString returns the body as a string.
func (c *Capture) BodyString() string {
	return string(c.Body)
}
