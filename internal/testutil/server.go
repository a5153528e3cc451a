package testutil

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"
)

// MockTelegramServer provides a mock Telegram Bot API server for testing.
type MockTelegramServer struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	captures []Capture
}

// NewMockServer creates a mock Telegram API server.
// The server is automatically closed when the test completes.
func NewMockServer(t *testing.T) *MockTelegramServer {
	t.Helper()

	m := &MockTelegramServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockTelegramServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	capture := Capture{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.Query(),
		Form:        url.Values{},
		Files:       map[string]UploadedFile{},
		Headers:     r.Header.Clone(),
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		Timestamp:   time.Now(),
	}
	if err := parseMultipart(&capture); err != nil {
		m.t.Errorf("mock server: malformed multipart body: %v", err)
	}

	m.mu.Lock()
	m.captures = append(m.captures, capture)
	handler, exists := m.handlers[r.Method+":"+r.URL.Path]
	if !exists {
		handler, exists = m.handlers["*:"+r.URL.Path]
	}
	m.mu.Unlock()

	if exists {
		handler(w, r)
		return
	}

	ReplyMessage(w, 1)
}

func parseMultipart(c *Capture) error {
	mediaType, params, err := mime.ParseMediaType(c.ContentType)
	if err != nil || mediaType != "multipart/form-data" {
		return nil
	}

	reader := multipart.NewReader(bytes.NewReader(c.Body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		if part.FileName() != "" {
			c.Files[part.FormName()] = UploadedFile{Name: part.FileName(), Content: data}
		} else {
			c.Form.Add(part.FormName(), string(data))
		}
	}
}

// OnMethod registers a handler for a specific HTTP method and path.
func (m *MockTelegramServer) OnMethod(method, path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method+":"+path] = handler
}

// On registers a handler for a Bot API method regardless of HTTP verb.
//
//	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyError(w, 400, "Bad Request: chat not found", nil)
//	})
func (m *MockTelegramServer) On(apiMethod string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers["*:"+m.MethodPath(apiMethod)] = handler
}

// MethodPath returns the request path of a Bot API method for TestToken.
func (m *MockTelegramServer) MethodPath(apiMethod string) string {
	return "/bot" + TestToken + "/" + apiMethod
}

// Captures returns all captured requests.
func (m *MockTelegramServer) Captures() []Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Capture{}, m.captures...)
}

// LastCapture returns the most recent captured request.
func (m *MockTelegramServer) LastCapture() *Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.captures) == 0 {
		return nil
	}
	return &m.captures[len(m.captures)-1]
}

// CaptureCount returns the total number of captured requests.
func (m *MockTelegramServer) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.captures)
}

// ResetCaptures clears captures, keeping handlers.
func (m *MockTelegramServer) ResetCaptures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures = m.captures[:0]
}

// BaseURL returns the server's base URL.
// Use this as the API base URL when creating clients.
func (m *MockTelegramServer) BaseURL() string {
	return m.Server.URL
}
