package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgsend/config"
	"github.com/prilive-com/tgsend/internal/testutil"
	"github.com/prilive-com/tgsend/tg"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

// withEnv points credential lookup at the mock server's token and chat.
func withEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvToken, testutil.TestToken)
	t.Setenv(config.EnvChatID, "77")
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "--version")

	require.NoError(t, res.err)
	assert.Equal(t, "tgsend v.1.0.0\n", res.stdout)
}

func TestSendText(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)

	res := execute(t, "", "--api-url", server.BaseURL(), "-t", "db01", "--lvl", "success", "backup", "done")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	cap := server.LastCapture()
	cap.AssertPath(t, server.MethodPath("sendMessage"))
	cap.AssertParam(t, "chat_id", "77")
	cap.AssertParam(t, "text", "\u2705 *db01*\n\nbackup done")
	cap.AssertParam(t, "parse_mode", "MarkdownV2")
}

func TestReadText(t *testing.T) {
	text, err := readText([]string{"-"}, strings.NewReader("line 1\nline 2\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2\n\n", text)

	text, err = readText([]string{"disk", "full"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "disk full", text)
}

func TestSendText_Stdin(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)

	res := execute(t, "a\nb\n", "--api-url", server.BaseURL(), "--fixed", "--format", "html", "--no-preview", "-")
	require.NoError(t, res.err)

	cap := server.LastCapture()
	cap.AssertParam(t, "text", "<code> a\nb\n</code>")
	cap.AssertParam(t, "parse_mode", "HTML")
	cap.AssertParam(t, "disable_web_page_preview", "true")
}

func TestSendPhoto(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)
	path := testutil.TempFile(t, "graph.png", []byte("png"))

	res := execute(t, "", "--api-url", server.BaseURL(), "-p", path, "--id", "-100", "--silent", "--reply-to", "9", "load")
	require.NoError(t, res.err)

	cap := server.LastCapture()
	cap.AssertPath(t, server.MethodPath("sendPhoto"))
	cap.AssertParam(t, "chat_id", "-100")
	cap.AssertParam(t, "caption", " load")
	cap.AssertParam(t, "disable_notification", "true")
	cap.AssertParam(t, "reply_to_message_id", "9")
	cap.AssertFile(t, "photo", "graph.png", []byte("png"))
}

func TestSendDocument_Thumbnail(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)
	doc := testutil.TempFile(t, "r.pdf", []byte("pdf"))
	thumb := testutil.TempFile(t, "t.jpg", []byte("jpg"))

	res := execute(t, "", "--api-url", server.BaseURL(), "-d", doc, "--thumb", thumb)
	require.NoError(t, res.err)

	cap := server.LastCapture()
	cap.AssertFile(t, "document", "r.pdf", []byte("pdf"))
	cap.AssertFile(t, "thumbnail", "t.jpg", []byte("jpg"))
	cap.AssertParam(t, "caption", " ")
}

func TestSendLocation(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)

	res := execute(t, "", "--api-url", server.BaseURL(), "--loc", "48.8584, 2.2945")
	require.NoError(t, res.err)

	cap := server.LastCapture()
	cap.AssertPath(t, server.MethodPath("sendLocation"))
	cap.AssertParam(t, "latitude", "48.8584")
	cap.AssertParam(t, "longitude", "2.2945")
}

func TestMediaFlagsAreExclusive(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)

	res := execute(t, "", "--api-url", server.BaseURL(), "--photo", "a.png", "--doc", "b.pdf")

	assert.Error(t, res.err)
	assert.Zero(t, server.CaptureCount())
}

func TestFailedSendPrintsDiagnostics(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)
	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyError(w, 400, "Bad Request: chat not found", nil)
	})

	res := execute(t, "", "--api-url", server.BaseURL(), "hello")

	assert.ErrorIs(t, res.err, errSendFailed)
	assert.Contains(t, res.stdout, "Status code: 400")
	assert.Contains(t, res.stdout, "chat not found")
}

func TestOKFalsePrintsDiagnostics(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)
	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false}`))
	})

	res := execute(t, "", "--api-url", server.BaseURL(), "hello")

	assert.ErrorIs(t, res.err, errSendFailed)
	assert.Contains(t, res.stdout, "Status code: 200")
	assert.Contains(t, res.stdout, `{"ok": false}`)
}

func TestTimeout(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)
	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		testutil.ReplyMessage(w, 1)
	})

	res := execute(t, "", "--api-url", server.BaseURL(), "--timeout", "50ms", "hello")

	require.Error(t, res.err)
	assert.NotErrorIs(t, res.err, errSendFailed)
	assert.NotContains(t, res.err.Error(), testutil.TestToken)
}

func TestVerbosePrintsResponse(t *testing.T) {
	withEnv(t)
	server := testutil.NewMockServer(t)

	res := execute(t, "", "--api-url", server.BaseURL(), "-v", "hello")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Status code: 200")
	assert.Contains(t, res.stderr, "bot api call")
	assert.NotContains(t, res.stderr, testutil.TestToken)
}

func TestInvalidInput(t *testing.T) {
	withEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"level", []string{"--lvl", "panic", "x"}},
		{"format", []string{"--format", "bbcode", "x"}},
		{"location", []string{"--loc", "north"}},
		{"nothing to send", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewMockServer(t)
			res := execute(t, "", append([]string{"--api-url", server.BaseURL()}, tt.args...)...)

			assert.Error(t, res.err)
			assert.Zero(t, server.CaptureCount())
		})
	}
}

func TestNoToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvChatID, "")

	res := execute(t, "", "hello")

	assert.ErrorIs(t, res.err, tg.ErrNoToken)
}

func TestConfigFile(t *testing.T) {
	t.Setenv(config.EnvToken, "999:ignored")
	server := testutil.NewMockServer(t)
	path := filepath.Join(t.TempDir(), "tgsend.conf")
	conf := "[Work]\nBotToken = " + testutil.TestToken + "\nChatID = 555\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o600))

	res := execute(t, "", "--api-url", server.BaseURL(), "-l", path, "-c", "Work", "hello")
	require.NoError(t, res.err)

	cap := server.LastCapture()
	cap.AssertPath(t, server.MethodPath("sendMessage"))
	cap.AssertParam(t, "chat_id", "555")

	res = execute(t, "", "--api-url", server.BaseURL(), "-l", path, "-c", "Home", "hello")
	assert.ErrorIs(t, res.err, tg.ErrSectionNotFound)
}

func TestParseLocation(t *testing.T) {
	lat, lon, err := parseLocation("-33.86,151.21")
	require.NoError(t, err)
	assert.Equal(t, -33.86, lat)
	assert.Equal(t, 151.21, lon)

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		_, _, err := parseLocation(bad)
		assert.Error(t, err, bad)
	}
}
