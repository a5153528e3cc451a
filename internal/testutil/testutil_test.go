package testutil_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgsend/internal/testutil"
)

func TestMockServer_CapturesQuery(t *testing.T) {
	server := testutil.NewMockServer(t)

	resp, err := http.Get(server.BaseURL() + server.MethodPath("sendMessage") + "?chat_id=1&text=hi")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, server.CaptureCount())
	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertMethod(t, http.MethodGet)
	cap.AssertParam(t, "chat_id", "1")
	cap.AssertParam(t, "text", "hi")
	cap.AssertParamAbsent(t, "parse_mode")
}

func TestMockServer_CapturesMultipart(t *testing.T) {
	server := testutil.NewMockServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("chat_id", "1"))
	part, err := mw.CreateFormFile("photo", "cat.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(server.BaseURL()+server.MethodPath("sendPhoto"), mw.FormDataContentType(), &body)
	require.NoError(t, err)
	resp.Body.Close()

	cap := server.LastCapture()
	cap.AssertContentType(t, "multipart/form-data")
	cap.AssertParam(t, "chat_id", "1")
	cap.AssertFile(t, "photo", "cat.jpg", []byte("jpeg"))
}

func TestMockServer_HandlerAnyVerb(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.On("getMe", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUser(w)
	})

	resp, err := http.Get(server.BaseURL() + server.MethodPath("getMe"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.TelegramEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.OK)
	result, ok := envelope.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, testutil.TestBotUsername, result["username"])
}

func TestMockServer_DefaultReply(t *testing.T) {
	server := testutil.NewMockServer(t)

	resp, err := http.Get(server.BaseURL() + "/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.TelegramEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.OK)
}

func TestReplyError_SetsStatus(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyError(w, 403, "Forbidden: bot was blocked by the user", nil)
	})

	resp, err := http.Get(server.BaseURL() + server.MethodPath("sendMessage"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestResetCaptures(t *testing.T) {
	server := testutil.NewMockServer(t)

	resp, err := http.Get(server.BaseURL() + "/a")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, server.CaptureCount())

	server.ResetCaptures()
	assert.Zero(t, server.CaptureCount())
	assert.Nil(t, server.LastCapture())
}
