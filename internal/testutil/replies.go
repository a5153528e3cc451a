package testutil

import (
	"encoding/json"
	"net/http"
)

// TelegramEnvelope is the standard Telegram API response format.
type TelegramEnvelope struct {
	OK          bool        `json:"ok"`
	Result      any         `json:"result,omitempty"`
	ErrorCode   int         `json:"error_code,omitempty"`
	Description string      `json:"description,omitempty"`
	Parameters  *Parameters `json:"parameters,omitempty"`
}

// Parameters contains optional error parameters (e.g., retry_after).
type Parameters struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}

// ReplyOK writes a successful Telegram API response.
func ReplyOK(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(TelegramEnvelope{
		OK:     true,
		Result: result,
	})
}

// ReplyError writes a Telegram API error response with code as HTTP status.
func ReplyError(w http.ResponseWriter, code int, description string, params *Parameters) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(TelegramEnvelope{
		OK:          false,
		ErrorCode:   code,
		Description: description,
		Parameters:  params,
	})
}

// ReplyServerError writes a 5xx response whose body is not JSON,
// as a failing proxy in front of the API would.
func ReplyServerError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(code)
	_, _ = w.Write([]byte("<html>bad gateway</html>"))
}

// ReplyMessage writes a successful message response.
func ReplyMessage(w http.ResponseWriter, messageID int) {
	ReplyOK(w, map[string]any{
		"message_id": messageID,
		"date":       1234567890,
		"chat": map[string]any{
			"id":   TestChatIDInt,
			"type": "private",
		},
		"text": "Test message",
	})
}

// ReplyUser writes a successful getMe response.
func ReplyUser(w http.ResponseWriter) {
	ReplyOK(w, map[string]any{
		"id":         TestBotID,
		"is_bot":     true,
		"first_name": "Test Bot",
		"username":   TestBotUsername,
	})
}
