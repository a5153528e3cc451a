// Package testutil provides testing utilities for tgsend.
//
// This package is intended for internal testing only and should not be imported
// by external packages.
//
// # Mock Telegram Server
//
// MockTelegramServer answers every Bot API call with a successful message
// unless a handler is registered:
//
//	server := testutil.NewMockServer(t)
//	server.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyError(w, 400, "Bad Request: chat not found", nil)
//	})
//	client := testutil.NewTestClient(t, server.BaseURL())
//
// # Request Capture
//
// Query strings and multipart bodies are decoded on capture:
//
//	cap := server.LastCapture()
//	cap.AssertMethod(t, "GET")
//	cap.AssertParam(t, "chat_id", testutil.TestChatID)
//	cap.AssertFile(t, "photo", "cat.jpg", content)
package testutil
