package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test constants for consistent test data.
const (
	// TestToken is a valid-format bot token for testing.
	TestToken = "123456789:ABCdefGHIjklMNOpqrsTUVwxyz"

	// TestChatID is the default destination used by NewTestClient.
	TestChatID = "123456789"

	// TestChatIDInt is TestChatID as Telegram reports it.
	TestChatIDInt = int64(123456789)

	// TestBotID is a test bot ID.
	TestBotID = int64(123456789)

	// TestBotUsername is a test bot username.
	TestBotUsername = "testbot"
)

// TempFile writes content to name inside a per-test directory and returns the path.
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
