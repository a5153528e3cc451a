package sender_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgsend/internal/testutil"
	"github.com/prilive-com/tgsend/sender"
	"github.com/prilive-com/tgsend/tg"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		name  string
		mode  tg.ParseMode
		icon  string
		title string
		text  string
		want  string
	}{
		{"text only", tg.ParseModeMarkdownV2, "", "", "hello", " hello"},
		{"icon", tg.ParseModeMarkdownV2, "\u2705", "", "done", "\u2705 done"},
		{"title markdownv2", tg.ParseModeMarkdownV2, "", "T", "body", " *T*\n\nbody"},
		{"title html", tg.ParseModeHTML, "", "T", "body", " <b>T</b>\n\nbody"},
		{"title plain", tg.ParseModeNone, "", "T", "body", " T\n\nbody"},
		{"icon before title", tg.ParseModeHTML, "!", "T", "body", "! <b>T</b>\n\nbody"},
		{"title without text", tg.ParseModeMarkdown, "", "T", "", " *T*\n\n"},
		{"empty", tg.ParseModeMarkdown, "", "", "", " "},
		{"no escaping", tg.ParseModeHTML, "", "a<b", "1 & 2", " <b>a<b</b>\n\n1 & 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sender.FormatText(tt.mode, tt.icon, tt.title, tt.text))
		})
	}
}

func TestClient_MarkupHelpers(t *testing.T) {
	client, err := sender.New(testutil.TestToken, sender.WithParseMode(tg.ParseModeHTML))
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "<b>x</b>", client.Bold("x", ""))
	assert.Equal(t, "<i>x</i>", client.Italic("x", ""))
	assert.Equal(t, "<code>x</code>", client.Fixed("x", ""))
	assert.Equal(t, "*x*", client.Bold("x", tg.ParseModeMarkdownV2))
	assert.Equal(t, "x", client.Bold("x", tg.ParseModeNone))
}
