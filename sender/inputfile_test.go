package sender_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prilive-com/tgsend/sender"
)

func TestInputFile_Sources(t *testing.T) {
	tests := []struct {
		name   string
		file   sender.InputFile
		upload bool
		value  string
	}{
		{"path", sender.FromPath("/tmp/cat.jpg"), true, ""},
		{"reader", sender.FromReader(strings.NewReader("x"), "x.bin"), true, ""},
		{"file id", sender.FromFileID("AgACAgIAAxkBAAI"), false, "AgACAgIAAxkBAAI"},
		{"url", sender.FromURL("https://example.com/photo.jpg"), false, "https://example.com/photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.file.IsEmpty())
			assert.Equal(t, tt.upload, tt.file.IsUpload())
			assert.Equal(t, tt.value, tt.file.Value())
		})
	}
}

func TestInputFile_IsEmpty(t *testing.T) {
	var file sender.InputFile
	assert.True(t, file.IsEmpty())
	assert.False(t, file.IsUpload())
}
