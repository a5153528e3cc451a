package sender

import (
	"strings"

	"github.com/prilive-com/tgsend/tg"
)

// FormatText assembles message text: the icon and a space, then the title
// in bold followed by a blank line, then text. The space is written even
// when icon is empty; an empty title drops its segment. Nothing is escaped,
// callers supply markup-safe input.
func FormatText(mode tg.ParseMode, icon, title, text string) string {
	var b strings.Builder
	b.WriteString(icon)
	b.WriteByte(' ')
	if title != "" {
		b.WriteString(mode.Bold(title))
		b.WriteString("\n\n")
	}
	b.WriteString(text)
	return b.String()
}

// Bold renders text in bold using mode, or the client default when mode is empty.
func (c *Client) Bold(text string, mode tg.ParseMode) string {
	return c.parseMode(mode).Bold(text)
}

// Italic renders text in italics using mode, or the client default when mode is empty.
func (c *Client) Italic(text string, mode tg.ParseMode) string {
	return c.parseMode(mode).Italic(text)
}

// Fixed renders text as fixed-width using mode, or the client default when mode is empty.
func (c *Client) Fixed(text string, mode tg.ParseMode) string {
	return c.parseMode(mode).Fixed(text)
}

func (c *Client) parseMode(mode tg.ParseMode) tg.ParseMode {
	if mode == "" {
		return c.config.ParseMode
	}
	return mode
}

// caption builds the caption fields for a media message.
func (c *Client) caption(d Decoration, text string) captionFields {
	mode := c.parseMode(d.ParseMode)
	return captionFields{
		Caption:   FormatText(mode, tg.ResolveIcon(d.Level, d.Icon), d.Title, text),
		ParseMode: mode,
	}
}
