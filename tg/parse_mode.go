package tg

import (
	"fmt"
	"strings"
)

// ParseMode selects the markup dialect Telegram uses to render text.
type ParseMode string

// Supported parse modes. The empty value means "inherit the client default".
const (
	ParseModeNone       ParseMode = "none"
	ParseModeHTML       ParseMode = "HTML"
	ParseModeMarkdown   ParseMode = "Markdown"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

// markup holds the opening and closing tokens for each span kind.
type markup struct {
	bold, italic, fixed [2]string
}

var markups = map[ParseMode]markup{
	ParseModeHTML: {
		bold:   [2]string{"<b>", "</b>"},
		italic: [2]string{"<i>", "</i>"},
		fixed:  [2]string{"<code>", "</code>"},
	},
	ParseModeMarkdown: {
		bold:   [2]string{"*", "*"},
		italic: [2]string{"_", "_"},
		fixed:  [2]string{"`", "`"},
	},
	ParseModeMarkdownV2: {
		bold:   [2]string{"*", "*"},
		italic: [2]string{"_", "_"},
		fixed:  [2]string{"`", "`"},
	},
}

// String returns the parse mode string value.
func (p ParseMode) String() string {
	return string(p)
}

// IsValid returns true if the parse mode is one of the supported dialects
// or empty.
func (p ParseMode) IsValid() bool {
	switch p {
	case ParseModeNone, ParseModeHTML, ParseModeMarkdown, ParseModeMarkdownV2, "":
		return true
	default:
		return false
	}
}

// Wire returns the value sent as parse_mode. It is empty for ParseModeNone,
// which means the field is left out of the request.
func (p ParseMode) Wire() string {
	if p == ParseModeNone {
		return ""
	}
	return string(p)
}

// Bold wraps text in the bold markup of p. Text is not escaped.
func (p ParseMode) Bold(text string) string {
	m, ok := markups[p]
	if !ok {
		return text
	}
	return m.bold[0] + text + m.bold[1]
}

// Italic wraps text in the italic markup of p. Text is not escaped.
func (p ParseMode) Italic(text string) string {
	m, ok := markups[p]
	if !ok {
		return text
	}
	return m.italic[0] + text + m.italic[1]
}

// Fixed wraps text in the fixed-width markup of p. Text is not escaped.
func (p ParseMode) Fixed(text string) string {
	m, ok := markups[p]
	if !ok {
		return text
	}
	return m.fixed[0] + text + m.fixed[1]
}

// ParseParseMode maps a user-facing name (html, markdown, markdownV2, none)
// to a ParseMode. Matching is case-insensitive.
func ParseParseMode(s string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return ParseModeHTML, nil
	case "markdown":
		return ParseModeMarkdown, nil
	case "markdownv2":
		return ParseModeMarkdownV2, nil
	case "none", "":
		return ParseModeNone, nil
	default:
		return "", NewValidationError("parse_mode", fmt.Sprintf("unknown format %q", s))
	}
}
