package tg

import "fmt"

// Level tags a message with a severity that is rendered as an icon.
type Level string

// Supported severity levels.
const (
	LevelNo      Level = "no"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
	LevelAlert   Level = "alert"
)

var levelIcons = map[Level]string{
	LevelNo:      "",
	LevelInfo:    "\U0001F4CB",
	LevelSuccess: "\u2705",
	LevelWarn:    "\u26A0",
	LevelError:   "\u274C",
	LevelAlert:   "\U0001F198",
}

// Levels lists every level in display order.
func Levels() []Level {
	return []Level{LevelSuccess, LevelInfo, LevelWarn, LevelError, LevelAlert, LevelNo}
}

// Icon returns the glyph for the level. Unknown levels have no icon.
func (l Level) Icon() string {
	return levelIcons[l]
}

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// IsValid reports whether l is a known level. The empty level counts as LevelNo.
func (l Level) IsValid() bool {
	if l == "" {
		return true
	}
	_, ok := levelIcons[l]
	return ok
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if s == "" {
		return LevelNo, nil
	}
	if !l.IsValid() {
		return "", NewValidationError("level", fmt.Sprintf("unknown level %q", s))
	}
	return l, nil
}

// ResolveIcon returns icon when it is set, otherwise the icon of level.
func ResolveIcon(level Level, icon string) string {
	if icon != "" {
		return icon
	}
	return level.Icon()
}
