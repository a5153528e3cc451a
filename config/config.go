package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/prilive-com/tgsend/tg"
)

// Environment variables read by FromEnv.
const (
	EnvToken  = "TGSEND_TOKEN"
	EnvChatID = "TGSEND_CHATID"
)

// Configuration file defaults.
const (
	DefaultSection = "Default"
	UserFile       = "~/tgsend.conf"
	SystemFile     = "/etc/tgsend.conf"

	KeyBotToken = "BotToken"
	KeyChatID   = "ChatID"
)

// Credentials identify the bot and, optionally, the default destination chat.
type Credentials struct {
	Token  tg.SecretToken
	ChatID string
}

// Env holds the values of the tgsend environment variables.
type Env struct {
	Token  string
	ChatID string
}

// FromEnv captures TGSEND_TOKEN and TGSEND_CHATID from the process environment.
func FromEnv() Env {
	return Env{
		Token:  os.Getenv(EnvToken),
		ChatID: os.Getenv(EnvChatID),
	}
}

// Options are the inputs of a default resolution.
type Options struct {
	// Token and ChatID are explicit values; they win over everything else.
	Token  string
	ChatID string

	// Env is consulted for whichever explicit value is missing.
	Env Env

	// Section names the file section to read. Default: "Default".
	Section string

	// Path is a custom configuration file, tried before the standard ones.
	Path string
}

// Resolver locates and reads configuration files.
type Resolver struct {
	// UserFile and SystemFile are the standard candidates, in search order.
	// A leading "~" expands to the user's home directory.
	UserFile   string
	SystemFile string

	// Logger receives Debug records about ignored configuration files.
	// Default: slog.Default().
	Logger *slog.Logger
}

// DefaultResolver searches ~/tgsend.conf, then /etc/tgsend.conf.
func DefaultResolver() Resolver {
	return Resolver{
		UserFile:   UserFile,
		SystemFile: SystemFile,
	}
}

// Resolve determines credentials from explicit values, then env, then file.
// The file is read only when no token was given explicitly or through env;
// problems reading it are ignored. It fails with tg.ErrNoToken when no
// source yields a token. A missing chat id is not an error here.
func Resolve(opts Options) (Credentials, error) {
	return DefaultResolver().Resolve(opts)
}

// Load reads credentials from the named section only, skipping explicit and
// environment values. Unlike Resolve it reports every failure.
func Load(section, path string) (Credentials, error) {
	return DefaultResolver().Load(section, path)
}

// Resolve is the Resolver form of the package-level Resolve.
func (r Resolver) Resolve(opts Options) (Credentials, error) {
	creds := Credentials{
		Token:  tg.SecretToken(firstNonEmpty(opts.Token, opts.Env.Token)),
		ChatID: firstNonEmpty(opts.ChatID, opts.Env.ChatID),
	}

	if creds.Token.IsEmpty() {
		section := firstNonEmpty(opts.Section, DefaultSection)
		fromFile, err := r.read(section, opts.Path)
		if err != nil {
			r.logger().Debug("configuration file ignored", "section", section, "error", err)
		} else {
			creds.Token = fromFile.Token
			if creds.ChatID == "" {
				creds.ChatID = fromFile.ChatID
			}
		}
	}

	if creds.Token.IsEmpty() {
		return Credentials{}, tg.NewConfigError(tg.ErrNoToken, KeyBotToken,
			"not given explicitly, in $"+EnvToken+" or in any configuration file")
	}
	return creds, nil
}

// Load is the Resolver form of the package-level Load.
func (r Resolver) Load(section, path string) (Credentials, error) {
	section = firstNonEmpty(section, DefaultSection)
	creds, err := r.read(section, path)
	if err != nil {
		return Credentials{}, err
	}
	if creds.Token.IsEmpty() {
		return Credentials{}, tg.NewConfigError(tg.ErrNoToken, section,
			fmt.Sprintf("given configuration %q has no %s", section, KeyBotToken))
	}
	return creds, nil
}

// Locate returns the first existing file among custom, UserFile and
// SystemFile. custom is skipped when empty.
func (r Resolver) Locate(custom string) (string, error) {
	var candidates []string
	if custom != "" {
		candidates = append(candidates, custom)
	}
	candidates = append(candidates, r.UserFile, r.SystemFile)

	for _, c := range candidates {
		if c == "" {
			continue
		}
		path, err := expandPath(c)
		if err != nil {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", tg.NewConfigError(tg.ErrConfigNotFound, strings.Join(candidates, ", "),
		"no configuration file found")
}

// read loads one section. Absent keys yield empty values.
func (r Resolver) read(section, custom string) (Credentials, error) {
	path, err := r.Locate(custom)
	if err != nil {
		return Credentials{}, err
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true, // tokens and channel names may contain '#' or ';'
	}, path)
	if err != nil {
		return Credentials{}, fmt.Errorf("tgsend: read %s: %w", path, err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return Credentials{}, tg.NewConfigError(tg.ErrSectionNotFound, section,
			"section not present in "+path)
	}

	return Credentials{
		Token:  tg.SecretToken(keyValue(sec, KeyBotToken)),
		ChatID: keyValue(sec, KeyChatID),
	}, nil
}

func (r Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func keyValue(sec *ini.Section, name string) string {
	key, err := sec.GetKey(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(key.String())
}

func expandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// IsConfigError reports whether err is one of the configuration failures.
func IsConfigError(err error) bool {
	return errors.Is(err, tg.ErrConfigNotFound) ||
		errors.Is(err, tg.ErrSectionNotFound) ||
		errors.Is(err, tg.ErrNoToken)
}
