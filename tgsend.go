package tgsend

import (
	"log/slog"

	"github.com/prilive-com/tgsend/config"
	"github.com/prilive-com/tgsend/sender"
	"github.com/prilive-com/tgsend/tg"
)

// Version is reported by the command line tool.
const Version = "1.0.0"

// Options configure New.
type Options struct {
	// Token and ChatID win over every other source.
	Token  string
	ChatID string

	// Env supplies the values of TGSEND_TOKEN and TGSEND_CHATID.
	// Use config.FromEnv() to read them from the process environment.
	Env config.Env

	// Section and Path select the configuration file fallback.
	// Defaults: section "Default", standard file locations.
	Section string
	Path    string

	// ParseMode is the default markup dialect. Default: MarkdownV2.
	ParseMode tg.ParseMode

	// Logger is used by the client and the credential resolver.
	Logger *slog.Logger

	// Resolver overrides the standard configuration file locations.
	Resolver *config.Resolver
}

// New resolves credentials and returns a client bound to them.
// It fails with tg.ErrNoToken when no source provides a bot token.
func New(opts Options, senderOpts ...sender.Option) (*sender.Client, error) {
	resolver := opts.resolver()
	creds, err := resolver.Resolve(config.Options{
		Token:   opts.Token,
		ChatID:  opts.ChatID,
		Env:     opts.Env,
		Section: opts.Section,
		Path:    opts.Path,
	})
	if err != nil {
		return nil, err
	}
	return newClient(creds, opts, senderOpts)
}

// Load builds a client from the named configuration section only.
// Unlike New, a missing file, missing section or missing token is an error.
func Load(name, path string, senderOpts ...sender.Option) (*sender.Client, error) {
	return LoadWith(Options{Section: name, Path: path}, senderOpts...)
}

// LoadWith is Load with the logger, parse mode and resolver of opts.
// Token, ChatID and Env are ignored.
func LoadWith(opts Options, senderOpts ...sender.Option) (*sender.Client, error) {
	resolver := opts.resolver()
	creds, err := resolver.Load(opts.Section, opts.Path)
	if err != nil {
		return nil, err
	}
	return newClient(creds, opts, senderOpts)
}

func newClient(creds config.Credentials, opts Options, senderOpts []sender.Option) (*sender.Client, error) {
	cfg := sender.DefaultConfig()
	cfg.Token = creds.Token
	cfg.ChatID = creds.ChatID
	if opts.ParseMode != "" {
		cfg.ParseMode = opts.ParseMode
	}

	if opts.Logger != nil {
		senderOpts = append([]sender.Option{sender.WithLogger(opts.Logger)}, senderOpts...)
	}
	return sender.NewFromConfig(cfg, senderOpts...)
}

func (o Options) resolver() config.Resolver {
	r := config.DefaultResolver()
	if o.Resolver != nil {
		r = *o.Resolver
	}
	if r.Logger == nil {
		r.Logger = o.Logger
	}
	return r
}
