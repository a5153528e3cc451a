package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prilive-com/tgsend"
	"github.com/prilive-com/tgsend/config"
	"github.com/prilive-com/tgsend/internal/httpclient"
	"github.com/prilive-com/tgsend/sender"
	"github.com/prilive-com/tgsend/tg"
)

// errSendFailed reports a call that reached Telegram but did not succeed.
// Its diagnostics are already on stdout.
var errSendFailed = errors.New("send failed")

var mediaFlags = []string{"photo", "doc", "audio", "video", "anim", "voice", "sticker", "loc"}

type flags struct {
	section    string
	configPath string
	chatID     string
	apiURL     string

	photo, doc, audio, video, anim, voice, sticker string
	loc                                            string
	thumb                                          string

	title   string
	format  string
	icon    string
	level   string
	replyTo int
	timeout time.Duration

	silent    bool
	fixed     bool
	noPreview bool
	verbose   bool
}

func rootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "tgsend [text | -]",
		Short: "Send messages and files to Telegram from the command line",
		Long: `Send a text message, or a file with an optional caption, through a Telegram bot.

Credentials come from $TGSEND_TOKEN and $TGSEND_CHATID, or from the [Default]
section of ~/tgsend.conf or /etc/tgsend.conf. Use - as text to read stdin.

Examples:
  tgsend "backup finished" -t db01 --lvl success
  df -h | tgsend - --fixed
  tgsend --photo graph.png "load over the last hour"
  tgsend --loc 48.8584,2.2945 -c Work`,
		Version:       tgsend.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, args, stdin, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("tgsend v.{{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "load", "l", "", "configuration file to use instead of the default ones")
	fl.StringVarP(&f.section, "config", "c", "", "configuration section to load")
	fl.StringVar(&f.chatID, "id", "", "destination chat id, overrides the configured one")
	fl.StringVar(&f.apiURL, "api-url", "", "Bot API base URL")
	_ = fl.MarkHidden("api-url")

	fl.StringVarP(&f.photo, "photo", "p", "", "send a photo")
	fl.StringVarP(&f.doc, "doc", "d", "", "send a document")
	fl.StringVar(&f.audio, "audio", "", "send an audio file")
	fl.StringVar(&f.video, "video", "", "send a video")
	fl.StringVar(&f.anim, "anim", "", "send an animation (GIF or soundless MP4)")
	fl.StringVar(&f.voice, "voice", "", "send a voice note (OGG/OPUS)")
	fl.StringVar(&f.sticker, "sticker", "", "send a .webp or .tgs sticker")
	fl.StringVar(&f.loc, "loc", "", "send a location given as lat,lon")
	fl.StringVar(&f.thumb, "thumb", "", "thumbnail for a document, audio, video or animation")
	cmd.MarkFlagsMutuallyExclusive(mediaFlags...)

	fl.StringVarP(&f.title, "title", "t", "", "bold title above the text")
	fl.StringVar(&f.format, "format", string(tg.ParseModeMarkdownV2), "markup: html, markdown, markdownV2 or none")
	fl.StringVar(&f.icon, "icon", "", "icon placed before the text")
	fl.StringVar(&f.level, "lvl", string(tg.LevelNo), "severity icon: no, info, success, warn, error or alert")
	fl.IntVar(&f.replyTo, "reply-to", 0, "reply to this message id")
	fl.DurationVar(&f.timeout, "timeout", 0, "HTTP timeout for the whole request, upload included (0 means none)")
	fl.BoolVar(&f.silent, "silent", false, "deliver without notification")
	fl.BoolVar(&f.fixed, "fixed", false, "send the text as fixed-width")
	fl.BoolVar(&f.noPreview, "no-preview", false, "disable link previews")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "print the response and debug logs")

	return cmd
}

func run(ctx context.Context, f flags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logLevel := slog.LevelWarn
	if f.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	mode, err := tg.ParseParseMode(f.format)
	if err != nil {
		return err
	}
	level, err := tg.ParseLevel(f.level)
	if err != nil {
		return err
	}
	text, err := readText(args, stdin)
	if err != nil {
		return err
	}

	client, err := newClient(f, mode, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := dispatch(ctx, client, f, text, sender.Decoration{
		Title:     f.title,
		Icon:      f.icon,
		Level:     level,
		ParseMode: mode,
	})
	if err != nil {
		return err
	}

	if f.verbose || resp.Failed() {
		fmt.Fprintf(stdout, "Status code: %d\n%s\n", resp.StatusCode, resp)
	}
	if resp.Failed() {
		return errSendFailed
	}
	return nil
}

func newClient(f flags, mode tg.ParseMode, logger *slog.Logger) (*sender.Client, error) {
	var opts []sender.Option
	if f.apiURL != "" {
		opts = append(opts, sender.WithBaseURL(f.apiURL))
	}
	if f.timeout > 0 {
		opts = append(opts, sender.WithHTTPClient(httpclient.WithTimeout(f.timeout)))
	}

	base := tgsend.Options{ParseMode: mode, Logger: logger}
	if f.section != "" || f.configPath != "" {
		base.Section = f.section
		base.Path = f.configPath
		return tgsend.LoadWith(base, opts...)
	}

	base.Env = config.FromEnv()
	return tgsend.New(base, opts...)
}

func dispatch(ctx context.Context, c *sender.Client, f flags, text string, deco sender.Decoration) (*sender.Response, error) {
	delivery := sender.Delivery{
		ChatID:           f.chatID,
		Silent:           f.silent,
		ReplyToMessageID: f.replyTo,
	}
	media := sender.MediaOptions{Delivery: delivery, Decoration: deco, Text: text}
	thumb := optionalFile(f.thumb)

	switch {
	case f.photo != "":
		return c.SendPhoto(ctx, sender.FromPath(f.photo), media)
	case f.doc != "":
		return c.SendDocument(ctx, sender.FromPath(f.doc), sender.DocumentOptions{MediaOptions: media, Thumbnail: thumb})
	case f.audio != "":
		return c.SendAudio(ctx, sender.FromPath(f.audio), sender.AudioOptions{MediaOptions: media, Thumbnail: thumb})
	case f.video != "":
		return c.SendVideo(ctx, sender.FromPath(f.video), sender.VideoOptions{MediaOptions: media, Thumbnail: thumb})
	case f.anim != "":
		return c.SendAnimation(ctx, sender.FromPath(f.anim), sender.AnimationOptions{MediaOptions: media, Thumbnail: thumb})
	case f.voice != "":
		return c.SendVoice(ctx, sender.FromPath(f.voice), sender.VoiceOptions{MediaOptions: media})
	case f.sticker != "":
		return c.SendSticker(ctx, sender.FromPath(f.sticker), delivery)
	case f.loc != "":
		lat, lon, err := parseLocation(f.loc)
		if err != nil {
			return nil, err
		}
		return c.SendLocation(ctx, lat, lon, delivery)
	}

	if text == "" {
		return nil, errors.New("nothing to send: give a text, - for stdin, or a file flag")
	}
	return c.SendMessage(ctx, text, sender.MessageOptions{
		Delivery:       delivery,
		Decoration:     deco,
		Fixed:          f.fixed,
		DisablePreview: f.noPreview,
	})
}

// readText joins the positional arguments; a single "-" reads stdin as is.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func parseLocation(s string) (float64, float64, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid location %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	return lat, lon, nil
}

func optionalFile(path string) sender.InputFile {
	if path == "" {
		return sender.InputFile{}
	}
	return sender.FromPath(path)
}
