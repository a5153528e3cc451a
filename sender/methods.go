package sender

import (
	"context"
	"strings"

	"github.com/prilive-com/tgsend/tg"
)

// ================== Bot Identity ==================

// GetMe returns basic information about the bot. Unlike the send methods,
// a failed response is returned as a *tg.APIError.
func (c *Client) GetMe(ctx context.Context) (*tg.User, error) {
	resp, err := c.query(ctx, "getMe", struct{}{})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var user tg.User
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ================== Text ==================

// SendMessage sends a text message framed by the icon and title of opts.
func (c *Client) SendMessage(ctx context.Context, text string, opts MessageOptions) (*Response, error) {
	dest, err := c.destination(opts.Delivery)
	if err != nil {
		return nil, err
	}

	mode := c.parseMode(opts.ParseMode)
	s := FormatText(mode, tg.ResolveIcon(opts.Level, opts.Icon), opts.Title, text)
	if strings.TrimSpace(s) == "" {
		return nil, tg.NewValidationError("text", "cannot be empty")
	}
	if opts.Fixed {
		s = mode.Fixed(s)
	}

	return c.query(ctx, "sendMessage", sendMessageRequest{
		deliveryFields:        dest,
		Text:                  s,
		ParseMode:             mode,
		DisableWebPagePreview: opts.DisablePreview,
	})
}

// ================== Media ==================

// SendPhoto uploads a photo with a caption.
func (c *Client) SendPhoto(ctx context.Context, photo InputFile, opts MediaOptions) (*Response, error) {
	return c.sendMedia(ctx, "sendPhoto", "photo", photo, opts, func(dest deliveryFields, caption captionFields) any {
		return sendPhotoRequest{deliveryFields: dest, captionFields: caption, Photo: photo}
	})
}

// SendDocument uploads a general file, optionally with a thumbnail.
func (c *Client) SendDocument(ctx context.Context, document InputFile, opts DocumentOptions) (*Response, error) {
	return c.sendMedia(ctx, "sendDocument", "document", document, opts.MediaOptions, func(dest deliveryFields, caption captionFields) any {
		return sendDocumentRequest{
			deliveryFields: dest,
			captionFields:  caption,
			Document:       document,
			Thumbnail:      opts.Thumbnail,
		}
	})
}

// SendAudio uploads an audio file. The title is sent as the track title,
// not as part of the caption.
func (c *Client) SendAudio(ctx context.Context, audio InputFile, opts AudioOptions) (*Response, error) {
	title := opts.Title
	media := opts.MediaOptions
	media.Title = ""
	return c.sendMedia(ctx, "sendAudio", "audio", audio, media, func(dest deliveryFields, caption captionFields) any {
		return sendAudioRequest{
			deliveryFields: dest,
			captionFields:  caption,
			Audio:          audio,
			Thumbnail:      opts.Thumbnail,
			Title:          title,
			Duration:       opts.Duration,
			Performer:      opts.Performer,
		}
	})
}

// SendVideo uploads a video file.
func (c *Client) SendVideo(ctx context.Context, video InputFile, opts VideoOptions) (*Response, error) {
	return c.sendMedia(ctx, "sendVideo", "video", video, opts.MediaOptions, func(dest deliveryFields, caption captionFields) any {
		return sendVideoRequest{
			deliveryFields:    dest,
			captionFields:     caption,
			Video:             video,
			Thumbnail:         opts.Thumbnail,
			Duration:          opts.Duration,
			Width:             opts.Width,
			Height:            opts.Height,
			SupportsStreaming: opts.SupportsStreaming,
		}
	})
}

// SendAnimation uploads an animation (GIF or H.264/MPEG-4 AVC video without sound).
func (c *Client) SendAnimation(ctx context.Context, animation InputFile, opts AnimationOptions) (*Response, error) {
	return c.sendMedia(ctx, "sendAnimation", "animation", animation, opts.MediaOptions, func(dest deliveryFields, caption captionFields) any {
		return sendAnimationRequest{
			deliveryFields: dest,
			captionFields:  caption,
			Animation:      animation,
			Thumbnail:      opts.Thumbnail,
			Duration:       opts.Duration,
			Width:          opts.Width,
			Height:         opts.Height,
		}
	})
}

// SendVoice uploads a voice note. Telegram expects OGG encoded with OPUS.
func (c *Client) SendVoice(ctx context.Context, voice InputFile, opts VoiceOptions) (*Response, error) {
	return c.sendMedia(ctx, "sendVoice", "voice", voice, opts.MediaOptions, func(dest deliveryFields, caption captionFields) any {
		return sendVoiceRequest{
			deliveryFields: dest,
			captionFields:  caption,
			Voice:          voice,
			Duration:       opts.Duration,
		}
	})
}

// SendSticker uploads a .webp or animated .tgs sticker. Stickers carry no caption.
func (c *Client) SendSticker(ctx context.Context, sticker InputFile, opts Delivery) (*Response, error) {
	dest, err := c.destination(opts)
	if err != nil {
		return nil, err
	}
	if err := validateFile("sticker", sticker); err != nil {
		return nil, err
	}
	return c.upload(ctx, "sendSticker", sendStickerRequest{deliveryFields: dest, Sticker: sticker})
}

// sendMedia is shared by every captioned upload: it resolves the chat,
// validates the main file, assembles the caption and uploads build's request.
func (c *Client) sendMedia(
	ctx context.Context,
	method, field string,
	file InputFile,
	opts MediaOptions,
	build func(deliveryFields, captionFields) any,
) (*Response, error) {
	dest, err := c.destination(opts.Delivery)
	if err != nil {
		return nil, err
	}
	if err := validateFile(field, file); err != nil {
		return nil, err
	}
	return c.upload(ctx, method, build(dest, c.caption(opts.Decoration, opts.Text)))
}

// ================== Structured ==================

// SendLocation sends a point on the map.
func (c *Client) SendLocation(ctx context.Context, latitude, longitude float64, opts Delivery) (*Response, error) {
	dest, err := c.destination(opts)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	return c.query(ctx, "sendLocation", sendLocationRequest{
		deliveryFields: dest,
		Latitude:       latitude,
		Longitude:      longitude,
	})
}

// SendVenue sends information about a venue.
func (c *Client) SendVenue(ctx context.Context, latitude, longitude float64, title, address string, opts Delivery) (*Response, error) {
	dest, err := c.destination(opts)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, tg.NewValidationError("title", "cannot be empty")
	}
	if address == "" {
		return nil, tg.NewValidationError("address", "cannot be empty")
	}
	return c.query(ctx, "sendVenue", sendVenueRequest{
		deliveryFields: dest,
		Latitude:       latitude,
		Longitude:      longitude,
		Title:          title,
		Address:        address,
	})
}

// SendContact sends a phone contact.
func (c *Client) SendContact(ctx context.Context, phoneNumber, firstName string, opts ContactOptions) (*Response, error) {
	dest, err := c.destination(opts.Delivery)
	if err != nil {
		return nil, err
	}
	if phoneNumber == "" {
		return nil, tg.NewValidationError("phone_number", "cannot be empty")
	}
	if firstName == "" {
		return nil, tg.NewValidationError("first_name", "cannot be empty")
	}
	return c.query(ctx, "sendContact", sendContactRequest{
		deliveryFields: dest,
		PhoneNumber:    phoneNumber,
		FirstName:      firstName,
		LastName:       opts.LastName,
		VCard:          opts.VCard,
	})
}

// SendPoll sends a native poll. Options are sent as a JSON array of strings.
func (c *Client) SendPoll(ctx context.Context, question string, options []string, opts PollOptions) (*Response, error) {
	dest, err := c.destination(opts.Delivery)
	if err != nil {
		return nil, err
	}
	if err := validatePoll(question, options, opts); err != nil {
		return nil, err
	}
	return c.query(ctx, "sendPoll", sendPollRequest{
		deliveryFields:        dest,
		Question:              question,
		Options:               options,
		IsAnonymous:           opts.IsAnonymous,
		Type:                  opts.Type,
		AllowsMultipleAnswers: opts.AllowsMultipleAnswers,
		CorrectOptionID:       opts.CorrectOptionID,
		Explanation:           opts.Explanation,
		ExplanationParseMode:  opts.ExplanationParseMode,
		OpenPeriod:            opts.OpenPeriod,
		CloseDate:             opts.CloseDate,
		IsClosed:              opts.IsClosed,
	})
}
