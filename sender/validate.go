package sender

import (
	"fmt"

	"github.com/prilive-com/tgsend/tg"
)

// destination resolves the target chat: the call's override, else the
// client default. It fails before any request is built.
func (c *Client) destination(d Delivery) (deliveryFields, error) {
	chatID := d.ChatID
	if chatID == "" {
		chatID = c.config.ChatID
	}
	if chatID == "" {
		return deliveryFields{}, tg.ErrNoChatID
	}
	return deliveryFields{
		ChatID:              chatID,
		DisableNotification: d.Silent,
		ReplyToMessageID:    d.ReplyToMessageID,
	}, nil
}

func validateFile(field string, f InputFile) error {
	if f.IsEmpty() {
		return tg.NewValidationError(field, "file must have Path, Reader, FileID or URL set")
	}
	return nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return tg.NewValidationError("latitude", fmt.Sprintf("must be within [-90, 90], got %g", lat))
	}
	if lon < -180 || lon > 180 {
		return tg.NewValidationError("longitude", fmt.Sprintf("must be within [-180, 180], got %g", lon))
	}
	return nil
}

func validatePoll(question string, options []string, opts PollOptions) error {
	if question == "" {
		return tg.NewValidationError("question", "cannot be empty")
	}
	if len(options) < 2 {
		return tg.NewValidationError("options", "must have at least 2 options")
	}
	if len(options) > 10 {
		return tg.NewValidationError("options", "cannot exceed 10 options")
	}
	if opts.Type != "" && opts.Type != PollTypeRegular && opts.Type != PollTypeQuiz {
		return tg.NewValidationError("type", fmt.Sprintf("must be %q or %q", PollTypeRegular, PollTypeQuiz))
	}
	if opts.CorrectOptionID != nil && (*opts.CorrectOptionID < 0 || *opts.CorrectOptionID >= len(options)) {
		return tg.NewValidationError("correct_option_id", "must be valid index within options")
	}
	return nil
}
