package sender

import "github.com/prilive-com/tgsend/tg"

// Wire shapes of the Bot API methods. Fields tagged omitempty are left out
// of the request when zero.

type deliveryFields struct {
	ChatID              string `json:"chat_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ReplyToMessageID    int    `json:"reply_to_message_id,omitempty"`
}

type captionFields struct {
	Caption   string       `json:"caption,omitempty"`
	ParseMode tg.ParseMode `json:"parse_mode,omitempty"`
}

type sendMessageRequest struct {
	deliveryFields
	Text                  string       `json:"text"`
	ParseMode             tg.ParseMode `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool         `json:"disable_web_page_preview,omitempty"`
}

type sendPhotoRequest struct {
	deliveryFields
	captionFields
	Photo InputFile `json:"photo"`
}

type sendDocumentRequest struct {
	deliveryFields
	captionFields
	Document  InputFile `json:"document"`
	Thumbnail InputFile `json:"thumbnail,omitempty"`
}

type sendAudioRequest struct {
	deliveryFields
	captionFields
	Audio     InputFile `json:"audio"`
	Thumbnail InputFile `json:"thumbnail,omitempty"`
	Title     string    `json:"title,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Performer string    `json:"performer,omitempty"`
}

type sendVideoRequest struct {
	deliveryFields
	captionFields
	Video             InputFile `json:"video"`
	Thumbnail         InputFile `json:"thumbnail,omitempty"`
	Duration          int       `json:"duration,omitempty"`
	Width             int       `json:"width,omitempty"`
	Height            int       `json:"height,omitempty"`
	SupportsStreaming bool      `json:"supports_streaming,omitempty"`
}

type sendAnimationRequest struct {
	deliveryFields
	captionFields
	Animation InputFile `json:"animation"`
	Thumbnail InputFile `json:"thumbnail,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
}

type sendVoiceRequest struct {
	deliveryFields
	captionFields
	Voice    InputFile `json:"voice"`
	Duration int       `json:"duration,omitempty"`
}

type sendStickerRequest struct {
	deliveryFields
	Sticker InputFile `json:"sticker"`
}

type sendLocationRequest struct {
	deliveryFields
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type sendVenueRequest struct {
	deliveryFields
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
	Address   string  `json:"address"`
}

type sendContactRequest struct {
	deliveryFields
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

type sendPollRequest struct {
	deliveryFields
	Question              string       `json:"question"`
	Options               []string     `json:"options"`
	IsAnonymous           *bool        `json:"is_anonymous,omitempty"`
	Type                  string       `json:"type,omitempty"`
	AllowsMultipleAnswers bool         `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID       *int         `json:"correct_option_id,omitempty"`
	Explanation           string       `json:"explanation,omitempty"`
	ExplanationParseMode  tg.ParseMode `json:"explanation_parse_mode,omitempty"`
	OpenPeriod            int          `json:"open_period,omitempty"`
	CloseDate             int64        `json:"close_date,omitempty"`
	IsClosed              bool         `json:"is_closed,omitempty"`
}
