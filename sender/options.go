package sender

import "github.com/prilive-com/tgsend/tg"

// Delivery controls where and how a message is delivered.
type Delivery struct {
	// ChatID overrides the client's default chat for this call.
	ChatID string

	// Silent sends the message without a notification.
	Silent bool

	// ReplyToMessageID makes the message a reply. 0 means no reply.
	ReplyToMessageID int
}

// Decoration controls how text is framed: icon, bold title and markup dialect.
type Decoration struct {
	Title string

	// Icon is placed before the text. When empty, the icon of Level is used.
	Icon  string
	Level tg.Level

	// ParseMode overrides the client default. Use tg.ParseModeNone for plain text.
	ParseMode tg.ParseMode
}

// MessageOptions configures SendMessage.
type MessageOptions struct {
	Delivery
	Decoration

	// Fixed renders the whole message as fixed-width text.
	Fixed bool

	// DisablePreview suppresses link previews.
	DisablePreview bool
}

// MediaOptions configures the caption of a media message.
type MediaOptions struct {
	Delivery
	Decoration

	// Text is the caption body.
	Text string
}

// DocumentOptions configures SendDocument.
type DocumentOptions struct {
	MediaOptions
	Thumbnail InputFile
}

// AudioOptions configures SendAudio. Title goes to the audio's own title
// field rather than the caption.
type AudioOptions struct {
	MediaOptions
	Thumbnail InputFile
	Duration  int
	Performer string
}

// VideoOptions configures SendVideo.
type VideoOptions struct {
	MediaOptions
	Thumbnail         InputFile
	Duration          int
	Width             int
	Height            int
	SupportsStreaming bool
}

// AnimationOptions configures SendAnimation.
type AnimationOptions struct {
	MediaOptions
	Thumbnail InputFile
	Duration  int
	Width     int
	Height    int
}

// VoiceOptions configures SendVoice.
type VoiceOptions struct {
	MediaOptions
	Duration int
}

// ContactOptions configures SendContact.
type ContactOptions struct {
	Delivery
	LastName string
	VCard    string
}

// Poll types.
const (
	PollTypeRegular = "regular"
	PollTypeQuiz    = "quiz"
)

// PollOptions configures SendPoll. Nil pointers and zero values are not sent,
// leaving Telegram's defaults in place.
type PollOptions struct {
	Delivery
	IsAnonymous           *bool
	Type                  string
	AllowsMultipleAnswers bool
	CorrectOptionID       *int
	Explanation           string
	ExplanationParseMode  tg.ParseMode
	OpenPeriod            int
	CloseDate             int64
	IsClosed              bool
}
