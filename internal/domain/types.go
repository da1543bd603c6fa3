package domain

type ConversationID string

// Speaker identifies who produced a turn in a conversation.
type Speaker string

const (
	SpeakerSystem    Speaker = "system"
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// InputKind discriminates the two shapes of an inbound chat request.
type InputKind string

const (
	KindMessage InputKind = "message" // plain text from the user
	KindAudio   InputKind = "audio"   // reference to an audio resource
)
