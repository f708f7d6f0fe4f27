package domain

type InputKind int

const (
	InputMessage InputKind = iota
	InputCommand
	InputCallback
)

// Input is one operator interaction, independent of the transport it came from.
type Input struct {
	Kind     InputKind
	SenderID int64
	ChatID   int64
	// Text is the message text or media caption.
	Text    string
	Command string
	// Data is the callback payload for InputCallback.
	Data       string
	CallbackID string
	Media      *MediaEvent
}

func (in Input) HasPhoto() bool {
	return in.Media != nil && in.Media.Item != nil
}

// Choice is one inline button offered to the operator.
type Choice struct {
	Label string
	Data  string
}
