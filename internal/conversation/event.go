package conversation

import (
	"github.com/tavernkeep/tavernkeep/internal/clients/files"
)

// Event is one user action fed into the state machine
type Event interface {
	isEvent()
}

// ButtonPress is a tap on a rendered option
type ButtonPress struct {
	ID string
}

// TextInput is a free-text message
type TextInput struct {
	Value string
}

// Attachment is an uploaded file, already persisted by the caller. The
// engine only ever sees the opaque path.
type Attachment struct {
	Path string
	Kind files.Kind
}

func (ButtonPress) isEvent() {}
func (TextInput) isEvent()   {}
func (Attachment) isEvent()  {}
