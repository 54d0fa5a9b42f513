// Package transport abstracts the chat surface the bot talks through. The
// conversation engine renders menu screens; a transport delivers them and
// feeds user events back.
package transport

//go:generate mockgen -destination=mock/mock_transport.go -package=transportmock github.com/tavernkeep/tavernkeep/internal/transport Transport

import (
	"context"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// EventKind tags what a user sent
type EventKind string

// Event kinds
const (
	EventButton     EventKind = "button"
	EventText       EventKind = "text"
	EventAttachment EventKind = "attachment"
)

// Event is one inbound user action
type Event struct {
	UserID string
	Kind   EventKind

	// Payload is the button ID or the text line
	Payload string

	// Data and AttachmentKind are set for attachment events
	Data           []byte
	AttachmentKind files.Kind
}

// MessageRef identifies a delivered message for later edits
type MessageRef string

// Transport defines the interface for a chat surface
type Transport interface {
	// Send delivers a screen to the user and returns a reference to it
	Send(ctx context.Context, userID string, screen menu.Screen) (MessageRef, error)

	// Edit replaces a previously sent message in place
	Edit(ctx context.Context, ref MessageRef, screen menu.Screen) error

	// Delete removes a previously sent message
	Delete(ctx context.Context, ref MessageRef) error

	// Events returns the inbound event stream. The channel closes when the
	// transport shuts down.
	Events() <-chan Event
}
