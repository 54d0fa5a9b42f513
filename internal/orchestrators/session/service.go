// Package session drives one conversation turn per inbound event: load the
// roster, run the engine, persist on mutation, render the outcome. Events
// from the same user are strictly sequenced; different users proceed in
// parallel.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/tavernkeep/tavernkeep/internal/orchestrators/session Service

import (
	"context"

	"github.com/tavernkeep/tavernkeep/internal/transport"
)

// Service defines the interface for session orchestration
type Service interface {
	// HandleEvent runs one conversation turn for an inbound event
	HandleEvent(ctx context.Context, input *HandleEventInput) (*HandleEventOutput, error)

	// Run consumes the transport's event stream until it closes or the
	// context is cancelled
	Run(ctx context.Context) error
}

// HandleEventInput defines the input for one conversation turn
type HandleEventInput struct {
	Event transport.Event
}

// HandleEventOutput defines the output for one conversation turn
type HandleEventOutput struct {
	// Persisted reports whether the turn saved roster changes
	Persisted bool

	// Ended reports whether the turn closed the session
	Ended bool
}
