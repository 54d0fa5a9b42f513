// Package files stores map images and voice-note audio referenced from a
// character's journal. Characters hold opaque paths; the bytes live here.
package files

//go:generate mockgen -destination=mock/mock_store.go -package=filesmock github.com/tavernkeep/tavernkeep/internal/clients/files Store

import (
	"context"
)

// Kind tags what an attachment holds
type Kind string

// Attachment kinds
const (
	KindImage Kind = "image"
	KindVoice Kind = "voice"
)

// Store defines the interface for attachment persistence
type Store interface {
	// Put stores the attachment bytes and returns an opaque path
	// Returns errors.InvalidArgument for empty payloads
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves attachment bytes by path
	// Returns errors.NotFound if the path is unknown
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// PutInput defines the input for storing an attachment
type PutInput struct {
	Data []byte
	Kind Kind
}

// PutOutput defines the output for storing an attachment
type PutOutput struct {
	Path string
}

// GetInput defines the input for reading an attachment
type GetInput struct {
	Path string
}

// GetOutput defines the output for reading an attachment
type GetOutput struct {
	Data []byte
	Kind Kind
}
