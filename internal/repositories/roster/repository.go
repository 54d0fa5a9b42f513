// Package roster provides the interface for character roster persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/tavernkeep/tavernkeep/internal/repositories/roster Repository

import (
	"context"

	"github.com/tavernkeep/tavernkeep/internal/entities"
)

// Repository defines the interface for roster persistence. Every read
// applies the schema migration pipeline before returning, so callers only
// ever see current-version characters.
type Repository interface {
	// Get retrieves a user's roster. A user with no saved characters gets
	// an empty roster, not an error.
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the full roster for a user
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes one character from a user's roster
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for loading a roster
type GetInput struct {
	UserID string
}

// GetOutput defines the output for loading a roster
type GetOutput struct {
	Roster *entities.Roster
}

// SaveInput defines the input for saving a roster
type SaveInput struct {
	Roster *entities.Roster
}

// SaveOutput defines the output for saving a roster
type SaveOutput struct{}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	UserID        string
	CharacterName string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
