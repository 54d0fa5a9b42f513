package entities

import (
	"sort"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// Roster is one user's set of characters plus at most one active selection.
// There are no special paths for the single-character case: zero or more
// characters, active-or-not, uniformly.
type Roster struct {
	UserID     string       `json:"user_id"`
	Characters []*Character `json:"characters,omitempty"`
	Active     string       `json:"active,omitempty"`
}

// NewRoster creates an empty roster for a user
func NewRoster(userID string) *Roster {
	return &Roster{UserID: userID}
}

// Names returns the character names in sorted order
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Characters))
	for _, ch := range r.Characters {
		names = append(names, ch.Name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named character, if present
func (r *Roster) Get(name string) (*Character, bool) {
	for _, ch := range r.Characters {
		if ch.Name == name {
			return ch, true
		}
	}
	return nil, false
}

// Add inserts a character, enforcing name uniqueness, and selects it
func (r *Roster) Add(ch *Character) error {
	if ch == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	if _, ok := r.Get(ch.Name); ok {
		return errors.AlreadyExistsf("a character named %s already exists", ch.Name)
	}
	r.Characters = append(r.Characters, ch)
	r.Active = ch.Name
	return nil
}

// Remove deletes the named character and everything it owns. A deleted
// active selection is cleared.
func (r *Roster) Remove(name string) error {
	for i, ch := range r.Characters {
		if ch.Name == name {
			r.Characters = append(r.Characters[:i], r.Characters[i+1:]...)
			if r.Active == name {
				r.Active = ""
			}
			return nil
		}
	}
	return errors.NotFoundf("no character named %s", name)
}

// Select marks the named character as active
func (r *Roster) Select(name string) (*Character, error) {
	ch, ok := r.Get(name)
	if !ok {
		return nil, errors.NotFoundf("no character named %s", name)
	}
	r.Active = name
	return ch, nil
}

// ActiveCharacter returns the selected character, nil when none is active
func (r *Roster) ActiveCharacter() *Character {
	if r.Active == "" {
		return nil
	}
	ch, ok := r.Get(r.Active)
	if !ok {
		return nil
	}
	return ch
}
