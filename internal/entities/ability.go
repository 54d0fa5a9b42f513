package entities

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// RestorationType says which rest refills an ability's uses
type RestorationType string

// Restoration types
const (
	RestoreShortRest RestorationType = "short_rest"
	RestoreLongRest  RestorationType = "long_rest"
)

// Ability is an action or passive trait with limited uses, unique by name
// within a character. Activated is only meaningful for passives.
type Ability struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Passive     bool            `json:"passive"`
	Restoration RestorationType `json:"restoration"`
	MaxUses     int             `json:"max_uses"`
	Uses        int             `json:"uses"`
	Activated   bool            `json:"activated,omitempty"`
}

// Validate checks the ability's fields
func (a *Ability) Validate() error {
	if a.Name == "" {
		return errors.InvalidArgument("ability name cannot be empty")
	}
	if a.MaxUses < 0 {
		return errors.InvalidArgument("max uses cannot be negative")
	}
	if a.Uses < 0 || a.Uses > a.MaxUses {
		return errors.OutOfRangef("uses must be between 0 and %d", a.MaxUses)
	}
	if a.Restoration != RestoreShortRest && a.Restoration != RestoreLongRest {
		return errors.InvalidArgumentf("unknown restoration type %q", a.Restoration)
	}
	return nil
}

// Use spends one use of the ability
func (a *Ability) Use() error {
	if a.Uses <= 0 {
		return errors.ResourceExhaustedf("%s has no uses remaining", a.Name)
	}
	a.Uses--
	return nil
}

// RestoreUse returns one spent use
func (a *Ability) RestoreUse() error {
	if a.Uses >= a.MaxUses {
		return errors.FailedPreconditionf("%s is already at full uses", a.Name)
	}
	a.Uses++
	return nil
}

// Refill resets the ability to full uses
func (a *Ability) Refill() {
	a.Uses = a.MaxUses
}

// ToggleActivated flips the activation flag of a passive ability
func (a *Ability) ToggleActivated() error {
	if !a.Passive {
		return errors.FailedPreconditionf("%s is not a passive ability", a.Name)
	}
	a.Activated = !a.Activated
	return nil
}
