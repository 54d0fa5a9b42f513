package entities

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// DieType identifies one of the standard polyhedral dice
type DieType string

// Die types
const (
	D4   DieType = "d4"
	D6   DieType = "d6"
	D8   DieType = "d8"
	D10  DieType = "d10"
	D12  DieType = "d12"
	D20  DieType = "d20"
	D100 DieType = "d100"
)

// DieTypes lists the dice in display order
var DieTypes = []DieType{D4, D6, D8, D10, D12, D20, D100}

var dieFaces = map[DieType]int{
	D4:   4,
	D6:   6,
	D8:   8,
	D10:  10,
	D12:  12,
	D20:  20,
	D100: 100,
}

// Faces returns the number of faces on the die, zero for unknown types
func (d DieType) Faces() int {
	return dieFaces[d]
}

// IsDieType reports whether s names a known die
func IsDieType(s string) bool {
	_, ok := dieFaces[DieType(s)]
	return ok
}

// RollRecord is one journal entry: every result rolled for a die type in a
// single throw of the pool.
type RollRecord struct {
	Die      DieType `json:"die"`
	Results  []int   `json:"results"`
	RolledAt int64   `json:"rolled_at"`
}

// DicePool holds the pending per-die counts built up before a throw
type DicePool map[DieType]int

// Increment adds one pending die of the given type
func (p DicePool) Increment(die DieType) error {
	if _, ok := dieFaces[die]; !ok {
		return errors.InvalidArgumentf("unknown die type %q", die)
	}
	p[die]++
	return nil
}

// Decrement removes one pending die of the given type, never going below
// zero.
func (p DicePool) Decrement(die DieType) error {
	if _, ok := dieFaces[die]; !ok {
		return errors.InvalidArgumentf("unknown die type %q", die)
	}
	if p[die] > 0 {
		p[die]--
	}
	return nil
}

// IsEmpty reports whether no dice are pending
func (p DicePool) IsEmpty() bool {
	for _, count := range p {
		if count > 0 {
			return false
		}
	}
	return true
}
