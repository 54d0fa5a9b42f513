package conversation

import (
	"github.com/tavernkeep/tavernkeep/internal/entities"
)

// CharacterDraft collects the creation-flow answers before the character
// exists.
type CharacterDraft struct {
	Name   string
	Race   string
	Gender string
	Class  string
}

// AbilityDraft collects the add-ability answers across its three prompts
type AbilityDraft struct {
	Name        string
	Description string
	MaxUses     int
	Passive     bool
}

// Reassignment is the freed levels waiting for a destination class after a
// class removal. Unlike the rest of the scratch space it survives the
// global fallback and blocks leaving the conversation.
type Reassignment struct {
	Levels     int
	Candidates []string
}

// Scratch is the per-session working memory: partial inputs and view
// positions that are not part of the character.
type Scratch struct {
	Draft        *CharacterDraft
	DeleteTarget string

	BagPage     int
	SpellPage   int
	EditingItem string

	CurrencyOp    string
	CurrencyDenom entities.Denomination
	ConvertFrom   entities.Denomination
	ConvertTo     entities.Denomination

	AbilityDraft  *AbilityDraft
	ViewedAbility string

	ViewedSpell  string
	CastingSpell string

	HealAmount int
	HealExcess int

	DicePool entities.DicePool

	NoteTitle  string
	ViewedNote string
	ZoneName   string

	ArmorComponent string
	EditingFeature string

	PendingReassignment *Reassignment
}

// Currency operations stored in Scratch.CurrencyOp
const (
	currencyOpDeposit  = "deposit"
	currencyOpWithdraw = "withdraw"
)

// NewScratch returns an empty scratch space
func NewScratch() *Scratch {
	return &Scratch{DicePool: make(entities.DicePool)}
}

// ClearVolatile resets everything except a pending reassignment, which must
// be resolved explicitly before the session can move on.
func (s *Scratch) ClearVolatile() {
	pending := s.PendingReassignment
	*s = *NewScratch()
	s.PendingReassignment = pending
}
