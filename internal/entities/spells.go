package entities

import (
	"sort"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// Spell level bounds
const (
	MinSpellLevel = 1
	MaxSpellLevel = 9
)

// Spell is a learned spell, unique by name within a character
type Spell struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level"`
}

// Validate checks the spell's fields
func (s *Spell) Validate() error {
	if s.Name == "" {
		return errors.InvalidArgument("spell name cannot be empty")
	}
	if s.Level < MinSpellLevel || s.Level > MaxSpellLevel {
		return errors.OutOfRangef("spell level must be between %d and %d", MinSpellLevel, MaxSpellLevel)
	}
	return nil
}

// SpellSlot is a per-level consumable casting resource
type SpellSlot struct {
	Level int `json:"level"`
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Remaining returns the number of unspent slots at this level
func (s *SpellSlot) Remaining() int {
	return s.Total - s.Used
}

// Use spends one slot. Fails when all slots at this level are spent.
func (s *SpellSlot) Use() error {
	if s.Used >= s.Total {
		return errors.ResourceExhaustedf("no level %d slots remaining", s.Level)
	}
	s.Used++
	return nil
}

// Restore returns one spent slot. Fails when none are spent.
func (s *SpellSlot) Restore() error {
	if s.Used <= 0 {
		return errors.FailedPreconditionf("no level %d slots are spent", s.Level)
	}
	s.Used--
	return nil
}

// SpellSlots maps slot level to the slot resource for that level
type SpellSlots map[int]*SpellSlot

// SlotsMode selects how spell slots are managed
type SlotsMode string

// Slot management modes. Automatic mode is declared in the menus but its
// class/level tables are not implemented; selecting it is rejected.
const (
	SlotsModeUnset     SlotsMode = ""
	SlotsModeManual    SlotsMode = "manual"
	SlotsModeAutomatic SlotsMode = "automatic"
)

// Set creates or resizes the slot at the given level. Shrinking below the
// spent count clamps Used to the new total.
func (ss SpellSlots) Set(level, total int) error {
	if level < MinSpellLevel || level > MaxSpellLevel {
		return errors.OutOfRangef("slot level must be between %d and %d", MinSpellLevel, MaxSpellLevel)
	}
	if total < 0 {
		return errors.InvalidArgument("slot count cannot be negative")
	}

	slot, ok := ss[level]
	if !ok {
		ss[level] = &SpellSlot{Level: level, Total: total}
		return nil
	}
	slot.Total = total
	if slot.Used > total {
		slot.Used = total
	}
	return nil
}

// Remove deletes the slot at the given level
func (ss SpellSlots) Remove(level int) error {
	if _, ok := ss[level]; !ok {
		return errors.NotFoundf("no level %d slot", level)
	}
	delete(ss, level)
	return nil
}

// At returns the slot at the given level, if present
func (ss SpellSlots) At(level int) (*SpellSlot, bool) {
	slot, ok := ss[level]
	return slot, ok
}

// Use spends one slot at the given level
func (ss SpellSlots) Use(level int) error {
	slot, ok := ss[level]
	if !ok {
		return errors.NotFoundf("no level %d slot", level)
	}
	return slot.Use()
}

// Restore returns one spent slot at the given level
func (ss SpellSlots) Restore(level int) error {
	slot, ok := ss[level]
	if !ok {
		return errors.NotFoundf("no level %d slot", level)
	}
	return slot.Restore()
}

// RestoreAll marks every slot as unspent
func (ss SpellSlots) RestoreAll() {
	for _, slot := range ss {
		slot.Used = 0
	}
}

// Levels returns the slot levels in ascending order
func (ss SpellSlots) Levels() []int {
	levels := make([]int, 0, len(ss))
	for lvl := range ss {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// AtOrAbove returns the slots of the given level or higher, ascending.
// Casting a spell filters the slot choice to this set.
func (ss SpellSlots) AtOrAbove(level int) []*SpellSlot {
	slots := make([]*SpellSlot, 0, len(ss))
	for _, lvl := range ss.Levels() {
		if lvl >= level {
			slots = append(slots, ss[lvl])
		}
	}
	return slots
}

// HasAtOrAbove reports whether any slot of the given level or higher exists
func (ss SpellSlots) HasAtOrAbove(level int) bool {
	for lvl := range ss {
		if lvl >= level {
			return true
		}
	}
	return false
}
