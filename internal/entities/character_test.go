package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

func newTestCharacter(t *testing.T) *entities.Character {
	t.Helper()
	ch, err := entities.NewCharacter("Durnik", "dwarf", "male", "fighter", 30)
	require.NoError(t, err)
	return ch
}

func TestNewCharacter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		create func() (*entities.Character, error)
	}{
		{"empty name", func() (*entities.Character, error) {
			return entities.NewCharacter("", "dwarf", "male", "fighter", 30)
		}},
		{"empty race", func() (*entities.Character, error) {
			return entities.NewCharacter("Durnik", "", "male", "fighter", 30)
		}},
		{"empty class", func() (*entities.Character, error) {
			return entities.NewCharacter("Durnik", "dwarf", "male", "", 30)
		}},
		{"non-positive hit points", func() (*entities.Character, error) {
			return entities.NewCharacter("Durnik", "dwarf", "male", "fighter", 0)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.create()
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestCharacter_Defaults(t *testing.T) {
	ch := newTestCharacter(t)

	assert.Equal(t, 30, ch.CurrentHitPoints)
	assert.Equal(t, 1, ch.Classes.TotalLevel())
	assert.Equal(t, entities.DefaultFeatureScore, ch.Features.Strength)
	assert.Equal(t, 150, ch.Features.CarryCapacity())
	assert.Equal(t, "character", ch.GetType())
	assert.Equal(t, "Durnik", ch.GetID())
}

func TestCharacter_DamageAndDown(t *testing.T) {
	ch := newTestCharacter(t)

	require.NoError(t, ch.ApplyDamage(12))
	assert.Equal(t, 18, ch.CurrentHitPoints)
	assert.False(t, ch.IsDown())

	// Damage keeps accumulating below zero; down at negative max
	require.NoError(t, ch.ApplyDamage(40))
	assert.Equal(t, -22, ch.CurrentHitPoints)
	assert.False(t, ch.IsDown())

	require.NoError(t, ch.ApplyDamage(8))
	assert.Equal(t, -30, ch.CurrentHitPoints)
	assert.True(t, ch.IsDown())

	err := ch.ApplyDamage(0)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCharacter_Heal(t *testing.T) {
	ch := newTestCharacter(t)
	require.NoError(t, ch.ApplyDamage(20))

	assert.Equal(t, 0, ch.HealOverflow(5))
	require.NoError(t, ch.Heal(5, false))
	assert.Equal(t, 15, ch.CurrentHitPoints)

	assert.Equal(t, 10, ch.HealOverflow(25))

	require.NoError(t, ch.Heal(25, false))
	assert.Equal(t, 30, ch.CurrentHitPoints, "excess is capped when not kept")

	require.NoError(t, ch.Heal(7, true))
	assert.Equal(t, 37, ch.CurrentHitPoints, "kept excess becomes temporary hit points")
}

func TestCharacter_Rests(t *testing.T) {
	ch := newTestCharacter(t)
	require.NoError(t, ch.ApplyDamage(25))
	require.NoError(t, ch.Slots.Set(1, 3))
	require.NoError(t, ch.Slots.Use(1))
	require.NoError(t, ch.AddAbility(&entities.Ability{
		Name: "Second Wind", Restoration: entities.RestoreShortRest, MaxUses: 1,
	}))
	require.NoError(t, ch.AddAbility(&entities.Ability{
		Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: 2,
	}))

	ch.ShortRest()
	second, _ := ch.Ability("Second Wind")
	rage, _ := ch.Ability("Rage")
	assert.Equal(t, 1, second.Uses, "short rest refills short-rest abilities")
	assert.Equal(t, 0, rage.Uses, "short rest leaves long-rest abilities alone")
	assert.Equal(t, 5, ch.CurrentHitPoints, "short rest leaves hit points alone")

	ch.LongRest()
	assert.Equal(t, 30, ch.CurrentHitPoints)
	assert.Equal(t, 2, rage.Uses)
	slot, _ := ch.Slots.At(1)
	assert.Equal(t, 0, slot.Used, "long rest restores all slots")
}

func TestCharacter_Bag(t *testing.T) {
	ch := newTestCharacter(t)

	require.NoError(t, ch.AddItem(&entities.Item{Name: "Rope", Quantity: 2, Weight: 10}))
	assert.Equal(t, 20, ch.Encumbrance())

	err := ch.AddItem(&entities.Item{Name: "Rope", Quantity: 1, Weight: 1})
	assert.True(t, errors.IsAlreadyExists(err))

	err = ch.AddItem(&entities.Item{Name: "Anvil", Quantity: 1, Weight: 200})
	assert.True(t, errors.IsFailedPrecondition(err), "capacity is 150")

	require.NoError(t, ch.AdjustItemQuantity("Rope", 3))
	assert.Equal(t, 50, ch.Encumbrance())

	err = ch.AdjustItemQuantity("Rope", -6)
	assert.True(t, errors.IsOutOfRange(err), "quantity never goes below zero")

	err = ch.AdjustItemQuantity("Rope", 11)
	assert.True(t, errors.IsFailedPrecondition(err), "increase past capacity")

	require.NoError(t, ch.RemoveItem("Rope"))
	assert.Equal(t, 0, ch.Encumbrance())
	err = ch.RemoveItem("Rope")
	assert.True(t, errors.IsNotFound(err))
}

func TestCharacter_BagSorted(t *testing.T) {
	ch := newTestCharacter(t)
	require.NoError(t, ch.AddItem(&entities.Item{Name: "Torch", Quantity: 1, Weight: 1}))
	require.NoError(t, ch.AddItem(&entities.Item{Name: "Bedroll", Quantity: 1, Weight: 7}))

	assert.Equal(t, "Bedroll", ch.Bag[0].Name)
	assert.Equal(t, "Torch", ch.Bag[1].Name)
}

func TestCharacter_LearnSpell(t *testing.T) {
	ch := newTestCharacter(t)

	err := ch.LearnSpell(&entities.Spell{Name: "Fireball", Level: 3})
	assert.True(t, errors.IsFailedPrecondition(err), "no slots at all")

	require.NoError(t, ch.Slots.Set(2, 2))
	err = ch.LearnSpell(&entities.Spell{Name: "Fireball", Level: 3})
	assert.True(t, errors.IsFailedPrecondition(err), "highest slot is below the spell level")

	require.NoError(t, ch.Slots.Set(4, 1))
	require.NoError(t, ch.LearnSpell(&entities.Spell{Name: "Fireball", Level: 3}),
		"a higher-level slot is enough to learn")

	err = ch.LearnSpell(&entities.Spell{Name: "Fireball", Level: 3})
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestCharacter_CastSpell(t *testing.T) {
	ch := newTestCharacter(t)
	require.NoError(t, ch.Slots.Set(2, 1))
	require.NoError(t, ch.Slots.Set(3, 1))
	require.NoError(t, ch.LearnSpell(&entities.Spell{Name: "Invisibility", Level: 2}))

	err := ch.CastSpell("Invisibility", 1)
	assert.True(t, errors.IsFailedPrecondition(err), "slot below spell level")

	require.NoError(t, ch.CastSpell("Invisibility", 3), "higher slot may be spent")
	slot, _ := ch.Slots.At(3)
	assert.Equal(t, 1, slot.Used)

	err = ch.CastSpell("Invisibility", 3)
	assert.True(t, errors.IsResourceExhausted(err), "no level 3 slots left")

	err = ch.CastSpell("Unknown", 2)
	assert.True(t, errors.IsNotFound(err))
}

func TestCharacter_SetSlotsMode(t *testing.T) {
	ch := newTestCharacter(t)

	require.NoError(t, ch.SetSlotsMode(entities.SlotsModeManual))
	assert.Equal(t, entities.SlotsModeManual, ch.SlotsMode)

	err := ch.SetSlotsMode(entities.SlotsModeAutomatic)
	assert.True(t, errors.IsUnimplemented(err))
	assert.Equal(t, entities.SlotsModeManual, ch.SlotsMode, "rejected mode change leaves the old mode")
}

func TestCharacter_ArmorClass(t *testing.T) {
	ch := newTestCharacter(t)
	assert.Equal(t, 0, ch.ArmorClass())

	ch.BaseArmorClass = 14
	ch.ShieldArmorClass = 2
	ch.MagicArmorClass = 1
	assert.Equal(t, 17, ch.ArmorClass())
}

func TestCharacter_Journal(t *testing.T) {
	ch := newTestCharacter(t)

	require.NoError(t, ch.SetNote(entities.Note{Title: "Quest", Text: "find the heir"}))
	require.NoError(t, ch.SetNote(entities.Note{Title: "Ambush", AttachmentPath: "file-1"}))
	assert.Equal(t, []string{"Ambush", "Quest"}, ch.NoteTitles())

	require.NoError(t, ch.SetNote(entities.Note{Title: "Quest", Text: "heir found"}))
	assert.Equal(t, "heir found", ch.Notes["Quest"].Text, "same title replaces")

	require.NoError(t, ch.DeleteNote("Quest"))
	assert.True(t, errors.IsNotFound(ch.DeleteNote("Quest")))

	require.NoError(t, ch.AddMap("Ravenshollow", "file-2"))
	require.NoError(t, ch.AddMap("Ravenshollow", "file-3"))
	assert.Len(t, ch.Maps["Ravenshollow"], 2)
	assert.Equal(t, []string{"Ravenshollow"}, ch.MapZones())

	require.NoError(t, ch.DeleteMapZone("Ravenshollow"))
	assert.True(t, errors.IsNotFound(ch.DeleteMapZone("Ravenshollow")))
}
