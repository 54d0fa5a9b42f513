package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

func TestSpell_Validate(t *testing.T) {
	assert.NoError(t, (&entities.Spell{Name: "Shield", Level: 1}).Validate())
	assert.True(t, errors.IsInvalidArgument((&entities.Spell{Level: 1}).Validate()))
	assert.True(t, errors.IsOutOfRange((&entities.Spell{Name: "Wish", Level: 10}).Validate()))
	assert.True(t, errors.IsOutOfRange((&entities.Spell{Name: "Cantrip", Level: 0}).Validate()))
}

func TestSpellSlots_SetBounds(t *testing.T) {
	slots := make(entities.SpellSlots)

	assert.True(t, errors.IsOutOfRange(slots.Set(0, 2)))
	assert.True(t, errors.IsOutOfRange(slots.Set(10, 2)))
	assert.True(t, errors.IsInvalidArgument(slots.Set(1, -1)))

	require.NoError(t, slots.Set(1, 3))
	require.NoError(t, slots.Use(1))
	require.NoError(t, slots.Use(1))

	// Shrinking below the spent count clamps Used
	require.NoError(t, slots.Set(1, 1))
	slot, ok := slots.At(1)
	require.True(t, ok)
	assert.Equal(t, 1, slot.Used)
	assert.Equal(t, 0, slot.Remaining())
}

func TestSpellSlots_UseAndRestore(t *testing.T) {
	slots := make(entities.SpellSlots)
	require.NoError(t, slots.Set(2, 2))

	assert.True(t, errors.IsFailedPrecondition(slots.Restore(2)), "nothing spent yet")

	require.NoError(t, slots.Use(2))
	require.NoError(t, slots.Use(2))
	assert.True(t, errors.IsResourceExhausted(slots.Use(2)))

	require.NoError(t, slots.Restore(2))
	slot, _ := slots.At(2)
	assert.Equal(t, 1, slot.Remaining())

	assert.True(t, errors.IsNotFound(slots.Use(5)))
	assert.True(t, errors.IsNotFound(slots.Restore(5)))
}

func TestSpellSlots_RestoreAll(t *testing.T) {
	slots := make(entities.SpellSlots)
	require.NoError(t, slots.Set(1, 4))
	require.NoError(t, slots.Set(3, 2))
	require.NoError(t, slots.Use(1))
	require.NoError(t, slots.Use(3))
	require.NoError(t, slots.Use(3))

	slots.RestoreAll()
	for _, lvl := range slots.Levels() {
		slot, _ := slots.At(lvl)
		assert.Equal(t, 0, slot.Used, "level %d", lvl)
	}
}

func TestSpellSlots_AtOrAbove(t *testing.T) {
	slots := make(entities.SpellSlots)
	require.NoError(t, slots.Set(1, 1))
	require.NoError(t, slots.Set(3, 1))
	require.NoError(t, slots.Set(5, 1))

	eligible := slots.AtOrAbove(3)
	require.Len(t, eligible, 2)
	assert.Equal(t, 3, eligible[0].Level)
	assert.Equal(t, 5, eligible[1].Level)

	assert.True(t, slots.HasAtOrAbove(5))
	assert.False(t, slots.HasAtOrAbove(6))
	assert.Equal(t, []int{1, 3, 5}, slots.Levels())
}

func TestSpellSlots_Remove(t *testing.T) {
	slots := make(entities.SpellSlots)
	require.NoError(t, slots.Set(2, 1))
	require.NoError(t, slots.Remove(2))
	assert.True(t, errors.IsNotFound(slots.Remove(2)))
}
