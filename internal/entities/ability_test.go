package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

func TestAbility_Validate(t *testing.T) {
	valid := entities.Ability{Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: 3, Uses: 3}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		ability entities.Ability
	}{
		{"empty name", entities.Ability{Restoration: entities.RestoreLongRest}},
		{"negative max uses", entities.Ability{Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: -1}},
		{"uses above max", entities.Ability{Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: 1, Uses: 2}},
		{"unknown restoration", entities.Ability{Name: "Rage", Restoration: "nap", MaxUses: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.ability.Validate())
		})
	}
}

func TestAbility_UseAndRestore(t *testing.T) {
	a := entities.Ability{Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: 2, Uses: 2}

	require.NoError(t, a.Use())
	require.NoError(t, a.Use())
	assert.True(t, errors.IsResourceExhausted(a.Use()))

	require.NoError(t, a.RestoreUse())
	assert.Equal(t, 1, a.Uses)

	a.Refill()
	assert.Equal(t, 2, a.Uses)
	assert.True(t, errors.IsFailedPrecondition(a.RestoreUse()), "already full")
}

func TestAbility_ToggleActivated(t *testing.T) {
	action := entities.Ability{Name: "Rage", Restoration: entities.RestoreLongRest, MaxUses: 1}
	assert.True(t, errors.IsFailedPrecondition(action.ToggleActivated()))

	passive := entities.Ability{Name: "Darkvision", Passive: true, Restoration: entities.RestoreLongRest}
	require.NoError(t, passive.ToggleActivated())
	assert.True(t, passive.Activated)
	require.NoError(t, passive.ToggleActivated())
	assert.False(t, passive.Activated)
}
