package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

func TestRoster(t *testing.T) {
	r := entities.NewRoster("user-1")
	assert.Empty(t, r.Names())
	assert.Nil(t, r.ActiveCharacter())

	first := newTestCharacter(t)
	require.NoError(t, r.Add(first))
	assert.Equal(t, first.Name, r.Active, "a new character is selected")

	second, err := entities.NewCharacter("Polgara", "human", "female", "wizard", 18)
	require.NoError(t, err)
	require.NoError(t, r.Add(second))
	assert.Equal(t, "Polgara", r.Active)
	assert.Equal(t, []string{"Durnik", "Polgara"}, r.Names())

	err = r.Add(first)
	assert.True(t, errors.IsAlreadyExists(err))

	ch, err := r.Select("Durnik")
	require.NoError(t, err)
	assert.Equal(t, first, ch)
	assert.Equal(t, first, r.ActiveCharacter())

	_, err = r.Select("Garion")
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, r.Remove("Durnik"))
	assert.Empty(t, r.Active, "removing the active character clears the selection")
	assert.True(t, errors.IsNotFound(r.Remove("Durnik")))
}
