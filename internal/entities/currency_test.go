package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

func TestCurrency_AddAndSpend(t *testing.T) {
	purse := entities.NewCurrency()

	require.NoError(t, purse.Add(entities.Gold, 10))
	assert.Equal(t, 10, purse.Amount(entities.Gold))

	require.NoError(t, purse.Spend(entities.Gold, 4))
	assert.Equal(t, 6, purse.Amount(entities.Gold))

	err := purse.Spend(entities.Gold, 7)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, 6, purse.Amount(entities.Gold), "a failed spend changes nothing")

	err = purse.Add("doubloon", 1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCurrency_Convert(t *testing.T) {
	tests := []struct {
		name      string
		setup     map[entities.Denomination]int
		from      entities.Denomination
		to        entities.Denomination
		qty       int
		wantCoins map[entities.Denomination]int
	}{
		{
			name:      "gold to silver is exact",
			setup:     map[entities.Denomination]int{entities.Gold: 3},
			from:      entities.Gold,
			to:        entities.Silver,
			qty:       2,
			wantCoins: map[entities.Denomination]int{entities.Gold: 1, entities.Silver: 20, entities.Bronze: 0},
		},
		{
			name:      "silver to electrum floors with bronze remainder",
			setup:     map[entities.Denomination]int{entities.Silver: 7},
			from:      entities.Silver,
			to:        entities.Electrum,
			qty:       7,
			wantCoins: map[entities.Denomination]int{entities.Silver: 0, entities.Electrum: 1, entities.Bronze: 20},
		},
		{
			name:      "bronze to silver",
			setup:     map[entities.Denomination]int{entities.Bronze: 55},
			from:      entities.Bronze,
			to:        entities.Silver,
			qty:       55,
			wantCoins: map[entities.Denomination]int{entities.Silver: 5, entities.Bronze: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purse := entities.NewCurrency()
			for d, qty := range tt.setup {
				require.NoError(t, purse.Add(d, qty))
			}
			before := purse.TotalBaseValue()

			require.NoError(t, purse.Convert(tt.from, tt.to, tt.qty))

			assert.Equal(t, before, purse.TotalBaseValue(), "conversion preserves total value")
			for d, want := range tt.wantCoins {
				assert.Equal(t, want, purse.Amount(d), "denomination %s", d)
			}
		})
	}
}

func TestCurrency_Convert_Rejections(t *testing.T) {
	purse := entities.NewCurrency()
	require.NoError(t, purse.Add(entities.Silver, 3))

	err := purse.Convert(entities.Silver, entities.Silver, 1)
	assert.True(t, errors.IsInvalidArgument(err), "same denomination")

	err = purse.Convert(entities.Silver, entities.Gold, 0)
	assert.True(t, errors.IsInvalidArgument(err), "zero quantity")

	err = purse.Convert(entities.Silver, entities.Gold, 4)
	assert.True(t, errors.IsFailedPrecondition(err), "insufficient balance")

	err = purse.Convert("doubloon", entities.Gold, 1)
	assert.True(t, errors.IsInvalidArgument(err))

	assert.Equal(t, 3, purse.Amount(entities.Silver), "failed conversions change nothing")
}
