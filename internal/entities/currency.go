package entities

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// Denomination is one of the five coin types a purse can hold
type Denomination string

// Coin denominations
const (
	Platinum Denomination = "platinum"
	Gold     Denomination = "gold"
	Electrum Denomination = "electrum"
	Silver   Denomination = "silver"
	Bronze   Denomination = "bronze"
)

// Denominations lists all coin types from most to least valuable
var Denominations = []Denomination{Platinum, Gold, Electrum, Silver, Bronze}

// baseRates is the fixed exchange table: value of one coin in base units.
// Bronze is the base denomination; conversion remainders are credited to it.
var baseRates = map[Denomination]int{
	Platinum: 1000,
	Gold:     100,
	Electrum: 50,
	Silver:   10,
	Bronze:   1,
}

// BaseRate returns the value of one coin of the denomination in base units
func BaseRate(d Denomination) int {
	return baseRates[d]
}

// IsDenomination reports whether s names a known denomination
func IsDenomination(s string) bool {
	_, ok := baseRates[Denomination(s)]
	return ok
}

// Currency is a purse of coins, one non-negative count per denomination
type Currency struct {
	Coins map[Denomination]int `json:"coins"`
}

// NewCurrency creates an empty purse
func NewCurrency() Currency {
	return Currency{Coins: make(map[Denomination]int)}
}

// Amount returns the coin count for a denomination
func (c *Currency) Amount(d Denomination) int {
	return c.Coins[d]
}

// Add credits coins to the purse
func (c *Currency) Add(d Denomination, qty int) error {
	if qty < 0 {
		return errors.InvalidArgument("quantity cannot be negative")
	}
	if _, ok := baseRates[d]; !ok {
		return errors.InvalidArgumentf("unknown denomination %q", d)
	}
	if c.Coins == nil {
		c.Coins = make(map[Denomination]int)
	}
	c.Coins[d] += qty
	return nil
}

// Spend debits coins from the purse, failing on insufficient balance
func (c *Currency) Spend(d Denomination, qty int) error {
	if qty < 0 {
		return errors.InvalidArgument("quantity cannot be negative")
	}
	if _, ok := baseRates[d]; !ok {
		return errors.InvalidArgumentf("unknown denomination %q", d)
	}
	if c.Coins[d] < qty {
		return errors.FailedPreconditionf("not enough %s: have %d, need %d", d, c.Coins[d], qty)
	}
	c.Coins[d] -= qty
	return nil
}

// TotalBaseValue returns the purse's value in base (bronze) units
func (c *Currency) TotalBaseValue() int {
	total := 0
	for d, qty := range c.Coins {
		total += qty * baseRates[d]
	}
	return total
}

// Convert exchanges qty coins of one denomination for another at the fixed
// rates. The target amount is floor(qty*rateFrom/rateTo); the remainder in
// base units is credited to bronze, so total value in base units is
// preserved exactly.
func (c *Currency) Convert(from, to Denomination, qty int) error {
	if _, ok := baseRates[from]; !ok {
		return errors.InvalidArgumentf("unknown denomination %q", from)
	}
	if _, ok := baseRates[to]; !ok {
		return errors.InvalidArgumentf("unknown denomination %q", to)
	}
	if from == to {
		return errors.InvalidArgument("source and target denominations must differ")
	}
	if qty <= 0 {
		return errors.InvalidArgument("quantity must be positive")
	}
	if c.Coins[from] < qty {
		return errors.FailedPreconditionf("not enough %s: have %d, need %d", from, c.Coins[from], qty)
	}

	baseValue := qty * baseRates[from]
	target := baseValue / baseRates[to]
	remainder := baseValue - target*baseRates[to]

	if c.Coins == nil {
		c.Coins = make(map[Denomination]int)
	}
	c.Coins[from] -= qty
	c.Coins[to] += target
	c.Coins[Bronze] += remainder
	return nil
}
