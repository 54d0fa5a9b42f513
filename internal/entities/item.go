package entities

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// Item is a bag entry, unique by name within a character. Weight is per
// unit; the carried total is weight times quantity.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Weight      int    `json:"weight"`
}

// Validate checks the item's fields
func (i *Item) Validate() error {
	if i.Name == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}
	if i.Quantity < 0 {
		return errors.InvalidArgument("quantity cannot be negative")
	}
	if i.Weight < 0 {
		return errors.InvalidArgument("weight cannot be negative")
	}
	return nil
}

// CarriedWeight returns the item's contribution to encumbrance
func (i *Item) CarriedWeight() int {
	return i.Weight * i.Quantity
}
