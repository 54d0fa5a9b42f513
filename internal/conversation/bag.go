package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openBag(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	t.Scratch.BagPage = 0
	return show(StateBag, menu.Bag(ch, 0)), nil
}

func (e *Engine) bagNextPage(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if (t.Scratch.BagPage+1)*menu.PageSize < len(ch.Bag) {
		t.Scratch.BagPage++
	}
	return show(StateBag, menu.Bag(ch, t.Scratch.BagPage)), nil
}

func (e *Engine) bagPrevPage(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if t.Scratch.BagPage > 0 {
		t.Scratch.BagPage--
	}
	return show(StateBag, menu.Bag(ch, t.Scratch.BagPage)), nil
}

func (e *Engine) bagAddPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateBagAddItem,
		menu.Prompt("Describe the item as: name; description; quantity; weight"),
	), nil
}

func (e *Engine) bagAddItem(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	fields := splitFields(text)
	if len(fields) != 4 {
		return show(StateBagAddItem,
			menu.Alert("I need four parts: name; description; quantity; weight"),
			menu.Prompt("Describe the item as: name; description; quantity; weight"),
		), nil
	}
	qty, err := parseInt(fields[2])
	if err != nil {
		return domainFail(StateBagAddItem, err, menu.Prompt("Describe the item as: name; description; quantity; weight"))
	}
	weight, err := parseInt(fields[3])
	if err != nil {
		return domainFail(StateBagAddItem, err, menu.Prompt("Describe the item as: name; description; quantity; weight"))
	}

	item := &entities.Item{Name: fields[0], Description: fields[1], Quantity: qty, Weight: weight}
	if err := ch.AddItem(item); err != nil {
		return domainFail(StateBagAddItem, err, menu.Prompt("Describe the item as: name; description; quantity; weight"))
	}
	return show(StateBag, menu.Bag(ch, t.Scratch.BagPage)).mutated(), nil
}

func (e *Engine) bagOpenItem(_ context.Context, t *Turn, name string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	item, ok := ch.Item(name)
	if !ok {
		return domainFail(StateBag, errors.NotFoundf("no %s in the bag", name), menu.Bag(ch, t.Scratch.BagPage))
	}
	t.Scratch.EditingItem = name
	return show(StateBagItem, menu.ItemView(item)), nil
}

// itemBack returns from a nested prompt to the item view
func (e *Engine) itemBack(ctx context.Context, t *Turn) (*Outcome, error) {
	return e.bagOpenItem(ctx, t, t.Scratch.EditingItem)
}

func (e *Engine) itemAdjust(t *Turn, delta int) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	name := t.Scratch.EditingItem
	if err := ch.AdjustItemQuantity(name, delta); err != nil {
		item, ok := ch.Item(name)
		if !ok {
			return domainFail(StateBag, err, menu.Bag(ch, t.Scratch.BagPage))
		}
		return domainFail(StateBagItem, err, menu.ItemView(item))
	}
	item, _ := ch.Item(name)
	return show(StateBagItem, menu.ItemView(item)).mutated(), nil
}

func (e *Engine) itemIncrement(_ context.Context, t *Turn) (*Outcome, error) {
	return e.itemAdjust(t, 1)
}

func (e *Engine) itemDecrement(_ context.Context, t *Turn) (*Outcome, error) {
	return e.itemAdjust(t, -1)
}

func (e *Engine) itemQuantityPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateBagItemQuantity,
		menu.Prompt(fmt.Sprintf("How many %s in total?", t.Scratch.EditingItem)),
	), nil
}

func (e *Engine) itemSetQuantity(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	name := t.Scratch.EditingItem
	item, ok := ch.Item(name)
	if !ok {
		return domainFail(StateBag, errors.NotFoundf("no %s in the bag", name), menu.Bag(ch, t.Scratch.BagPage))
	}

	qty, err := parseInt(text)
	if err != nil {
		return domainFail(StateBagItemQuantity, err, menu.Prompt(fmt.Sprintf("How many %s in total?", name)))
	}
	if qty < 0 {
		return domainFail(StateBagItemQuantity,
			errors.InvalidArgument("quantity cannot be negative"),
			menu.Prompt(fmt.Sprintf("How many %s in total?", name)))
	}
	if err := ch.AdjustItemQuantity(name, qty-item.Quantity); err != nil {
		return domainFail(StateBagItemQuantity, err, menu.Prompt(fmt.Sprintf("How many %s in total?", name)))
	}
	return show(StateBagItem, menu.ItemView(item)).mutated(), nil
}

func (e *Engine) itemDrop(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	name := t.Scratch.EditingItem
	t.Scratch.EditingItem = ""
	if err := ch.RemoveItem(name); err != nil {
		return domainFail(StateBag, err, menu.Bag(ch, t.Scratch.BagPage))
	}
	t.Scratch.BagPage = 0
	return show(StateBag,
		menu.Alert(fmt.Sprintf("Dropped %s.", name)),
		menu.Bag(ch, 0),
	).mutated(), nil
}
