package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openSettings(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateSettings, menu.Settings(ch)), nil
}

func (e *Engine) settingsToggleSpellView(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if ch.Settings.SpellView == entities.SpellViewCompact {
		ch.Settings.SpellView = entities.SpellViewPaged
	} else {
		ch.Settings.SpellView = entities.SpellViewCompact
	}
	return show(StateSettings, menu.Settings(ch)).mutated(), nil
}

func (e *Engine) settingsToggleCurrencyView(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if ch.Settings.CurrencyDisplay == entities.CurrencyDisplayTotal {
		ch.Settings.CurrencyDisplay = entities.CurrencyDisplaySplit
	} else {
		ch.Settings.CurrencyDisplay = entities.CurrencyDisplayTotal
	}
	return show(StateSettings, menu.Settings(ch)).mutated(), nil
}

// Armor class. The three components are edited independently; a character
// that never set a base value is walked straight into setting it.

func (e *Engine) openArmorClass(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if ch.BaseArmorClass == 0 {
		t.Scratch.ArmorComponent = "base"
		return show(StateArmorClassEdit,
			menu.Prompt("No armor recorded yet. What is the base armor class?"),
		), nil
	}
	return show(StateArmorClass, menu.ArmorClass(ch)), nil
}

func (e *Engine) acEdit(t *Turn, component string) (*Outcome, error) {
	t.Scratch.ArmorComponent = component
	return show(StateArmorClassEdit,
		menu.Prompt(fmt.Sprintf("What is the %s armor value?", component)),
	), nil
}

func (e *Engine) acEditBase(_ context.Context, t *Turn) (*Outcome, error) {
	return e.acEdit(t, "base")
}

func (e *Engine) acEditShield(_ context.Context, t *Turn) (*Outcome, error) {
	return e.acEdit(t, "shield")
}

func (e *Engine) acEditMagic(_ context.Context, t *Turn) (*Outcome, error) {
	return e.acEdit(t, "magic")
}

func (e *Engine) acEditText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	value, err := parseInt(text)
	if err != nil {
		return domainFail(StateArmorClassEdit, err, menu.Prompt("Send the armor value as a number."))
	}
	if value < 0 {
		return domainFail(StateArmorClassEdit,
			errors.InvalidArgument("armor value cannot be negative"),
			menu.Prompt("Send the armor value as a number."))
	}

	switch t.Scratch.ArmorComponent {
	case "base":
		ch.BaseArmorClass = value
	case "shield":
		ch.ShieldArmorClass = value
	case "magic":
		ch.MagicArmorClass = value
	default:
		return nil, errors.Internalf("unknown armor component %q", t.Scratch.ArmorComponent)
	}
	t.Scratch.ArmorComponent = ""
	return show(StateArmorClass, menu.ArmorClass(ch)).mutated(), nil
}
