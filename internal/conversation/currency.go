package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openCurrency(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	t.Scratch.CurrencyOp = ""
	t.Scratch.CurrencyDenom = ""
	return show(StateCurrency, menu.Currency(ch)), nil
}

func (e *Engine) currencyOpPrompt(t *Turn, op, denom string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if !entities.IsDenomination(denom) {
		return domainFail(StateCurrency,
			errors.InvalidArgumentf("unknown denomination %q", denom),
			menu.Currency(ch))
	}
	t.Scratch.CurrencyOp = op
	t.Scratch.CurrencyDenom = entities.Denomination(denom)

	verb := "add"
	if op == currencyOpWithdraw {
		verb = "spend"
	}
	return show(StateCurrencyAmount,
		menu.Prompt(fmt.Sprintf("How many %s coins do you want to %s?", denom, verb)),
	), nil
}

func (e *Engine) currencyDeposit(_ context.Context, t *Turn, denom string) (*Outcome, error) {
	return e.currencyOpPrompt(t, currencyOpDeposit, denom)
}

func (e *Engine) currencyWithdraw(_ context.Context, t *Turn, denom string) (*Outcome, error) {
	return e.currencyOpPrompt(t, currencyOpWithdraw, denom)
}

func (e *Engine) currencyAmount(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	qty, err := parsePositive(text)
	if err != nil {
		return domainFail(StateCurrencyAmount, err, menu.Prompt("How many coins?"))
	}

	denom := t.Scratch.CurrencyDenom
	switch t.Scratch.CurrencyOp {
	case currencyOpDeposit:
		err = ch.Purse.Add(denom, qty)
	case currencyOpWithdraw:
		err = ch.Purse.Spend(denom, qty)
	default:
		return nil, errors.Internalf("unknown currency operation %q", t.Scratch.CurrencyOp)
	}
	if err != nil {
		return domainFail(StateCurrency, err, menu.Currency(ch))
	}

	t.Scratch.CurrencyOp = ""
	t.Scratch.CurrencyDenom = ""
	return show(StateCurrency, menu.Currency(ch)).mutated(), nil
}

// Converter. Source and target can be picked in either order; the exchange
// button appears once both are set.

func (e *Engine) currencyConvertOpen(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateCurrencyConvert, menu.Convert(ch, t.Scratch.ConvertFrom, t.Scratch.ConvertTo)), nil
}

func (e *Engine) convertFrom(_ context.Context, t *Turn, denom string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if !entities.IsDenomination(denom) {
		return domainFail(StateCurrencyConvert,
			errors.InvalidArgumentf("unknown denomination %q", denom),
			menu.Convert(ch, t.Scratch.ConvertFrom, t.Scratch.ConvertTo))
	}
	t.Scratch.ConvertFrom = entities.Denomination(denom)
	return show(StateCurrencyConvert, menu.Convert(ch, t.Scratch.ConvertFrom, t.Scratch.ConvertTo)), nil
}

func (e *Engine) convertTo(_ context.Context, t *Turn, denom string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if !entities.IsDenomination(denom) {
		return domainFail(StateCurrencyConvert,
			errors.InvalidArgumentf("unknown denomination %q", denom),
			menu.Convert(ch, t.Scratch.ConvertFrom, t.Scratch.ConvertTo))
	}
	t.Scratch.ConvertTo = entities.Denomination(denom)
	return show(StateCurrencyConvert, menu.Convert(ch, t.Scratch.ConvertFrom, t.Scratch.ConvertTo)), nil
}

func (e *Engine) convertGo(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	from, to := t.Scratch.ConvertFrom, t.Scratch.ConvertTo
	if from == "" || to == "" || from == to {
		return domainFail(StateCurrencyConvert,
			errors.FailedPrecondition("pick two different denominations first"),
			menu.Convert(ch, from, to))
	}
	return show(StateCurrencyConvertAmount,
		menu.Prompt(fmt.Sprintf("How many %s coins do you want to convert to %s? You have %d.",
			from, to, ch.Purse.Amount(from))),
	), nil
}

func (e *Engine) convertAmount(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	qty, err := parsePositive(text)
	if err != nil {
		return domainFail(StateCurrencyConvertAmount, err, menu.Prompt("How many coins?"))
	}

	from, to := t.Scratch.ConvertFrom, t.Scratch.ConvertTo
	if err := ch.Purse.Convert(from, to, qty); err != nil {
		return domainFail(StateCurrencyConvert, err, menu.Convert(ch, from, to))
	}

	t.Scratch.ConvertFrom = ""
	t.Scratch.ConvertTo = ""
	return show(StateCurrency,
		menu.Alert(fmt.Sprintf("Converted %d %s to %s.", qty, from, to)),
		menu.Currency(ch),
	).mutated(), nil
}
