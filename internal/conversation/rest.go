package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openRest(_ context.Context, t *Turn) (*Outcome, error) {
	if _, err := e.character(t); err != nil {
		return nil, err
	}
	return show(StateRest, menu.Rest()), nil
}

func (e *Engine) restShort(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	ch.ShortRest()
	return show(StateMainMenu,
		menu.Alert("Short rest taken. Short-rest abilities are refilled."),
		menu.Main(ch),
	).mutated(), nil
}

func (e *Engine) restLong(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	ch.LongRest()
	return show(StateMainMenu,
		menu.Alert("Long rest taken. Hit points, spell slots and long-rest abilities are restored."),
		menu.Main(ch),
	).mutated(), nil
}

func (e *Engine) openHitPoints(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateHitPoints, menu.HitPoints(ch)), nil
}

func (e *Engine) hpDamagePrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateDamage, menu.Prompt("How much damage?")), nil
}

func (e *Engine) hpDamageText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	amount, err := parsePositive(text)
	if err != nil {
		return domainFail(StateDamage, err, menu.Prompt("How much damage?"))
	}
	if err := ch.ApplyDamage(amount); err != nil {
		return domainFail(StateDamage, err, menu.Prompt("How much damage?"))
	}

	out := show(StateHitPoints, menu.HitPoints(ch)).mutated()
	if ch.IsDown() {
		out.Screens = append([]menu.Screen{menu.Alert(fmt.Sprintf("%s is down.", ch.Name))}, out.Screens...)
	}
	return out, nil
}

func (e *Engine) hpHealPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateHeal, menu.Prompt("How much healing?")), nil
}

// hpHealText heals immediately when the result stays at or under max, and
// asks about temporary hit points when it would overflow.
func (e *Engine) hpHealText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	amount, err := parsePositive(text)
	if err != nil {
		return domainFail(StateHeal, err, menu.Prompt("How much healing?"))
	}

	if excess := ch.HealOverflow(amount); excess > 0 {
		t.Scratch.HealAmount = amount
		t.Scratch.HealExcess = excess
		return show(StateHealConfirm, menu.HealConfirm(excess)), nil
	}

	if err := ch.Heal(amount, false); err != nil {
		return domainFail(StateHeal, err, menu.Prompt("How much healing?"))
	}
	return show(StateHitPoints, menu.HitPoints(ch)).mutated(), nil
}

func (e *Engine) healResolve(t *Turn, keepExcess bool) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	amount := t.Scratch.HealAmount
	t.Scratch.HealAmount = 0
	t.Scratch.HealExcess = 0

	if err := ch.Heal(amount, keepExcess); err != nil {
		return domainFail(StateHitPoints, err, menu.HitPoints(ch))
	}
	return show(StateHitPoints, menu.HitPoints(ch)).mutated(), nil
}

func (e *Engine) healKeep(_ context.Context, t *Turn) (*Outcome, error) {
	return e.healResolve(t, true)
}

func (e *Engine) healCap(_ context.Context, t *Turn) (*Outcome, error) {
	return e.healResolve(t, false)
}
