package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openAbilities(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateAbilities, menu.Abilities(ch)), nil
}

func (e *Engine) abilityAddPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	t.Scratch.AbilityDraft = nil
	return show(StateAbilityAdd,
		menu.Prompt("Describe the ability as: name; description; max uses"),
	), nil
}

func (e *Engine) abilityAddText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	fields := splitFields(text)
	if len(fields) != 3 {
		return show(StateAbilityAdd,
			menu.Alert("I need three parts: name; description; max uses"),
			menu.Prompt("Describe the ability as: name; description; max uses"),
		), nil
	}
	maxUses, err := parseInt(fields[2])
	if err != nil {
		return domainFail(StateAbilityAdd, err, menu.Prompt("Describe the ability as: name; description; max uses"))
	}
	if maxUses < 0 {
		return domainFail(StateAbilityAdd,
			errors.InvalidArgument("max uses cannot be negative"),
			menu.Prompt("Describe the ability as: name; description; max uses"))
	}

	t.Scratch.AbilityDraft = &AbilityDraft{
		Name:        fields[0],
		Description: fields[1],
		MaxUses:     maxUses,
	}
	return show(StateAbilityAddKind, menu.AbilityKind()), nil
}

func (e *Engine) abilityKind(t *Turn, passive bool) (*Outcome, error) {
	if t.Scratch.AbilityDraft == nil {
		return nil, errors.Internal("ability kind chosen without a draft")
	}
	t.Scratch.AbilityDraft.Passive = passive
	return show(StateAbilityAddRestoration, menu.AbilityRestoration()), nil
}

func (e *Engine) abilityKindActive(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityKind(t, false)
}

func (e *Engine) abilityKindPassive(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityKind(t, true)
}

func (e *Engine) abilityFinish(t *Turn, restoration entities.RestorationType) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	draft := t.Scratch.AbilityDraft
	if draft == nil {
		return nil, errors.Internal("ability restoration chosen without a draft")
	}

	ability := &entities.Ability{
		Name:        draft.Name,
		Description: draft.Description,
		Passive:     draft.Passive,
		Restoration: restoration,
		MaxUses:     draft.MaxUses,
		Uses:        draft.MaxUses,
	}
	if err := ch.AddAbility(ability); err != nil {
		return domainFail(StateAbilities, err, menu.Abilities(ch))
	}
	t.Scratch.AbilityDraft = nil
	return show(StateAbilities, menu.Abilities(ch)).mutated(), nil
}

func (e *Engine) abilityRestShort(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityFinish(t, entities.RestoreShortRest)
}

func (e *Engine) abilityRestLong(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityFinish(t, entities.RestoreLongRest)
}

func (e *Engine) abilityOpen(_ context.Context, t *Turn, name string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	a, ok := ch.Ability(name)
	if !ok {
		return domainFail(StateAbilities, errors.NotFoundf("%s is not known", name), menu.Abilities(ch))
	}
	t.Scratch.ViewedAbility = name
	return show(StateAbility, menu.AbilityView(a)), nil
}

// abilityAct runs one action against the viewed ability and re-renders it
func (e *Engine) abilityAct(t *Turn, act func(*entities.Ability) error) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	a, ok := ch.Ability(t.Scratch.ViewedAbility)
	if !ok {
		return domainFail(StateAbilities,
			errors.NotFoundf("%s is not known", t.Scratch.ViewedAbility),
			menu.Abilities(ch))
	}
	if err := act(a); err != nil {
		return domainFail(StateAbility, err, menu.AbilityView(a))
	}
	return show(StateAbility, menu.AbilityView(a)).mutated(), nil
}

func (e *Engine) abilityUse(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityAct(t, (*entities.Ability).Use)
}

func (e *Engine) abilityRestore(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityAct(t, (*entities.Ability).RestoreUse)
}

func (e *Engine) abilityToggle(_ context.Context, t *Turn) (*Outcome, error) {
	return e.abilityAct(t, (*entities.Ability).ToggleActivated)
}

func (e *Engine) abilityForget(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	name := t.Scratch.ViewedAbility
	t.Scratch.ViewedAbility = ""
	if err := ch.RemoveAbility(name); err != nil {
		return domainFail(StateAbilities, err, menu.Abilities(ch))
	}
	return show(StateAbilities,
		menu.Alert(fmt.Sprintf("Forgot %s.", name)),
		menu.Abilities(ch),
	).mutated(), nil
}
