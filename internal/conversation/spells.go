package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

const learnSpellPrompt = "Which spell? Send a name to look it up, or 'name; level' to enter it yourself."

func (e *Engine) openSpells(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	t.Scratch.SpellPage = 0
	return show(StateSpells, menu.Spells(ch, 0)), nil
}

func (e *Engine) spellNextPage(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if (t.Scratch.SpellPage+1)*menu.PageSize < len(ch.Spells) {
		t.Scratch.SpellPage++
	}
	return show(StateSpells, menu.Spells(ch, t.Scratch.SpellPage)), nil
}

func (e *Engine) spellPrevPage(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if t.Scratch.SpellPage > 0 {
		t.Scratch.SpellPage--
	}
	return show(StateSpells, menu.Spells(ch, t.Scratch.SpellPage)), nil
}

func (e *Engine) spellLearnPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateSpellLearn, menu.Prompt(learnSpellPrompt)), nil
}

func (e *Engine) spellLearnText(ctx context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	fields := splitFields(text)
	var spell *entities.Spell
	switch len(fields) {
	case 1:
		spell, err = e.lookupSpell(ctx, t, fields[0])
		if err != nil {
			return nil, err
		}
		if spell == nil {
			return show(StateSpellLearn,
				menu.Alert("I could not look that up right now. Send 'name; level' instead."),
				menu.Prompt(learnSpellPrompt),
			), nil
		}
	case 2:
		level, err := parseInt(fields[1])
		if err != nil {
			return domainFail(StateSpellLearn, err, menu.Prompt(learnSpellPrompt))
		}
		spell = &entities.Spell{Name: fields[0], Level: level}
	default:
		return show(StateSpellLearn,
			menu.Alert("Send a spell name, or 'name; level'."),
			menu.Prompt(learnSpellPrompt),
		), nil
	}

	if err := ch.LearnSpell(spell); err != nil {
		return domainFail(StateSpellLearn, err, menu.Prompt(learnSpellPrompt))
	}
	return show(StateSpells,
		menu.Alert(fmt.Sprintf("%s learned.", spell.Name)),
		menu.Spells(ch, t.Scratch.SpellPage),
	).mutated(), nil
}

// lookupSpell asks the rules service for the spell. Lookups are best
// effort: a nil spell with nil error means the caller should fall back to
// manual entry.
func (e *Engine) lookupSpell(ctx context.Context, t *Turn, name string) (*entities.Spell, error) {
	if e.rules == nil {
		return nil, nil
	}
	data, err := e.rules.GetSpell(ctx, name)
	if err != nil {
		if errors.IsUnavailable(err) || errors.IsDomainRejection(err) {
			slog.WarnContext(ctx, "spell lookup failed",
				"user_id", t.UserID,
				"spell", name,
				"error", err,
			)
			return nil, nil
		}
		return nil, err
	}
	return &entities.Spell{
		Name:        data.Name,
		Description: data.Description,
		Level:       data.Level,
	}, nil
}

func (e *Engine) spellOpen(_ context.Context, t *Turn, name string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	sp, ok := ch.Spell(name)
	if !ok {
		return domainFail(StateSpells, errors.NotFoundf("%s is not known", name), menu.Spells(ch, t.Scratch.SpellPage))
	}
	t.Scratch.ViewedSpell = name
	return show(StateSpell, menu.SpellView(sp)), nil
}

func (e *Engine) spellBack(ctx context.Context, t *Turn) (*Outcome, error) {
	return e.spellOpen(ctx, t, t.Scratch.ViewedSpell)
}

func (e *Engine) spellCastPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	sp, ok := ch.Spell(t.Scratch.ViewedSpell)
	if !ok {
		return domainFail(StateSpells,
			errors.NotFoundf("%s is not known", t.Scratch.ViewedSpell),
			menu.Spells(ch, t.Scratch.SpellPage))
	}

	eligible := ch.Slots.AtOrAbove(sp.Level)
	if len(eligible) == 0 {
		return domainFail(StateSpell,
			errors.FailedPreconditionf("no level %d or higher slots configured", sp.Level),
			menu.SpellView(sp))
	}
	t.Scratch.CastingSpell = sp.Name
	return show(StateSpellCast, menu.CastPicker(sp, eligible)), nil
}

func (e *Engine) spellCastSlot(_ context.Context, t *Turn, arg string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	sp, ok := ch.Spell(t.Scratch.CastingSpell)
	if !ok {
		return domainFail(StateSpells,
			errors.NotFoundf("%s is not known", t.Scratch.CastingSpell),
			menu.Spells(ch, t.Scratch.SpellPage))
	}

	level, err := parseInt(arg)
	if err != nil {
		return domainFail(StateSpellCast, err, menu.CastPicker(sp, ch.Slots.AtOrAbove(sp.Level)))
	}
	if err := ch.CastSpell(sp.Name, level); err != nil {
		return domainFail(StateSpellCast, err, menu.CastPicker(sp, ch.Slots.AtOrAbove(sp.Level)))
	}

	t.Scratch.CastingSpell = ""
	return show(StateSpell,
		menu.Alert(fmt.Sprintf("%s cast with a level %d slot.", sp.Name, level)),
		menu.SpellView(sp),
	).mutated(), nil
}

func (e *Engine) spellForget(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	name := t.Scratch.ViewedSpell
	t.Scratch.ViewedSpell = ""
	if err := ch.ForgetSpell(name); err != nil {
		return domainFail(StateSpells, err, menu.Spells(ch, t.Scratch.SpellPage))
	}
	t.Scratch.SpellPage = 0
	return show(StateSpells,
		menu.Alert(fmt.Sprintf("Forgot %s.", name)),
		menu.Spells(ch, 0),
	).mutated(), nil
}

// Slots

func (e *Engine) openSlots(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateSpellSlots, menu.SpellSlotsMenu(ch)), nil
}

func (e *Engine) slotAct(t *Turn, arg string, act func(entities.SpellSlots, int) error) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	level, err := parseInt(arg)
	if err != nil {
		return domainFail(StateSpellSlots, err, menu.SpellSlotsMenu(ch))
	}
	if err := act(ch.Slots, level); err != nil {
		return domainFail(StateSpellSlots, err, menu.SpellSlotsMenu(ch))
	}
	return show(StateSpellSlots, menu.SpellSlotsMenu(ch)).mutated(), nil
}

func (e *Engine) slotUse(_ context.Context, t *Turn, arg string) (*Outcome, error) {
	return e.slotAct(t, arg, entities.SpellSlots.Use)
}

func (e *Engine) slotFree(_ context.Context, t *Turn, arg string) (*Outcome, error) {
	return e.slotAct(t, arg, entities.SpellSlots.Restore)
}

func (e *Engine) slotsEditPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateSpellSlotEdit,
		menu.Prompt("Send 'level; count' to set a slot level, or 'level; remove' to drop it."),
	), nil
}

func (e *Engine) slotsEditText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	fields := splitFields(text)
	if len(fields) != 2 {
		return show(StateSpellSlotEdit,
			menu.Alert("I need two parts: level; count"),
			menu.Prompt("Send 'level; count' to set a slot level, or 'level; remove' to drop it."),
		), nil
	}
	level, err := parseInt(fields[0])
	if err != nil {
		return domainFail(StateSpellSlotEdit, err, menu.Prompt("Send 'level; count' to set a slot level."))
	}

	if fields[1] == "remove" {
		if err := ch.Slots.Remove(level); err != nil {
			return domainFail(StateSpellSlotEdit, err, menu.Prompt("Send 'level; count' to set a slot level."))
		}
	} else {
		count, err := parseInt(fields[1])
		if err != nil {
			return domainFail(StateSpellSlotEdit, err, menu.Prompt("Send 'level; count' to set a slot level."))
		}
		if err := ch.Slots.Set(level, count); err != nil {
			return domainFail(StateSpellSlotEdit, err, menu.Prompt("Send 'level; count' to set a slot level."))
		}
	}
	return show(StateSpellSlots, menu.SpellSlotsMenu(ch)).mutated(), nil
}

func (e *Engine) slotsModePrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateSpellSlotsMode, menu.SlotsModePicker()), nil
}

func (e *Engine) slotsMode(t *Turn, mode entities.SlotsMode) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if err := ch.SetSlotsMode(mode); err != nil {
		return domainFail(StateSpellSlotsMode, err, menu.SlotsModePicker())
	}
	return show(StateSpellSlots, menu.SpellSlotsMenu(ch)).mutated(), nil
}

func (e *Engine) slotsModeManual(_ context.Context, t *Turn) (*Outcome, error) {
	return e.slotsMode(t, entities.SlotsModeManual)
}

func (e *Engine) slotsModeAutomatic(_ context.Context, t *Turn) (*Outcome, error) {
	return e.slotsMode(t, entities.SlotsModeAutomatic)
}
