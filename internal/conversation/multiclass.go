package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openMulticlass(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateMulticlass, menu.Multiclass(ch)), nil
}

// mcAddPrompt offers the SRD class list when the rules service answers,
// and falls back to free text when it does not.
func (e *Engine) mcAddPrompt(ctx context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	prompt := menu.Prompt("Which class do you want to add? Send its name.")
	if e.rules != nil {
		refs, err := e.rules.ListClasses(ctx)
		if err != nil {
			slog.WarnContext(ctx, "class list lookup failed",
				"user_id", t.UserID,
				"error", err,
			)
		} else {
			opts := make([]menu.Option, 0, len(refs)+2)
			for _, ref := range refs {
				if ch.Classes.Has(ref.Name) {
					continue
				}
				opts = append(opts, menu.Option{ID: menu.BtnMcPickPrefix + ref.Name, Label: ref.Name})
			}
			opts = append(opts,
				menu.Option{ID: menu.BtnBack, Label: "Back"},
				menu.Option{ID: menu.BtnStop, Label: "Stop"},
			)
			prompt = menu.Screen{Text: "Which class do you want to add? Pick one or send a name.", Options: opts}
		}
	}
	return show(StateMulticlassAdd, prompt), nil
}

func (e *Engine) mcAdd(t *Turn, class string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if err := ch.Classes.AddClass(class); err != nil {
		return domainFail(StateMulticlass, err, menu.Multiclass(ch))
	}
	return show(StateMulticlass,
		menu.Alert(fmt.Sprintf("Now a level 1 %s.", class)),
		menu.Multiclass(ch),
	).mutated(), nil
}

func (e *Engine) mcAddPick(_ context.Context, t *Turn, class string) (*Outcome, error) {
	return e.mcAdd(t, class)
}

func (e *Engine) mcAddText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateMulticlassAdd, menu.Prompt("Which class do you want to add? Send its name.")), nil
	}
	return e.mcAdd(t, text)
}

// A single class levels directly; the picker is only for characters with
// more than one.
func (e *Engine) mcLevelUpPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if names := ch.Classes.ClassNames(); len(names) == 1 {
		if err := ch.Classes.LevelUp(names[0]); err != nil {
			return domainFail(StateMulticlass, err, menu.Multiclass(ch))
		}
		return show(StateMulticlass, menu.Multiclass(ch)).mutated(), nil
	}
	return show(StateMulticlassLevelUp, menu.ClassPicker(ch, "level up")), nil
}

func (e *Engine) mcLevelDownPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if names := ch.Classes.ClassNames(); len(names) == 1 {
		if err := ch.Classes.LevelDown(names[0]); err != nil {
			return domainFail(StateMulticlass, err, menu.Multiclass(ch))
		}
		return show(StateMulticlass, menu.Multiclass(ch)).mutated(), nil
	}
	return show(StateMulticlassLevelDown, menu.ClassPicker(ch, "level down")), nil
}

func (e *Engine) mcRemovePrompt(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateMulticlassRemove, menu.ClassPicker(ch, "remove")), nil
}

func (e *Engine) mcLevelUpPick(_ context.Context, t *Turn, class string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if err := ch.Classes.LevelUp(class); err != nil {
		return domainFail(StateMulticlass, err, menu.Multiclass(ch))
	}
	return show(StateMulticlass, menu.Multiclass(ch)).mutated(), nil
}

func (e *Engine) mcLevelDownPick(_ context.Context, t *Turn, class string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if err := ch.Classes.LevelDown(class); err != nil {
		return domainFail(StateMulticlass, err, menu.Multiclass(ch))
	}
	return show(StateMulticlass, menu.Multiclass(ch)).mutated(), nil
}

// mcRemovePick removes a class. Freed levels either transfer to a sole
// surviving class or become a pending reassignment the user must resolve.
func (e *Engine) mcRemovePick(_ context.Context, t *Turn, class string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}

	freed, candidates, err := ch.RemoveClass(class)
	if err != nil {
		return domainFail(StateMulticlass, err, menu.Multiclass(ch))
	}
	if len(candidates) == 0 {
		return show(StateMulticlass,
			menu.Alert(fmt.Sprintf("Removed %s; its %d levels moved to %s.", class, freed, ch.Classes.ClassNames()[0])),
			menu.Multiclass(ch),
		).mutated(), nil
	}

	t.Scratch.PendingReassignment = &Reassignment{Levels: freed, Candidates: candidates}
	return show(StateMulticlassReassign, menu.ReassignPicker(freed, candidates)).mutated(), nil
}

func (e *Engine) mcReassign(_ context.Context, t *Turn, class string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	pending := t.Scratch.PendingReassignment
	if pending == nil {
		return nil, errors.Internal("reassignment chosen without pending levels")
	}

	if err := ch.Classes.AssignLevels(class, pending.Levels); err != nil {
		return domainFail(StateMulticlassReassign, err, menu.ReassignPicker(pending.Levels, pending.Candidates))
	}
	t.Scratch.PendingReassignment = nil
	return show(StateMulticlass,
		menu.Alert(fmt.Sprintf("%d levels moved to %s.", pending.Levels, class)),
		menu.Multiclass(ch),
	).mutated(), nil
}
