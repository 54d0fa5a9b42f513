package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// character returns the active character for states that require one
func (e *Engine) character(t *Turn) (*entities.Character, error) {
	ch := t.Character()
	if ch == nil {
		return nil, errors.Internalf("state %q reached without an active character", t.State)
	}
	return ch, nil
}

func (e *Engine) toMain(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateMainMenu, menu.Main(ch)), nil
}

func (e *Engine) openCharacters(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateCharacterSelect, menu.CharacterSelect(t.Roster)), nil
}

func (e *Engine) rosterCreate(_ context.Context, t *Turn) (*Outcome, error) {
	t.Scratch.Draft = &CharacterDraft{}
	return show(StateCreateName, menu.Prompt("What is the character's name?")), nil
}

func (e *Engine) rosterSelect(_ context.Context, t *Turn, name string) (*Outcome, error) {
	ch, err := t.Roster.Select(name)
	if err != nil {
		return domainFail(StateCharacterSelect, err, menu.CharacterSelect(t.Roster))
	}
	return show(StateMainMenu, menu.Main(ch)).mutated(), nil
}

func (e *Engine) rosterDeleteAsk(_ context.Context, t *Turn, name string) (*Outcome, error) {
	if _, ok := t.Roster.Get(name); !ok {
		return show(StateCharacterSelect,
			menu.Alert(fmt.Sprintf("No character named %s.", name)),
			menu.CharacterSelect(t.Roster),
		), nil
	}
	t.Scratch.DeleteTarget = name
	return show(StateDeleteConfirm,
		menu.Confirm(fmt.Sprintf("Delete %s and everything they carry? This cannot be undone.", name)),
	), nil
}

func (e *Engine) rosterDeleteYes(_ context.Context, t *Turn) (*Outcome, error) {
	name := t.Scratch.DeleteTarget
	t.Scratch.DeleteTarget = ""
	if err := t.Roster.Remove(name); err != nil {
		return domainFail(StateCharacterSelect, err, menu.CharacterSelect(t.Roster))
	}
	return show(StateCharacterSelect,
		menu.Alert(fmt.Sprintf("%s is gone.", name)),
		menu.CharacterSelect(t.Roster),
	).mutated(), nil
}

func (e *Engine) rosterDeleteNo(_ context.Context, t *Turn) (*Outcome, error) {
	t.Scratch.DeleteTarget = ""
	return show(StateCharacterSelect, menu.CharacterSelect(t.Roster)), nil
}

// Creation flow. Each answer lands in the draft; the character is built
// only after the last one.

func (e *Engine) createName(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateCreateName, menu.Prompt("A name cannot be empty. What is the character's name?")), nil
	}
	if _, ok := t.Roster.Get(text); ok {
		return show(StateCreateName,
			menu.Alert(fmt.Sprintf("You already have a character named %s.", text)),
			menu.Prompt("What is the character's name?"),
		), nil
	}
	t.Scratch.Draft.Name = text
	return show(StateCreateRace, menu.Prompt(fmt.Sprintf("What race is %s?", text))), nil
}

func (e *Engine) createRace(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateCreateRace, menu.Prompt("What race is the character?")), nil
	}
	t.Scratch.Draft.Race = text
	return show(StateCreateGender, menu.Prompt("What is their gender?")), nil
}

func (e *Engine) createGender(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateCreateGender, menu.Prompt("What is their gender?")), nil
	}
	t.Scratch.Draft.Gender = text
	return show(StateCreateClass, menu.Prompt("What class do they start in?")), nil
}

func (e *Engine) createClass(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateCreateClass, menu.Prompt("What class do they start in?")), nil
	}
	t.Scratch.Draft.Class = text
	return show(StateCreateHitPoints, menu.Prompt("What is their maximum hit point total?")), nil
}

func (e *Engine) createHitPoints(_ context.Context, t *Turn, text string) (*Outcome, error) {
	hp, err := parsePositive(text)
	if err != nil {
		return domainFail(StateCreateHitPoints, err, menu.Prompt("What is their maximum hit point total?"))
	}

	draft := t.Scratch.Draft
	ch, err := entities.NewCharacter(draft.Name, draft.Race, draft.Gender, draft.Class, hp)
	if err != nil {
		return nil, err
	}
	if err := t.Roster.Add(ch); err != nil {
		return domainFail(StateCharacterSelect, err, menu.CharacterSelect(t.Roster))
	}
	t.Scratch.Draft = nil

	return show(StateMainMenu,
		menu.Alert(fmt.Sprintf("%s joins the party.", ch.Name)),
		menu.Main(ch),
	).mutated(), nil
}
