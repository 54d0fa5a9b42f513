package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/menu"
)

func (e *Engine) openFeatures(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateFeatures, menu.Features(ch)), nil
}

func (e *Engine) featureEditPick(_ context.Context, t *Turn, name string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	current, err := ch.Features.Score(name)
	if err != nil {
		return domainFail(StateFeatures, err, menu.Features(ch))
	}
	t.Scratch.EditingFeature = name
	return show(StateFeatureEdit,
		menu.Prompt(fmt.Sprintf("%s is %d. What should it be?", name, current)),
	), nil
}

func (e *Engine) featureEditText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	value, err := parseInt(text)
	if err != nil {
		return domainFail(StateFeatureEdit, err, menu.Prompt("Send the score as a number."))
	}
	if err := ch.Features.SetScore(t.Scratch.EditingFeature, value); err != nil {
		return domainFail(StateFeatureEdit, err, menu.Prompt("Send the score as a number."))
	}
	t.Scratch.EditingFeature = ""
	return show(StateFeatures, menu.Features(ch)).mutated(), nil
}
