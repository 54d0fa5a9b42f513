package conversation

import (
	"context"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// historyLimit caps how many past rolls the history screen shows
const historyLimit = 20

func (e *Engine) openDice(_ context.Context, t *Turn) (*Outcome, error) {
	if _, err := e.character(t); err != nil {
		return nil, err
	}
	if t.Scratch.DicePool == nil {
		t.Scratch.DicePool = make(entities.DicePool)
	}
	return show(StateDice, menu.Dice(t.Scratch.DicePool)), nil
}

func (e *Engine) diceInc(_ context.Context, t *Turn, die string) (*Outcome, error) {
	if err := t.Scratch.DicePool.Increment(entities.DieType(die)); err != nil {
		return domainFail(StateDice, err, menu.Dice(t.Scratch.DicePool))
	}
	return show(StateDice, menu.Dice(t.Scratch.DicePool)), nil
}

func (e *Engine) diceDec(_ context.Context, t *Turn, die string) (*Outcome, error) {
	if err := t.Scratch.DicePool.Decrement(entities.DieType(die)); err != nil {
		return domainFail(StateDice, err, menu.Dice(t.Scratch.DicePool))
	}
	return show(StateDice, menu.Dice(t.Scratch.DicePool)), nil
}

// diceRoll throws the pending pool, records every result on the character,
// and clears the pool.
func (e *Engine) diceRoll(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	pool := t.Scratch.DicePool
	if pool.IsEmpty() {
		return domainFail(StateDice,
			errors.FailedPrecondition("add some dice to the pool first"),
			menu.Dice(pool))
	}

	now := e.clock.Now().Unix()
	records := make([]entities.RollRecord, 0, len(pool))
	for _, die := range entities.DieTypes {
		count := pool[die]
		if count == 0 {
			continue
		}
		results, err := e.dice.RollN(count, die.Faces())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %dx%s", count, die)
		}
		records = append(records, entities.RollRecord{Die: die, Results: results, RolledAt: now})
	}

	ch.RecordRolls(records)
	t.Scratch.DicePool = make(entities.DicePool)
	return show(StateDice,
		menu.RollResults(records),
		menu.Dice(t.Scratch.DicePool),
	).mutated(), nil
}

func (e *Engine) diceHistoryOpen(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateDiceHistory, menu.RollHistory(ch.RollsHistory, historyLimit)), nil
}
