// Package conversation is the state machine driving the chat. Each state
// owns a dispatch table of the events it understands; everything else goes
// through the global handler, so a user can always tap a main-menu button
// or stop, whatever screen they are on.
package conversation

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/clients/rules"
	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
	"github.com/tavernkeep/tavernkeep/internal/pkg/clock"
)

// Turn is one session's mutable context for a single event
type Turn struct {
	UserID  string
	State   State
	Roster  *entities.Roster
	Scratch *Scratch
}

// Character returns the active character, nil when none is selected
func (t *Turn) Character() *entities.Character {
	return t.Roster.ActiveCharacter()
}

// Outcome is what one event produced: the next state, the screens to show,
// and whether the roster changed and must be persisted.
type Outcome struct {
	Next       State
	Screens    []menu.Screen
	Dirty      bool
	EndSession bool
}

func show(next State, screens ...menu.Screen) *Outcome {
	return &Outcome{Next: next, Screens: screens}
}

func (o *Outcome) mutated() *Outcome {
	o.Dirty = true
	return o
}

// Handler function shapes. Prefix handlers receive the ID with the prefix
// stripped.
type (
	buttonFn func(ctx context.Context, t *Turn) (*Outcome, error)
	argFn    func(ctx context.Context, t *Turn, arg string) (*Outcome, error)
	textFn   func(ctx context.Context, t *Turn, text string) (*Outcome, error)
	attachFn func(ctx context.Context, t *Turn, path string, kind files.Kind) (*Outcome, error)
)

type prefixEntry struct {
	prefix string
	fn     argFn
}

type handlerSet struct {
	buttons  map[string]buttonFn
	prefixes []prefixEntry
	text     textFn
	attach   attachFn
}

// Engine dispatches events against per-state handler tables
type Engine struct {
	dice   dice.Roller
	rules  rules.Client
	clock  clock.Clock
	states map[State]*handlerSet
}

// Config contains configuration for the conversation engine.
type Config struct {
	// DiceRoller produces the random results for the dice screens
	DiceRoller dice.Roller

	// Rules provides best-effort SRD lookups. Optional; without it spell
	// lookup and class suggestions fall back to manual entry.
	Rules rules.Client

	// Clock stamps roll records. Optional, defaults to the real clock.
	Clock clock.Clock
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DiceRoller == nil {
		return errors.InvalidArgument("dice roller cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// New creates a conversation engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		dice:  cfg.DiceRoller,
		rules: cfg.Rules,
		clock: cfg.Clock,
	}
	e.states = e.buildDispatch()
	return e, nil
}

// Start opens a session: the main menu when a character is active, the
// roster otherwise.
func (e *Engine) Start(_ context.Context, t *Turn) (*Outcome, error) {
	if ch := t.Character(); ch != nil {
		return show(StateMainMenu, menu.Main(ch)), nil
	}
	return show(StateCharacterSelect, menu.CharacterSelect(t.Roster)), nil
}

// HandleEvent runs one event through the current state's dispatch table,
// falling back to the global handler for anything the state does not
// understand.
func (e *Engine) HandleEvent(ctx context.Context, t *Turn, ev Event) (*Outcome, error) {
	if t == nil || t.Roster == nil || t.Scratch == nil {
		return nil, errors.InvalidArgument("turn is not initialized")
	}

	if t.State == StateNone {
		out, err := e.Start(ctx, t)
		if err != nil {
			return nil, err
		}
		// The opening event is consumed by rendering the entry screen,
		// unless it is a button that the entry state understands.
		if btn, ok := ev.(ButtonPress); ok {
			t.State = out.Next
			if redo, err := e.dispatch(ctx, t, btn); err != nil {
				return nil, err
			} else if redo != nil {
				return redo, nil
			}
		}
		return out, nil
	}

	if btn, ok := ev.(ButtonPress); ok && btn.ID == menu.BtnStop {
		return e.handleStop(ctx, t)
	}

	out, err := e.dispatch(ctx, t, ev)
	if err != nil {
		return nil, err
	}
	if out != nil {
		return out, nil
	}
	return e.fallback(ctx, t, ev)
}

// dispatch matches the event against the current state's table. A nil
// outcome with nil error means no handler matched.
func (e *Engine) dispatch(ctx context.Context, t *Turn, ev Event) (*Outcome, error) {
	set, ok := e.states[t.State]
	if !ok {
		return nil, errors.Internalf("no dispatch table for state %q", t.State)
	}

	switch ev := ev.(type) {
	case ButtonPress:
		if fn, ok := set.buttons[ev.ID]; ok {
			return fn(ctx, t)
		}
		for _, entry := range set.prefixes {
			if len(ev.ID) > len(entry.prefix) && ev.ID[:len(entry.prefix)] == entry.prefix {
				return entry.fn(ctx, t, ev.ID[len(entry.prefix):])
			}
		}
	case TextInput:
		if set.text != nil {
			return set.text(ctx, t, ev.Value)
		}
	case Attachment:
		if set.attach != nil {
			return set.attach(ctx, t, ev.Path, ev.Kind)
		}
	}
	return nil, nil
}

// fallback is the global handler: a pending reassignment pins the session,
// otherwise volatile scratch is dropped and the event gets one more try
// against the main menu.
func (e *Engine) fallback(ctx context.Context, t *Turn, ev Event) (*Outcome, error) {
	if t.Scratch.PendingReassignment != nil {
		pending := t.Scratch.PendingReassignment
		return show(StateMulticlassReassign,
			menu.Alert("Finish reassigning the freed levels first."),
			menu.ReassignPicker(pending.Levels, pending.Candidates),
		), nil
	}

	slog.DebugContext(ctx, "event fell through to global handler",
		"user_id", t.UserID,
		"state", string(t.State),
	)
	t.Scratch.ClearVolatile()

	ch := t.Character()
	if ch == nil {
		return show(StateCharacterSelect, menu.CharacterSelect(t.Roster)), nil
	}

	if _, ok := ev.(ButtonPress); ok {
		t.State = StateMainMenu
		if out, err := e.dispatch(ctx, t, ev); err != nil {
			return nil, err
		} else if out != nil {
			return out, nil
		}
	}
	return show(StateMainMenu, menu.Main(ch)), nil
}

// handleStop abandons the current flow. A pending reassignment with a
// single candidate resolves itself; with several it keeps the session
// pinned. With an active character stop lands back on the main menu,
// without one the session ends.
func (e *Engine) handleStop(_ context.Context, t *Turn) (*Outcome, error) {
	dirty := false
	if pending := t.Scratch.PendingReassignment; pending != nil {
		if len(pending.Candidates) != 1 {
			return show(StateMulticlassReassign,
				menu.Alert("Finish reassigning the freed levels first."),
				menu.ReassignPicker(pending.Levels, pending.Candidates),
			), nil
		}
		ch := t.Character()
		if ch == nil {
			return nil, errors.Internal("pending reassignment without an active character")
		}
		if err := ch.Classes.AssignLevels(pending.Candidates[0], pending.Levels); err != nil {
			return nil, err
		}
		t.Scratch.PendingReassignment = nil
		dirty = true
	}

	t.Scratch.ClearVolatile()
	if ch := t.Character(); ch != nil {
		out := show(StateMainMenu, menu.Main(ch))
		out.Dirty = dirty
		return out, nil
	}
	out := show(StateNone, menu.Alert("See you at the table."))
	out.EndSession = true
	out.Dirty = dirty
	return out, nil
}

// domainFail renders a rejected operation as an alert and re-shows the
// given screen; unexpected errors propagate.
func domainFail(state State, err error, screens ...menu.Screen) (*Outcome, error) {
	if !errors.IsDomainRejection(err) {
		return nil, err
	}
	all := append([]menu.Screen{menu.Alert(errors.GetMessage(err))}, screens...)
	return show(state, all...), nil
}
