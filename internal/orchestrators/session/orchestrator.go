package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/conversation"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
	"github.com/tavernkeep/tavernkeep/internal/repositories/roster"
	"github.com/tavernkeep/tavernkeep/internal/transport"
)

// userSession is one user's conversation position. The mutex serializes
// that user's events; the map lock is never held across a turn.
type userSession struct {
	mu      sync.Mutex
	state   conversation.State
	scratch *conversation.Scratch
}

type orchestrator struct {
	repo      roster.Repository
	engine    *conversation.Engine
	transport transport.Transport
	files     files.Store

	mu       sync.Mutex
	sessions map[string]*userSession
}

// Config contains configuration for the session orchestrator.
type Config struct {
	Repository roster.Repository
	Engine     *conversation.Engine
	Transport  transport.Transport

	// Files stores inbound attachments. Optional; without it attachments
	// are rejected.
	Files files.Store
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	if cfg.Engine == nil {
		return errors.InvalidArgument("engine cannot be nil")
	}
	if cfg.Transport == nil {
		return errors.InvalidArgument("transport cannot be nil")
	}
	return nil
}

// New creates a session orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &orchestrator{
		repo:      cfg.Repository,
		engine:    cfg.Engine,
		transport: cfg.Transport,
		files:     cfg.Files,
		sessions:  make(map[string]*userSession),
	}, nil
}

// Run consumes the event stream. Each event runs in its own goroutine; the
// per-user lock keeps one user's turns in order.
func (o *orchestrator) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-o.transport.Events():
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := o.HandleEvent(ctx, &HandleEventInput{Event: ev}); err != nil {
					slog.ErrorContext(ctx, "turn failed",
						"user_id", ev.UserID,
						"error", err,
					)
				}
			}()
		}
	}
}

func (o *orchestrator) HandleEvent(ctx context.Context, input *HandleEventInput) (*HandleEventOutput, error) {
	if input == nil || input.Event.UserID == "" {
		return nil, errors.InvalidArgument("event must carry a user ID")
	}
	ev := input.Event

	sess := o.session(ev.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	engineEvent, err := o.convertEvent(ctx, ev)
	if err != nil {
		if alertErr := o.alert(ctx, ev.UserID, errors.GetMessage(err)); alertErr != nil {
			return nil, alertErr
		}
		return &HandleEventOutput{}, nil
	}

	getOut, err := o.repo.Get(ctx, roster.GetInput{UserID: ev.UserID})
	if err != nil {
		return o.systemFailure(ctx, ev.UserID, err)
	}

	turn := &conversation.Turn{
		UserID:  ev.UserID,
		State:   sess.state,
		Roster:  getOut.Roster,
		Scratch: sess.scratch,
	}
	outcome, err := o.engine.HandleEvent(ctx, turn, engineEvent)
	if err != nil {
		return o.systemFailure(ctx, ev.UserID, err)
	}

	persisted := false
	if outcome.Dirty {
		if _, err := o.repo.Save(ctx, roster.SaveInput{Roster: getOut.Roster}); err != nil {
			// The state does not advance past a failed save; the user can
			// retry the same action.
			return o.systemFailure(ctx, ev.UserID, err)
		}
		persisted = true
	}

	if outcome.EndSession {
		o.forget(ev.UserID)
	} else {
		sess.state = outcome.Next
	}

	for _, screen := range outcome.Screens {
		if _, err := o.transport.Send(ctx, ev.UserID, screen); err != nil {
			return nil, errors.Wrapf(err, "failed to render screen")
		}
	}

	return &HandleEventOutput{Persisted: persisted, Ended: outcome.EndSession}, nil
}

// convertEvent turns a transport event into an engine event, storing
// attachment bytes first so the engine only sees opaque paths.
func (o *orchestrator) convertEvent(ctx context.Context, ev transport.Event) (conversation.Event, error) {
	switch ev.Kind {
	case transport.EventButton:
		return conversation.ButtonPress{ID: ev.Payload}, nil
	case transport.EventText:
		return conversation.TextInput{Value: ev.Payload}, nil
	case transport.EventAttachment:
		if o.files == nil {
			return nil, errors.Unimplemented("attachments are not supported here")
		}
		out, err := o.files.Put(ctx, files.PutInput{Data: ev.Data, Kind: ev.AttachmentKind})
		if err != nil {
			return nil, err
		}
		return conversation.Attachment{Path: out.Path, Kind: ev.AttachmentKind}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown event kind %q", ev.Kind)
	}
}

// systemFailure reports a failed turn to the user without advancing state.
// Transient backend trouble gets a retry hint, everything else a generic
// apology, and the underlying error always goes to the log.
func (o *orchestrator) systemFailure(ctx context.Context, userID string, err error) (*HandleEventOutput, error) {
	slog.ErrorContext(ctx, "conversation turn failed",
		"user_id", userID,
		"code", errors.GetCode(err).String(),
		"error", err,
	)

	message := "Something went wrong on my side. The action was not applied."
	if errors.IsUnavailable(err) {
		message = "I cannot reach storage right now. Try again in a moment."
	}
	if alertErr := o.alert(ctx, userID, message); alertErr != nil {
		return nil, alertErr
	}
	return &HandleEventOutput{}, nil
}

func (o *orchestrator) alert(ctx context.Context, userID, message string) error {
	_, err := o.transport.Send(ctx, userID, menu.Alert(message))
	return err
}

func (o *orchestrator) session(userID string) *userSession {
	o.mu.Lock()
	defer o.mu.Unlock()
	sess, ok := o.sessions[userID]
	if !ok {
		sess = &userSession{scratch: conversation.NewScratch()}
		o.sessions[userID] = sess
	}
	return sess
}

// forget drops a user's session so the next event starts fresh. The caller
// holds the session lock; dropping the map entry is safe because a
// concurrent event for the same user re-creates it.
func (o *orchestrator) forget(userID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	sess := o.sessions[userID]
	delete(o.sessions, userID)
	if sess != nil {
		sess.state = conversation.StateNone
		sess.scratch = conversation.NewScratch()
	}
}
