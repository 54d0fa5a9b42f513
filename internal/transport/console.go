package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// Console is a terminal transport for local play and development. Lines
// starting with "/" press the button with that ID, "@image <path>" and
// "@voice <path>" upload a local file, anything else is free text.
type Console struct {
	userID  string
	in      io.Reader
	out     io.Writer
	events  chan Event
	counter atomic.Int64
}

// ConsoleConfig contains configuration for the console transport.
type ConsoleConfig struct {
	// UserID attributed to every console event
	UserID string

	// In and Out default to stdin and stdout
	In  io.Reader
	Out io.Writer
}

// Validate validates the ConsoleConfig and sets defaults.
func (cfg *ConsoleConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.UserID == "" {
		return errors.InvalidArgument("user ID cannot be empty")
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return nil
}

// NewConsole creates a console transport
func NewConsole(cfg *ConsoleConfig) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Console{
		userID: cfg.UserID,
		in:     cfg.In,
		out:    cfg.Out,
		events: make(chan Event),
	}, nil
}

// Run reads input until EOF or context cancellation, then closes the event
// stream.
func (c *Console) Run(ctx context.Context) error {
	defer close(c.events)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev, err := c.parseLine(line)
		if err != nil {
			fmt.Fprintf(c.out, "! %v\n", err)
			continue
		}

		select {
		case c.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		slog.WarnContext(ctx, "console input closed", "error", err)
		return err
	}
	return nil
}

func (c *Console) parseLine(line string) (Event, error) {
	switch {
	case strings.HasPrefix(line, "/"):
		return Event{UserID: c.userID, Kind: EventButton, Payload: line[1:]}, nil
	case strings.HasPrefix(line, "@image "), strings.HasPrefix(line, "@voice "):
		kind := files.KindImage
		if strings.HasPrefix(line, "@voice ") {
			kind = files.KindVoice
		}
		path := strings.TrimSpace(line[len("@image "):])
		data, err := os.ReadFile(path) //nolint:gosec // local dev transport, user-supplied path is the point
		if err != nil {
			return Event{}, fmt.Errorf("cannot read %s: %w", path, err)
		}
		return Event{UserID: c.userID, Kind: EventAttachment, Data: data, AttachmentKind: kind}, nil
	default:
		return Event{UserID: c.userID, Kind: EventText, Payload: line}, nil
	}
}

// Send implements Transport
func (c *Console) Send(_ context.Context, _ string, screen menu.Screen) (MessageRef, error) {
	ref := MessageRef(fmt.Sprintf("console-%d", c.counter.Add(1)))
	c.print(screen)
	return ref, nil
}

// Edit implements Transport. The console cannot rewrite history; the screen
// is printed again.
func (c *Console) Edit(_ context.Context, _ MessageRef, screen menu.Screen) error {
	c.print(screen)
	return nil
}

// Delete implements Transport. A no-op on a terminal.
func (c *Console) Delete(_ context.Context, _ MessageRef) error {
	return nil
}

// Events implements Transport
func (c *Console) Events() <-chan Event {
	return c.events
}

func (c *Console) print(screen menu.Screen) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, screen.Text)
	for _, opt := range screen.Options {
		fmt.Fprintf(c.out, "  [/%s] %s\n", opt.ID, opt.Label)
	}
}
