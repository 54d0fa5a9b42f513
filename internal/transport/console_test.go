package transport_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/menu"
	"github.com/tavernkeep/tavernkeep/internal/transport"
)

func runConsole(t *testing.T, input string) []transport.Event {
	t.Helper()
	console, err := transport.NewConsole(&transport.ConsoleConfig{
		UserID: "console",
		In:     strings.NewReader(input),
		Out:    &bytes.Buffer{},
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- console.Run(context.Background()) }()

	var events []transport.Event
	for ev := range console.Events() {
		events = append(events, ev)
	}
	require.NoError(t, <-done)
	return events
}

func TestConsole_ParsesLines(t *testing.T) {
	events := runConsole(t, "/main:bag\n\nhello there\n")

	require.Len(t, events, 2, "blank lines are skipped")
	assert.Equal(t, transport.EventButton, events[0].Kind)
	assert.Equal(t, "main:bag", events[0].Payload)
	assert.Equal(t, "console", events[0].UserID)
	assert.Equal(t, transport.EventText, events[1].Kind)
	assert.Equal(t, "hello there", events[1].Payload)
}

func TestConsole_ReadsAttachments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tavern.png")
	require.NoError(t, os.WriteFile(path, []byte("png bytes"), 0o600))

	events := runConsole(t, "@image "+path+"\n@voice /no/such/file\n")

	require.Len(t, events, 1, "unreadable files are reported, not forwarded")
	assert.Equal(t, transport.EventAttachment, events[0].Kind)
	assert.Equal(t, files.KindImage, events[0].AttachmentKind)
	assert.Equal(t, []byte("png bytes"), events[0].Data)
}

func TestConsole_PrintsScreens(t *testing.T) {
	var out bytes.Buffer
	console, err := transport.NewConsole(&transport.ConsoleConfig{
		UserID: "console",
		In:     strings.NewReader(""),
		Out:    &out,
	})
	require.NoError(t, err)

	ref, err := console.Send(context.Background(), "console", menu.Screen{
		Text:    "Take a rest.",
		Options: []menu.Option{{ID: "rest:short", Label: "Short rest"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
	assert.Contains(t, out.String(), "Take a rest.")
	assert.Contains(t, out.String(), "[/rest:short] Short rest")
}

func TestConsole_ConfigValidation(t *testing.T) {
	_, err := transport.NewConsole(&transport.ConsoleConfig{})
	assert.Error(t, err)
}
