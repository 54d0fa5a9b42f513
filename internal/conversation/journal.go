package conversation

import (
	"context"
	"fmt"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// Notes

func (e *Engine) openNotes(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateNotes, menu.Notes(ch)), nil
}

func (e *Engine) noteAddPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateNoteAdd, menu.Prompt("What is the note's title?")), nil
}

func (e *Engine) noteAddTitle(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateNoteAdd, menu.Prompt("What is the note's title?")), nil
	}
	t.Scratch.NoteTitle = text
	return show(StateNoteContent,
		menu.Prompt(fmt.Sprintf("Send the text for %q, or a voice message.", text)),
	), nil
}

func (e *Engine) noteContentText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	note := entities.Note{Title: t.Scratch.NoteTitle, Text: text}
	if err := ch.SetNote(note); err != nil {
		return domainFail(StateNotes, err, menu.Notes(ch))
	}
	t.Scratch.NoteTitle = ""
	return show(StateNotes, menu.Notes(ch)).mutated(), nil
}

func (e *Engine) noteContentAttach(_ context.Context, t *Turn, path string, kind files.Kind) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if kind != files.KindVoice {
		return show(StateNoteContent,
			menu.Alert("Notes take text or voice messages."),
			menu.Prompt(fmt.Sprintf("Send the text for %q, or a voice message.", t.Scratch.NoteTitle)),
		), nil
	}
	note := entities.Note{Title: t.Scratch.NoteTitle, AttachmentPath: path}
	if err := ch.SetNote(note); err != nil {
		return domainFail(StateNotes, err, menu.Notes(ch))
	}
	t.Scratch.NoteTitle = ""
	return show(StateNotes, menu.Notes(ch)).mutated(), nil
}

func (e *Engine) noteOpen(_ context.Context, t *Turn, title string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	note, ok := ch.Notes[title]
	if !ok {
		return domainFail(StateNotes, errors.NotFoundf("no note titled %q", title), menu.Notes(ch))
	}
	t.Scratch.ViewedNote = title
	return show(StateNote, menu.NoteView(note)), nil
}

func (e *Engine) noteDelete(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	title := t.Scratch.ViewedNote
	t.Scratch.ViewedNote = ""
	if err := ch.DeleteNote(title); err != nil {
		return domainFail(StateNotes, err, menu.Notes(ch))
	}
	return show(StateNotes, menu.Notes(ch)).mutated(), nil
}

// Maps

func (e *Engine) openMaps(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	return show(StateMaps, menu.Maps(ch)), nil
}

func (e *Engine) mapZoneAddPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateMapZoneAdd, menu.Prompt("What is the zone called?")), nil
}

func (e *Engine) mapZoneAddText(_ context.Context, t *Turn, text string) (*Outcome, error) {
	if text == "" {
		return show(StateMapZoneAdd, menu.Prompt("What is the zone called?")), nil
	}
	t.Scratch.ZoneName = text
	return show(StateMapUpload,
		menu.Prompt(fmt.Sprintf("Send the map image for %s.", text)),
	), nil
}

func (e *Engine) mapZoneOpen(_ context.Context, t *Turn, zone string) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if _, ok := ch.Maps[zone]; !ok {
		return domainFail(StateMaps, errors.NotFoundf("no maps for zone %q", zone), menu.Maps(ch))
	}
	t.Scratch.ZoneName = zone
	return show(StateMapZone, menu.MapZone(ch, zone)), nil
}

func (e *Engine) mapUploadPrompt(_ context.Context, t *Turn) (*Outcome, error) {
	return show(StateMapUpload,
		menu.Prompt(fmt.Sprintf("Send the map image for %s.", t.Scratch.ZoneName)),
	), nil
}

func (e *Engine) mapUploadAttach(_ context.Context, t *Turn, path string, kind files.Kind) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	if kind != files.KindImage {
		return show(StateMapUpload,
			menu.Alert("Maps must be images."),
			menu.Prompt(fmt.Sprintf("Send the map image for %s.", t.Scratch.ZoneName)),
		), nil
	}

	zone := t.Scratch.ZoneName
	if err := ch.AddMap(zone, path); err != nil {
		return domainFail(StateMaps, err, menu.Maps(ch))
	}
	return show(StateMapZone, menu.MapZone(ch, zone)).mutated(), nil
}

func (e *Engine) mapZoneDelete(_ context.Context, t *Turn) (*Outcome, error) {
	ch, err := e.character(t)
	if err != nil {
		return nil, err
	}
	zone := t.Scratch.ZoneName
	t.Scratch.ZoneName = ""
	if err := ch.DeleteMapZone(zone); err != nil {
		return domainFail(StateMaps, err, menu.Maps(ch))
	}
	return show(StateMaps,
		menu.Alert(fmt.Sprintf("Zone %s deleted.", zone)),
		menu.Maps(ch),
	).mutated(), nil
}
