// Package menu builds every screen the bot shows. Builders are pure: the
// same character and scratch state always produce the same text and the
// same option set, which keeps re-entry idempotent and tests simple.
package menu

// Option is one tappable choice on a screen
type Option struct {
	ID    string
	Label string
}

// Screen is a rendered prompt: text plus the options offered
type Screen struct {
	Text    string
	Options []Option
}

// OptionIDs returns the IDs of the screen's options, in order. Tests assert
// on these rather than on label text.
func (s Screen) OptionIDs() []string {
	ids := make([]string, 0, len(s.Options))
	for _, opt := range s.Options {
		ids = append(ids, opt.ID)
	}
	return ids
}
