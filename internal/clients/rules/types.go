package rules

// SpellData is the subset of SRD spell information the bot surfaces when a
// spell is learned by name.
type SpellData struct {
	ID          string
	Name        string
	Level       int
	School      string
	CastingTime string
	Range       string
	Duration    string
	Description string
}

// ClassRef is a reference entry from the SRD class list
type ClassRef struct {
	ID   string
	Name string
}
