// Package entities holds the character domain model: the aggregate every
// conversation handler reads and mutates. Invariants live here; handlers
// only sequence operations and render results.
package entities

import (
	"sort"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// EntityTypeCharacter is the core.Entity type tag for characters
const EntityTypeCharacter = "character"

// Settings holds per-character display and management preferences
type Settings struct {
	// SpellView selects how the spell list is rendered: "paged" or "compact"
	SpellView string `json:"spell_view,omitempty"`
	// CurrencyDisplay selects purse rendering: "split" per denomination or
	// "total" in base units
	CurrencyDisplay string `json:"currency_display,omitempty"`
}

// Settings values
const (
	SpellViewPaged       = "paged"
	SpellViewCompact     = "compact"
	CurrencyDisplaySplit = "split"
	CurrencyDisplayTotal = "total"
)

// Note is a journal entry: free text or a stored voice attachment
type Note struct {
	Title          string `json:"title"`
	Text           string `json:"text,omitempty"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

// Character is the aggregate root for one player character. All owned
// entities (items, spells, slots, abilities, journal) live and die with it.
type Character struct {
	Name   string `json:"name"`
	Race   string `json:"race"`
	Gender string `json:"gender"`

	Classes          MultiClass `json:"classes"`
	HitPoints        int        `json:"hit_points"`
	CurrentHitPoints int        `json:"current_hit_points"`

	BaseArmorClass   int `json:"base_armor_class"`
	ShieldArmorClass int `json:"shield_armor_class"`
	MagicArmorClass  int `json:"magic_armor_class"`

	Features FeaturePoints `json:"features"`
	Purse    Currency      `json:"purse"`
	Bag      []*Item       `json:"bag,omitempty"`

	Spells    []*Spell   `json:"spells,omitempty"`
	Slots     SpellSlots `json:"slots,omitempty"`
	SlotsMode SlotsMode  `json:"slots_mode,omitempty"`

	Abilities []*Ability `json:"abilities,omitempty"`

	RollsHistory []RollRecord        `json:"rolls_history,omitempty"`
	Notes        map[string]Note     `json:"notes,omitempty"`
	Maps         map[string][]string `json:"maps,omitempty"`

	Settings Settings `json:"settings"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewCharacter creates a character from the creation-flow answers
func NewCharacter(name, race, gender, class string, hitPoints int) (*Character, error) {
	vb := errors.NewValidationBuilder()
	if name == "" {
		vb.RequiredField("name")
	}
	if race == "" {
		vb.RequiredField("race")
	}
	if gender == "" {
		vb.RequiredField("gender")
	}
	if class == "" {
		vb.RequiredField("class")
	}
	if hitPoints <= 0 {
		vb.Field("hit_points", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Character{
		Name:             name,
		Race:             race,
		Gender:           gender,
		Classes:          NewMultiClass(class),
		HitPoints:        hitPoints,
		CurrentHitPoints: hitPoints,
		Features:         NewFeaturePoints(),
		Purse:            NewCurrency(),
		Slots:            make(SpellSlots),
		Notes:            make(map[string]Note),
		Maps:             make(map[string][]string),
	}, nil
}

// GetID implements core.Entity. Names are unique within a roster.
func (c *Character) GetID() string {
	return c.Name
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// ArmorClass is the sum of the three independently edited components
func (c *Character) ArmorClass() int {
	return c.BaseArmorClass + c.ShieldArmorClass + c.MagicArmorClass
}

// IsDown reports the "character down" display condition. Not a terminal
// state; damage keeps accumulating below it.
func (c *Character) IsDown() bool {
	return c.CurrentHitPoints <= -c.HitPoints
}

// ApplyDamage subtracts from current hit points with no floor
func (c *Character) ApplyDamage(amount int) error {
	if amount <= 0 {
		return errors.InvalidArgument("damage must be positive")
	}
	c.CurrentHitPoints -= amount
	return nil
}

// HealOverflow returns how far past max hit points a heal would go
func (c *Character) HealOverflow(amount int) int {
	excess := c.CurrentHitPoints + amount - c.HitPoints
	if excess < 0 {
		return 0
	}
	return excess
}

// Heal adds to current hit points. When the result exceeds max, keepExcess
// decides between keeping the surplus as temporary hit points and clamping
// to max; the conversation asks the user first.
func (c *Character) Heal(amount int, keepExcess bool) error {
	if amount <= 0 {
		return errors.InvalidArgument("healing must be positive")
	}
	c.CurrentHitPoints += amount
	if !keepExcess && c.CurrentHitPoints > c.HitPoints {
		c.CurrentHitPoints = c.HitPoints
	}
	return nil
}

// LongRest restores hit points to max, all spell slots, and every long-rest
// ability.
func (c *Character) LongRest() {
	c.CurrentHitPoints = c.HitPoints
	c.Slots.RestoreAll()
	for _, a := range c.Abilities {
		if a.Restoration == RestoreLongRest {
			a.Refill()
		}
	}
}

// ShortRest refills short-rest abilities only
func (c *Character) ShortRest() {
	for _, a := range c.Abilities {
		if a.Restoration == RestoreShortRest {
			a.Refill()
		}
	}
}

// RemoveClass removes a class and handles its freed levels: with exactly one
// class left they transfer to the survivor automatically; with more, the
// freed count and candidates are returned for the user to resolve.
func (c *Character) RemoveClass(class string) (freed int, candidates []string, err error) {
	freed, err = c.Classes.RemoveClass(class)
	if err != nil {
		return 0, nil, err
	}

	remaining := c.Classes.ClassNames()
	if len(remaining) == 1 {
		// Sole survivor takes the levels; cannot exceed the cap since the
		// total was legal before removal.
		if err := c.Classes.AssignLevels(remaining[0], freed); err != nil {
			return 0, nil, err
		}
		return freed, nil, nil
	}
	return freed, remaining, nil
}

// Bag operations

// Encumbrance returns the total carried weight
func (c *Character) Encumbrance() int {
	total := 0
	for _, item := range c.Bag {
		total += item.CarriedWeight()
	}
	return total
}

// Item returns the named bag item, if present
func (c *Character) Item(name string) (*Item, bool) {
	for _, item := range c.Bag {
		if item.Name == name {
			return item, true
		}
	}
	return nil, false
}

// AddItem inserts a new item. Rejected when the name is taken or when the
// added weight would push encumbrance past carry capacity. Existing
// overflow is never auto-corrected; only insertions are checked.
func (c *Character) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, ok := c.Item(item.Name); ok {
		return errors.AlreadyExistsf("%s is already in the bag", item.Name)
	}
	if c.Encumbrance()+item.CarriedWeight() > c.Features.CarryCapacity() {
		return errors.FailedPreconditionf("too heavy: carrying %d of %d",
			c.Encumbrance(), c.Features.CarryCapacity())
	}
	c.Bag = append(c.Bag, item)
	c.sortBag()
	return nil
}

// AdjustItemQuantity changes an item's quantity by delta. Increases are
// subject to the carry-capacity check; quantity never goes below zero.
func (c *Character) AdjustItemQuantity(name string, delta int) error {
	item, ok := c.Item(name)
	if !ok {
		return errors.NotFoundf("no %s in the bag", name)
	}
	if item.Quantity+delta < 0 {
		return errors.OutOfRangef("only %d %s in the bag", item.Quantity, name)
	}
	if delta > 0 && c.Encumbrance()+delta*item.Weight > c.Features.CarryCapacity() {
		return errors.FailedPreconditionf("too heavy: carrying %d of %d",
			c.Encumbrance(), c.Features.CarryCapacity())
	}
	item.Quantity += delta
	return nil
}

// RemoveItem deletes an item from the bag
func (c *Character) RemoveItem(name string) error {
	for i, item := range c.Bag {
		if item.Name == name {
			c.Bag = append(c.Bag[:i], c.Bag[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("no %s in the bag", name)
}

func (c *Character) sortBag() {
	sort.Slice(c.Bag, func(i, j int) bool { return c.Bag[i].Name < c.Bag[j].Name })
}

// Spell operations

// Spell returns the named learned spell, if present
func (c *Character) Spell(name string) (*Spell, bool) {
	for _, sp := range c.Spells {
		if sp.Name == name {
			return sp, true
		}
	}
	return nil, false
}

// LearnSpell adds a spell to the spellbook. Requires a slot of the spell's
// level or higher to exist.
func (c *Character) LearnSpell(spell *Spell) error {
	if err := spell.Validate(); err != nil {
		return err
	}
	if _, ok := c.Spell(spell.Name); ok {
		return errors.AlreadyExistsf("%s is already known", spell.Name)
	}
	if !c.Slots.HasAtOrAbove(spell.Level) {
		return errors.FailedPreconditionf("spell level too high: no level %d or higher slot", spell.Level)
	}
	c.Spells = append(c.Spells, spell)
	sort.Slice(c.Spells, func(i, j int) bool {
		if c.Spells[i].Level != c.Spells[j].Level {
			return c.Spells[i].Level < c.Spells[j].Level
		}
		return c.Spells[i].Name < c.Spells[j].Name
	})
	return nil
}

// ForgetSpell removes a spell from the spellbook
func (c *Character) ForgetSpell(name string) error {
	for i, sp := range c.Spells {
		if sp.Name == name {
			c.Spells = append(c.Spells[:i], c.Spells[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("%s is not known", name)
}

// CastSpell spends a slot to cast a known spell. The slot must be at the
// spell's level or higher.
func (c *Character) CastSpell(name string, slotLevel int) error {
	spell, ok := c.Spell(name)
	if !ok {
		return errors.NotFoundf("%s is not known", name)
	}
	if slotLevel < spell.Level {
		return errors.FailedPreconditionf("%s needs a level %d or higher slot", spell.Name, spell.Level)
	}
	return c.Slots.Use(slotLevel)
}

// SetSlotsMode switches slot management. Automatic mode is not supported
// yet: the slot tables per class and level are not modeled.
func (c *Character) SetSlotsMode(mode SlotsMode) error {
	switch mode {
	case SlotsModeManual:
		c.SlotsMode = mode
		return nil
	case SlotsModeAutomatic:
		return errors.Unimplemented("automatic slot management is not yet supported")
	default:
		return errors.InvalidArgumentf("unknown slots mode %q", mode)
	}
}

// Ability operations

// Ability returns the named ability, if present
func (c *Character) Ability(name string) (*Ability, bool) {
	for _, a := range c.Abilities {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// AddAbility registers a new ability
func (c *Character) AddAbility(ability *Ability) error {
	if err := ability.Validate(); err != nil {
		return err
	}
	if _, ok := c.Ability(ability.Name); ok {
		return errors.AlreadyExistsf("%s is already known", ability.Name)
	}
	c.Abilities = append(c.Abilities, ability)
	sort.Slice(c.Abilities, func(i, j int) bool { return c.Abilities[i].Name < c.Abilities[j].Name })
	return nil
}

// RemoveAbility deletes an ability
func (c *Character) RemoveAbility(name string) error {
	for i, a := range c.Abilities {
		if a.Name == name {
			c.Abilities = append(c.Abilities[:i], c.Abilities[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("%s is not known", name)
}

// Journal operations

// RecordRolls appends the results of one pool throw to the history
func (c *Character) RecordRolls(records []RollRecord) {
	c.RollsHistory = append(c.RollsHistory, records...)
}

// SetNote creates or replaces a journal note
func (c *Character) SetNote(note Note) error {
	if note.Title == "" {
		return errors.InvalidArgument("note title cannot be empty")
	}
	if c.Notes == nil {
		c.Notes = make(map[string]Note)
	}
	c.Notes[note.Title] = note
	return nil
}

// DeleteNote removes a journal note
func (c *Character) DeleteNote(title string) error {
	if _, ok := c.Notes[title]; !ok {
		return errors.NotFoundf("no note titled %q", title)
	}
	delete(c.Notes, title)
	return nil
}

// NoteTitles returns the note titles in sorted order
func (c *Character) NoteTitles() []string {
	titles := make([]string, 0, len(c.Notes))
	for title := range c.Notes {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// AddMap stores an attachment path under a zone name
func (c *Character) AddMap(zone, path string) error {
	if zone == "" {
		return errors.InvalidArgument("zone name cannot be empty")
	}
	if path == "" {
		return errors.InvalidArgument("attachment path cannot be empty")
	}
	if c.Maps == nil {
		c.Maps = make(map[string][]string)
	}
	c.Maps[zone] = append(c.Maps[zone], path)
	return nil
}

// DeleteMapZone removes a zone and all its attachments
func (c *Character) DeleteMapZone(zone string) error {
	if _, ok := c.Maps[zone]; !ok {
		return errors.NotFoundf("no maps for zone %q", zone)
	}
	delete(c.Maps, zone)
	return nil
}

// MapZones returns the zone names in sorted order
func (c *Character) MapZones() []string {
	zones := make([]string, 0, len(c.Maps))
	for zone := range c.Maps {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}
