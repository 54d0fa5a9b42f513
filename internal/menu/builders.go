package menu

import (
	"fmt"
	"strings"

	"github.com/tavernkeep/tavernkeep/internal/entities"
)

// PageSize is how many bag items or spells fit on one list screen
const PageSize = 8

func backStop() []Option {
	return []Option{
		{ID: BtnBack, Label: "Back"},
		{ID: BtnStop, Label: "Stop"},
	}
}

// Prompt builds a free-text prompt screen with only Back and Stop offered
func Prompt(text string) Screen {
	return Screen{Text: text, Options: backStop()}
}

// Alert builds a transient notice with no options of its own
func Alert(text string) Screen {
	return Screen{Text: text}
}

// Confirm builds a yes/no question
func Confirm(text string) Screen {
	return Screen{Text: text, Options: []Option{
		{ID: BtnYes, Label: "Yes"},
		{ID: BtnNo, Label: "No"},
		{ID: BtnStop, Label: "Stop"},
	}}
}

// CharacterSelect lists the roster and offers creation and deletion
func CharacterSelect(roster *entities.Roster) Screen {
	var b strings.Builder
	names := roster.Names()
	if len(names) == 0 {
		b.WriteString("You have no characters yet.")
	} else {
		b.WriteString("Your characters:")
	}

	opts := make([]Option, 0, 2*len(names)+2)
	for _, name := range names {
		ch, _ := roster.Get(name)
		label := fmt.Sprintf("%s (%s, level %d)", name, ch.Race, ch.Classes.TotalLevel())
		if name == roster.Active {
			label += " *"
		}
		opts = append(opts, Option{ID: BtnRosterSelectPrefix + name, Label: label})
		opts = append(opts, Option{ID: BtnRosterDeletePrefix + name, Label: "Delete " + name})
	}
	opts = append(opts, Option{ID: BtnRosterCreate, Label: "Create a character"})
	opts = append(opts, Option{ID: BtnStop, Label: "Stop"})
	return Screen{Text: b.String(), Options: opts}
}

// Main builds the main menu for the active character
func Main(ch *entities.Character) Screen {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s %s\n", ch.Name, ch.Race, ch.Gender)
	classes := make([]string, 0, len(ch.Classes.Levels))
	for _, name := range ch.Classes.ClassNames() {
		classes = append(classes, fmt.Sprintf("%s %d", name, ch.Classes.Level(name)))
	}
	fmt.Fprintf(&b, "%s (total level %d)\n", strings.Join(classes, " / "), ch.Classes.TotalLevel())
	fmt.Fprintf(&b, "HP %d/%d", ch.CurrentHitPoints, ch.HitPoints)
	if ch.IsDown() {
		b.WriteString(" DOWN")
	}
	fmt.Fprintf(&b, "  AC %d", ch.ArmorClass())

	return Screen{Text: b.String(), Options: []Option{
		{ID: BtnMainBag, Label: fmt.Sprintf("Bag (%d/%d)", ch.Encumbrance(), ch.Features.CarryCapacity())},
		{ID: BtnMainCurrency, Label: "Purse"},
		{ID: BtnMainSpells, Label: fmt.Sprintf("Spells (%d)", len(ch.Spells))},
		{ID: BtnMainAbilities, Label: fmt.Sprintf("Abilities (%d)", len(ch.Abilities))},
		{ID: BtnMainMulticlass, Label: "Classes"},
		{ID: BtnMainHitPoints, Label: "Hit points"},
		{ID: BtnMainRest, Label: "Rest"},
		{ID: BtnMainDice, Label: "Dice"},
		{ID: BtnMainNotes, Label: "Notes"},
		{ID: BtnMainMaps, Label: "Maps"},
		{ID: BtnMainArmorClass, Label: fmt.Sprintf("Armor class (%d)", ch.ArmorClass())},
		{ID: BtnMainFeatures, Label: "Features"},
		{ID: BtnMainSettings, Label: "Settings"},
		{ID: BtnMainCharacters, Label: "Characters"},
		{ID: BtnStop, Label: "Stop"},
	}}
}

// Bag lists one page of items with quantity and weight on the labels
func Bag(ch *entities.Character, page int) Screen {
	text := fmt.Sprintf("Bag: carrying %d of %d", ch.Encumbrance(), ch.Features.CarryCapacity())

	start := page * PageSize
	if start > len(ch.Bag) {
		start = len(ch.Bag)
	}
	end := start + PageSize
	if end > len(ch.Bag) {
		end = len(ch.Bag)
	}

	opts := make([]Option, 0, PageSize+5)
	for _, item := range ch.Bag[start:end] {
		opts = append(opts, Option{
			ID:    BtnBagItemPrefix + item.Name,
			Label: fmt.Sprintf("%s x%d (%d lb)", item.Name, item.Quantity, item.CarriedWeight()),
		})
	}
	if page > 0 {
		opts = append(opts, Option{ID: BtnBagPrevPage, Label: "Previous"})
	}
	if end < len(ch.Bag) {
		opts = append(opts, Option{ID: BtnBagNextPage, Label: "Next"})
	}
	opts = append(opts, Option{ID: BtnBagAdd, Label: "Add item"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// ItemView shows one bag item with its edit actions
func ItemView(item *entities.Item) Screen {
	text := fmt.Sprintf("%s x%d, %d lb each (%d lb total)", item.Name, item.Quantity, item.Weight, item.CarriedWeight())
	if item.Description != "" {
		text += "\n" + item.Description
	}
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnItemInc, Label: "+1"},
		{ID: BtnItemDec, Label: "-1"},
		{ID: BtnItemSetQty, Label: "Set quantity"},
		{ID: BtnItemDrop, Label: "Drop"},
	}, backStop()...)}
}

// Currency shows the purse with per-denomination deposit and withdraw
func Currency(ch *entities.Character) Screen {
	var b strings.Builder
	if ch.Settings.CurrencyDisplay == entities.CurrencyDisplayTotal {
		fmt.Fprintf(&b, "Purse: %d bronze total", ch.Purse.TotalBaseValue())
	} else {
		b.WriteString("Purse:")
		for _, d := range entities.Denominations {
			fmt.Fprintf(&b, "\n  %s: %d", d, ch.Purse.Amount(d))
		}
	}

	opts := make([]Option, 0, 2*len(entities.Denominations)+3)
	for _, d := range entities.Denominations {
		opts = append(opts, Option{ID: BtnCurrencyDepositPrefix + string(d), Label: "Add " + string(d)})
		opts = append(opts, Option{ID: BtnCurrencyWithdrawPrefix + string(d), Label: "Spend " + string(d)})
	}
	opts = append(opts, Option{ID: BtnCurrencyConvert, Label: "Convert"})
	opts = append(opts, backStop()...)
	return Screen{Text: b.String(), Options: opts}
}

// Convert shows the converter with its current source and target picks.
// Source and target can be chosen in either order; the exchange is offered
// once both are set.
func Convert(ch *entities.Character, from, to entities.Denomination) Screen {
	var b strings.Builder
	b.WriteString("Convert coins.")
	if from != "" {
		fmt.Fprintf(&b, "\nFrom: %s (have %d)", from, ch.Purse.Amount(from))
	}
	if to != "" {
		fmt.Fprintf(&b, "\nTo: %s", to)
	}

	opts := make([]Option, 0, 2*len(entities.Denominations)+3)
	for _, d := range entities.Denominations {
		opts = append(opts, Option{ID: BtnConvertFromPrefix + string(d), Label: "From " + string(d)})
	}
	for _, d := range entities.Denominations {
		opts = append(opts, Option{ID: BtnConvertToPrefix + string(d), Label: "To " + string(d)})
	}
	if from != "" && to != "" && from != to {
		opts = append(opts, Option{ID: BtnConvertGo, Label: fmt.Sprintf("Convert %s to %s", from, to)})
	}
	opts = append(opts, backStop()...)
	return Screen{Text: b.String(), Options: opts}
}

// Abilities lists the character's abilities with remaining uses
func Abilities(ch *entities.Character) Screen {
	text := "Abilities:"
	if len(ch.Abilities) == 0 {
		text = "No abilities yet."
	}

	opts := make([]Option, 0, len(ch.Abilities)+3)
	for _, a := range ch.Abilities {
		label := fmt.Sprintf("%s (%d/%d)", a.Name, a.Uses, a.MaxUses)
		if a.Passive && a.Activated {
			label += " active"
		}
		opts = append(opts, Option{ID: BtnAbilityPrefix + a.Name, Label: label})
	}
	opts = append(opts, Option{ID: BtnAbilityAdd, Label: "Add ability"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// AbilityView shows one ability with its actions
func AbilityView(a *entities.Ability) Screen {
	kind := "action"
	if a.Passive {
		kind = "passive"
	}
	text := fmt.Sprintf("%s (%s, %d/%d uses, refills on %s)",
		a.Name, kind, a.Uses, a.MaxUses, strings.ReplaceAll(string(a.Restoration), "_", " "))
	if a.Description != "" {
		text += "\n" + a.Description
	}

	opts := []Option{
		{ID: BtnAbilityUse, Label: "Use"},
		{ID: BtnAbilityRestore, Label: "Restore use"},
	}
	if a.Passive {
		label := "Activate"
		if a.Activated {
			label = "Deactivate"
		}
		opts = append(opts, Option{ID: BtnAbilityToggle, Label: label})
	}
	opts = append(opts, Option{ID: BtnAbilityForget, Label: "Forget"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// AbilityKind asks whether the drafted ability is an action or a passive
func AbilityKind() Screen {
	return Screen{Text: "Is this an action or a passive trait?", Options: append([]Option{
		{ID: BtnAbilityKindActive, Label: "Action"},
		{ID: BtnAbilityKindPassive, Label: "Passive"},
	}, backStop()...)}
}

// AbilityRestoration asks which rest refills the drafted ability
func AbilityRestoration() Screen {
	return Screen{Text: "Which rest refills it?", Options: append([]Option{
		{ID: BtnAbilityRestShort, Label: "Short rest"},
		{ID: BtnAbilityRestLong, Label: "Long rest"},
	}, backStop()...)}
}

// Spells lists one page of the spellbook, or all of it in compact view
func Spells(ch *entities.Character, page int) Screen {
	text := "Spellbook:"
	if len(ch.Spells) == 0 {
		text = "No spells known."
	}

	start, end := 0, len(ch.Spells)
	paged := ch.Settings.SpellView != entities.SpellViewCompact
	if paged {
		start = page * PageSize
		if start > len(ch.Spells) {
			start = len(ch.Spells)
		}
		end = start + PageSize
		if end > len(ch.Spells) {
			end = len(ch.Spells)
		}
	}

	opts := make([]Option, 0, end-start+6)
	for _, sp := range ch.Spells[start:end] {
		opts = append(opts, Option{
			ID:    BtnSpellPrefix + sp.Name,
			Label: fmt.Sprintf("%s (level %d)", sp.Name, sp.Level),
		})
	}
	if paged && page > 0 {
		opts = append(opts, Option{ID: BtnSpellPrevPage, Label: "Previous"})
	}
	if paged && end < len(ch.Spells) {
		opts = append(opts, Option{ID: BtnSpellNextPage, Label: "Next"})
	}
	opts = append(opts, Option{ID: BtnSpellLearn, Label: "Learn spell"})
	opts = append(opts, Option{ID: BtnSlots, Label: "Spell slots"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// SpellView shows one spell with cast and forget actions
func SpellView(sp *entities.Spell) Screen {
	text := fmt.Sprintf("%s, level %d", sp.Name, sp.Level)
	if sp.Description != "" {
		text += "\n" + sp.Description
	}
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnSpellCast, Label: "Cast"},
		{ID: BtnSpellForget, Label: "Forget"},
	}, backStop()...)}
}

// CastPicker offers the slots eligible to cast the spell: its level or
// higher, with remaining counts on the labels.
func CastPicker(sp *entities.Spell, slots []*entities.SpellSlot) Screen {
	text := fmt.Sprintf("Cast %s with which slot?", sp.Name)
	opts := make([]Option, 0, len(slots)+2)
	for _, slot := range slots {
		opts = append(opts, Option{
			ID:    fmt.Sprintf("%s%d", BtnCastSlotPrefix, slot.Level),
			Label: fmt.Sprintf("Level %d (%d/%d left)", slot.Level, slot.Remaining(), slot.Total),
		})
	}
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// SpellSlotsMenu shows every slot level with spend and free actions
func SpellSlotsMenu(ch *entities.Character) Screen {
	var b strings.Builder
	b.WriteString("Spell slots")
	if ch.SlotsMode != entities.SlotsModeUnset {
		fmt.Fprintf(&b, " (%s)", ch.SlotsMode)
	}
	levels := ch.Slots.Levels()
	if len(levels) == 0 {
		b.WriteString("\nNo slots configured.")
	}

	opts := make([]Option, 0, 2*len(levels)+4)
	for _, lvl := range levels {
		slot, _ := ch.Slots.At(lvl)
		opts = append(opts, Option{
			ID:    fmt.Sprintf("%s%d", BtnSlotUsePrefix, lvl),
			Label: fmt.Sprintf("Spend level %d (%d/%d left)", lvl, slot.Remaining(), slot.Total),
		})
		opts = append(opts, Option{
			ID:    fmt.Sprintf("%s%d", BtnSlotFreePrefix, lvl),
			Label: fmt.Sprintf("Free level %d", lvl),
		})
	}
	opts = append(opts, Option{ID: BtnSlotsEdit, Label: "Edit slots"})
	opts = append(opts, Option{ID: BtnSlotsMode, Label: "Management mode"})
	opts = append(opts, backStop()...)
	return Screen{Text: b.String(), Options: opts}
}

// SlotsModePicker offers the slot management modes
func SlotsModePicker() Screen {
	return Screen{Text: "How should spell slots be managed?", Options: append([]Option{
		{ID: BtnSlotsModeManual, Label: "Manually"},
		{ID: BtnSlotsModeAuto, Label: "Automatically by class"},
	}, backStop()...)}
}

// Multiclass shows the class breakdown with level and class actions
func Multiclass(ch *entities.Character) Screen {
	var b strings.Builder
	fmt.Fprintf(&b, "Classes (total level %d of %d):", ch.Classes.TotalLevel(), entities.MaxTotalLevel)
	for _, name := range ch.Classes.ClassNames() {
		fmt.Fprintf(&b, "\n  %s %d", name, ch.Classes.Level(name))
	}

	return Screen{Text: b.String(), Options: append([]Option{
		{ID: BtnMcLevelUp, Label: "Level up"},
		{ID: BtnMcLevelDown, Label: "Level down"},
		{ID: BtnMcAdd, Label: "Add class"},
		{ID: BtnMcRemove, Label: "Remove class"},
	}, backStop()...)}
}

// ClassPicker offers the character's classes for a level or removal action
func ClassPicker(ch *entities.Character, verb string) Screen {
	names := ch.Classes.ClassNames()
	opts := make([]Option, 0, len(names)+2)
	for _, name := range names {
		opts = append(opts, Option{
			ID:    BtnMcPickPrefix + name,
			Label: fmt.Sprintf("%s (level %d)", name, ch.Classes.Level(name)),
		})
	}
	opts = append(opts, backStop()...)
	return Screen{Text: fmt.Sprintf("Which class do you want to %s?", verb), Options: opts}
}

// ReassignPicker asks where freed levels should go. Only Stop is offered
// besides the candidates: the reassignment must be resolved.
func ReassignPicker(levels int, candidates []string) Screen {
	opts := make([]Option, 0, len(candidates)+1)
	for _, name := range candidates {
		opts = append(opts, Option{ID: BtnMcReassignPrefix + name, Label: name})
	}
	opts = append(opts, Option{ID: BtnStop, Label: "Stop"})
	return Screen{
		Text:    fmt.Sprintf("Where should the %d freed levels go?", levels),
		Options: opts,
	}
}

// Rest offers the two rest types
func Rest() Screen {
	return Screen{Text: "Take a rest.", Options: append([]Option{
		{ID: BtnRestShort, Label: "Short rest"},
		{ID: BtnRestLong, Label: "Long rest"},
	}, backStop()...)}
}

// HitPoints shows current hit points with damage and heal actions
func HitPoints(ch *entities.Character) Screen {
	text := fmt.Sprintf("HP %d/%d", ch.CurrentHitPoints, ch.HitPoints)
	if ch.IsDown() {
		text += "\nThe character is down."
	}
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnHpDamage, Label: "Take damage"},
		{ID: BtnHpHeal, Label: "Heal"},
	}, backStop()...)}
}

// HealConfirm asks whether healing past max should be kept as temporary
// hit points.
func HealConfirm(excess int) Screen {
	return Screen{
		Text: fmt.Sprintf("That heals %d past maximum. Keep the excess as temporary hit points?", excess),
		Options: []Option{
			{ID: BtnYes, Label: "Keep"},
			{ID: BtnNo, Label: "Cap at maximum"},
			{ID: BtnStop, Label: "Stop"},
		},
	}
}

// Dice shows the pending pool with per-die adjust buttons
func Dice(pool entities.DicePool) Screen {
	var b strings.Builder
	b.WriteString("Dice pool:")
	if pool.IsEmpty() {
		b.WriteString(" empty")
	}
	for _, die := range entities.DieTypes {
		if pool[die] > 0 {
			fmt.Fprintf(&b, " %dx%s", pool[die], die)
		}
	}

	opts := make([]Option, 0, 2*len(entities.DieTypes)+4)
	for _, die := range entities.DieTypes {
		opts = append(opts, Option{ID: BtnDiceIncPrefix + string(die), Label: "+" + string(die)})
	}
	for _, die := range entities.DieTypes {
		if pool[die] > 0 {
			opts = append(opts, Option{ID: BtnDiceDecPrefix + string(die), Label: "-" + string(die)})
		}
	}
	opts = append(opts, Option{ID: BtnDiceRoll, Label: "Roll"})
	opts = append(opts, Option{ID: BtnDiceHistory, Label: "History"})
	opts = append(opts, backStop()...)
	return Screen{Text: b.String(), Options: opts}
}

// RollResults renders one throw of the pool
func RollResults(records []entities.RollRecord) Screen {
	var b strings.Builder
	b.WriteString("Rolled:")
	total := 0
	for _, rec := range records {
		fmt.Fprintf(&b, "\n  %s:", rec.Die)
		for _, result := range rec.Results {
			fmt.Fprintf(&b, " %d", result)
			total += result
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d", total)
	return Screen{Text: b.String()}
}

// RollHistory renders the most recent rolls, newest last
func RollHistory(records []entities.RollRecord, limit int) Screen {
	if len(records) == 0 {
		return Screen{Text: "No rolls yet.", Options: backStop()}
	}
	start := 0
	if len(records) > limit {
		start = len(records) - limit
	}

	var b strings.Builder
	b.WriteString("Recent rolls:")
	for _, rec := range records[start:] {
		fmt.Fprintf(&b, "\n  %s:", rec.Die)
		for _, result := range rec.Results {
			fmt.Fprintf(&b, " %d", result)
		}
	}
	return Screen{Text: b.String(), Options: backStop()}
}

// Notes lists the journal's note titles
func Notes(ch *entities.Character) Screen {
	titles := ch.NoteTitles()
	text := "Notes:"
	if len(titles) == 0 {
		text = "No notes yet."
	}

	opts := make([]Option, 0, len(titles)+3)
	for _, title := range titles {
		opts = append(opts, Option{ID: BtnNotePrefix + title, Label: title})
	}
	opts = append(opts, Option{ID: BtnNoteAdd, Label: "Add note"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// NoteView shows one note. Voice notes show the attachment reference.
func NoteView(note entities.Note) Screen {
	text := note.Title
	if note.Text != "" {
		text += "\n" + note.Text
	}
	if note.AttachmentPath != "" {
		text += "\n[voice note " + note.AttachmentPath + "]"
	}
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnNoteDelete, Label: "Delete"},
	}, backStop()...)}
}

// Maps lists the map zones
func Maps(ch *entities.Character) Screen {
	zones := ch.MapZones()
	text := "Map zones:"
	if len(zones) == 0 {
		text = "No maps yet."
	}

	opts := make([]Option, 0, len(zones)+3)
	for _, zone := range zones {
		opts = append(opts, Option{
			ID:    BtnMapZonePrefix + zone,
			Label: fmt.Sprintf("%s (%d)", zone, len(ch.Maps[zone])),
		})
	}
	opts = append(opts, Option{ID: BtnMapZoneAdd, Label: "Add zone"})
	opts = append(opts, backStop()...)
	return Screen{Text: text, Options: opts}
}

// MapZone shows one zone's stored maps
func MapZone(ch *entities.Character, zone string) Screen {
	paths := ch.Maps[zone]
	var b strings.Builder
	fmt.Fprintf(&b, "Zone %s: %d maps", zone, len(paths))
	for _, path := range paths {
		b.WriteString("\n  [map " + path + "]")
	}
	return Screen{Text: b.String(), Options: append([]Option{
		{ID: BtnMapUpload, Label: "Upload map"},
		{ID: BtnMapZoneDelete, Label: "Delete zone"},
	}, backStop()...)}
}

// Features lists the six scores and the carry capacity derived from
// strength, with an edit action per score
func Features(ch *entities.Character) Screen {
	var b strings.Builder
	b.WriteString("Feature points:\n")
	for _, name := range entities.FeatureNames {
		score, _ := ch.Features.Score(name)
		fmt.Fprintf(&b, "  %s %d\n", name, score)
	}
	fmt.Fprintf(&b, "Carry capacity %d", ch.Features.CarryCapacity())

	opts := make([]Option, 0, len(entities.FeatureNames)+2)
	for _, name := range entities.FeatureNames {
		opts = append(opts, Option{ID: BtnFeaturePrefix + name, Label: "Set " + name})
	}
	return Screen{Text: b.String(), Options: append(opts, backStop()...)}
}

// Settings shows the display preferences with toggle actions
func Settings(ch *entities.Character) Screen {
	spellView := ch.Settings.SpellView
	if spellView == "" {
		spellView = entities.SpellViewPaged
	}
	currencyView := ch.Settings.CurrencyDisplay
	if currencyView == "" {
		currencyView = entities.CurrencyDisplaySplit
	}
	text := fmt.Sprintf("Settings:\n  spell list: %s\n  purse display: %s", spellView, currencyView)
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnSettingsSpellView, Label: "Toggle spell list view"},
		{ID: BtnSettingsCurrencyView, Label: "Toggle purse display"},
	}, backStop()...)}
}

// ArmorClass shows the three armor components with edit actions
func ArmorClass(ch *entities.Character) Screen {
	text := fmt.Sprintf("Armor class %d:\n  base %d\n  shield %d\n  magic %d",
		ch.ArmorClass(), ch.BaseArmorClass, ch.ShieldArmorClass, ch.MagicArmorClass)
	return Screen{Text: text, Options: append([]Option{
		{ID: BtnAcBase, Label: "Set base"},
		{ID: BtnAcShield, Label: "Set shield"},
		{ID: BtnAcMagic, Label: "Set magic"},
	}, backStop()...)}
}
