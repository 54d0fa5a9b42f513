package conversation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tavernkeep/tavernkeep/internal/clients/rules"
	rulesmock "github.com/tavernkeep/tavernkeep/internal/clients/rules/mock"
	"github.com/tavernkeep/tavernkeep/internal/conversation"
	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
	"github.com/tavernkeep/tavernkeep/internal/pkg/clock"
)

// stubRoller always rolls the same result
type stubRoller struct{ result int }

func (r *stubRoller) Roll(_ int) (int, error) { return r.result, nil }
func (r *stubRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.result
	}
	return out, nil
}

func newTestEngine(t *testing.T) *conversation.Engine {
	t.Helper()
	e, err := conversation.New(&conversation.Config{
		DiceRoller: &stubRoller{result: 4},
		Clock:      &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	return e
}

func newTurn(t *testing.T, withCharacter bool) *conversation.Turn {
	t.Helper()
	roster := entities.NewRoster("user-1")
	if withCharacter {
		ch, err := entities.NewCharacter("Durnik", "dwarf", "male", "fighter", 30)
		require.NoError(t, err)
		require.NoError(t, roster.Add(ch))
	}
	return &conversation.Turn{
		UserID:  "user-1",
		State:   conversation.StateMainMenu,
		Roster:  roster,
		Scratch: conversation.NewScratch(),
	}
}

// handle runs one event and advances the turn the way the orchestrator does
func handle(t *testing.T, e *conversation.Engine, turn *conversation.Turn, ev conversation.Event) *conversation.Outcome {
	t.Helper()
	out, err := e.HandleEvent(context.Background(), turn, ev)
	require.NoError(t, err)
	if !out.EndSession {
		turn.State = out.Next
	}
	return out
}

func press(t *testing.T, e *conversation.Engine, turn *conversation.Turn, id string) *conversation.Outcome {
	t.Helper()
	return handle(t, e, turn, conversation.ButtonPress{ID: id})
}

func text(t *testing.T, e *conversation.Engine, turn *conversation.Turn, value string) *conversation.Outcome {
	t.Helper()
	return handle(t, e, turn, conversation.TextInput{Value: value})
}

func TestEngine_StartWithoutCharacter(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, false)
	turn.State = conversation.StateNone

	out := handle(t, e, turn, conversation.TextInput{Value: "hello"})
	assert.Equal(t, conversation.StateCharacterSelect, out.Next)
	require.NotEmpty(t, out.Screens)
	assert.Contains(t, out.Screens[0].OptionIDs(), menu.BtnRosterCreate)
}

func TestEngine_StartWithActiveCharacter(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	turn.State = conversation.StateNone

	out := handle(t, e, turn, conversation.TextInput{Value: "hi"})
	assert.Equal(t, conversation.StateMainMenu, out.Next)
}

func TestEngine_CreationFlow(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, false)
	turn.State = conversation.StateCharacterSelect

	out := press(t, e, turn, menu.BtnRosterCreate)
	assert.Equal(t, conversation.StateCreateName, out.Next)

	text(t, e, turn, "Garion")
	text(t, e, turn, "human")
	text(t, e, turn, "male")
	text(t, e, turn, "sorcerer")
	out = text(t, e, turn, "14")

	assert.Equal(t, conversation.StateMainMenu, out.Next)
	assert.True(t, out.Dirty)

	ch := turn.Roster.ActiveCharacter()
	require.NotNil(t, ch)
	assert.Equal(t, "Garion", ch.Name)
	assert.Equal(t, 14, ch.HitPoints)
	assert.Equal(t, 1, ch.Classes.Level("sorcerer"))
}

func TestEngine_CreationRejectsBadHitPoints(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, false)
	turn.State = conversation.StateCharacterSelect

	press(t, e, turn, menu.BtnRosterCreate)
	text(t, e, turn, "Garion")
	text(t, e, turn, "human")
	text(t, e, turn, "male")
	text(t, e, turn, "sorcerer")

	out := text(t, e, turn, "zero")
	assert.Equal(t, conversation.StateCreateHitPoints, out.Next, "bad input re-prompts")
	assert.False(t, out.Dirty)

	out = text(t, e, turn, "-3")
	assert.Equal(t, conversation.StateCreateHitPoints, out.Next)
	assert.Nil(t, turn.Roster.ActiveCharacter())
}

func TestEngine_FallbackJumpsToMainMenu(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)

	press(t, e, turn, menu.BtnMainBag)
	out := press(t, e, turn, menu.BtnBagAdd)
	require.Equal(t, conversation.StateBagAddItem, out.Next)

	// A main-menu button mid-prompt abandons the prompt and acts
	out = press(t, e, turn, menu.BtnMainSpells)
	assert.Equal(t, conversation.StateSpells, out.Next)
}

func TestEngine_FallbackClearsVolatileScratch(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)

	press(t, e, turn, menu.BtnMainCurrency)
	press(t, e, turn, menu.BtnCurrencyConvert)
	press(t, e, turn, menu.BtnConvertFromPrefix+"gold")
	require.Equal(t, entities.Gold, turn.Scratch.ConvertFrom)

	press(t, e, turn, "no:such:button")
	assert.Empty(t, turn.Scratch.ConvertFrom, "unmatched events drop partial input")
}

func TestEngine_StopWithoutCharacterEndsSession(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, false)
	turn.State = conversation.StateCharacterSelect

	out := press(t, e, turn, menu.BtnStop)
	assert.True(t, out.EndSession)
	assert.Equal(t, conversation.StateNone, out.Next)
}

func TestEngine_StopWithActiveCharacterShowsMainMenu(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)

	press(t, e, turn, menu.BtnMainBag)
	out := press(t, e, turn, menu.BtnBagAdd)
	require.Equal(t, conversation.StateBagAddItem, out.Next)

	out = press(t, e, turn, menu.BtnStop)
	assert.False(t, out.EndSession)
	assert.Equal(t, conversation.StateMainMenu, out.Next)
	require.NotEmpty(t, out.Screens)
	assert.Contains(t, out.Screens[len(out.Screens)-1].OptionIDs(), menu.BtnMainBag)
}

func TestEngine_StopClearsVolatileScratch(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)

	press(t, e, turn, menu.BtnMainCurrency)
	press(t, e, turn, menu.BtnCurrencyConvert)
	press(t, e, turn, menu.BtnConvertFromPrefix+"gold")
	require.Equal(t, entities.Gold, turn.Scratch.ConvertFrom)

	press(t, e, turn, menu.BtnStop)
	assert.Empty(t, turn.Scratch.ConvertFrom)
}

func TestEngine_ReassignmentPinsSession(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Classes.AddClass("wizard"))
	require.NoError(t, ch.Classes.AddClass("rogue"))
	require.NoError(t, ch.Classes.LevelUp("wizard"))

	press(t, e, turn, menu.BtnMainMulticlass)
	press(t, e, turn, menu.BtnMcRemove)
	out := press(t, e, turn, menu.BtnMcPickPrefix+"wizard")
	require.Equal(t, conversation.StateMulticlassReassign, out.Next)
	require.NotNil(t, turn.Scratch.PendingReassignment)

	// Neither main-menu buttons nor stop can leave an unresolved choice
	out = press(t, e, turn, menu.BtnMainBag)
	assert.Equal(t, conversation.StateMulticlassReassign, out.Next)

	out = press(t, e, turn, menu.BtnStop)
	assert.Equal(t, conversation.StateMulticlassReassign, out.Next)
	assert.False(t, out.EndSession)

	out = press(t, e, turn, menu.BtnMcReassignPrefix+"rogue")
	assert.Equal(t, conversation.StateMulticlass, out.Next)
	assert.True(t, out.Dirty)
	assert.Nil(t, turn.Scratch.PendingReassignment)
	assert.Equal(t, 3, ch.Classes.Level("rogue"))
}

func TestEngine_StopAutoResolvesSingleCandidate(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	turn.State = conversation.StateMulticlassReassign
	turn.Scratch.PendingReassignment = &conversation.Reassignment{
		Levels:     2,
		Candidates: []string{"fighter"},
	}

	out := press(t, e, turn, menu.BtnStop)
	assert.False(t, out.EndSession)
	assert.Equal(t, conversation.StateMainMenu, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 3, ch.Classes.Level("fighter"))
	assert.Nil(t, turn.Scratch.PendingReassignment)
}

func TestEngine_SingleClassLevelChangeAppliesDirectly(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainMulticlass)
	out := press(t, e, turn, menu.BtnMcLevelUp)
	assert.Equal(t, conversation.StateMulticlass, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 2, ch.Classes.Level("fighter"))

	out = press(t, e, turn, menu.BtnMcLevelDown)
	assert.Equal(t, conversation.StateMulticlass, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 1, ch.Classes.Level("fighter"))

	// Below level 1 the change is rejected and nothing moves
	out = press(t, e, turn, menu.BtnMcLevelDown)
	assert.False(t, out.Dirty)
	assert.Equal(t, 1, ch.Classes.Level("fighter"))
}

func TestEngine_FeatureScoreEdit(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	out := press(t, e, turn, menu.BtnMainFeatures)
	require.Equal(t, conversation.StateFeatures, out.Next)
	assert.Contains(t, out.Screens[0].OptionIDs(), menu.BtnFeaturePrefix+entities.FeatureStrength)

	out = press(t, e, turn, menu.BtnFeaturePrefix+entities.FeatureStrength)
	require.Equal(t, conversation.StateFeatureEdit, out.Next)

	out = text(t, e, turn, "18")
	assert.Equal(t, conversation.StateFeatures, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 18, ch.Features.Strength)
	assert.Equal(t, 270, ch.Features.CarryCapacity())
}

func TestEngine_FeatureScoreRejectsBadInput(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainFeatures)
	press(t, e, turn, menu.BtnFeaturePrefix+entities.FeatureWisdom)

	out := text(t, e, turn, "lots")
	assert.Equal(t, conversation.StateFeatureEdit, out.Next, "bad input re-prompts")
	assert.False(t, out.Dirty)

	out = text(t, e, turn, "-2")
	assert.Equal(t, conversation.StateFeatureEdit, out.Next)
	assert.Equal(t, entities.DefaultFeatureScore, ch.Features.Wisdom)
}

func TestEngine_MultiClassLevelChangeShowsPicker(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Classes.AddClass("wizard"))

	press(t, e, turn, menu.BtnMainMulticlass)
	out := press(t, e, turn, menu.BtnMcLevelUp)
	require.Equal(t, conversation.StateMulticlassLevelUp, out.Next)
	assert.Equal(t, 1, ch.Classes.Level("fighter"))

	out = press(t, e, turn, menu.BtnMcPickPrefix+"wizard")
	assert.Equal(t, conversation.StateMulticlass, out.Next)
	assert.Equal(t, 2, ch.Classes.Level("wizard"))
}

func TestEngine_DiceFlow(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainDice)

	// An empty pool cannot be thrown
	out := press(t, e, turn, menu.BtnDiceRoll)
	assert.Equal(t, conversation.StateDice, out.Next)
	assert.False(t, out.Dirty)
	assert.Empty(t, ch.RollsHistory)

	press(t, e, turn, menu.BtnDiceIncPrefix+"d6")
	press(t, e, turn, menu.BtnDiceIncPrefix+"d6")
	press(t, e, turn, menu.BtnDiceIncPrefix+"d20")
	press(t, e, turn, menu.BtnDiceDecPrefix+"d20")
	press(t, e, turn, menu.BtnDiceIncPrefix+"d20")

	out = press(t, e, turn, menu.BtnDiceRoll)
	assert.True(t, out.Dirty)
	require.Len(t, ch.RollsHistory, 2)
	assert.Equal(t, entities.D6, ch.RollsHistory[0].Die)
	assert.Equal(t, []int{4, 4}, ch.RollsHistory[0].Results)
	assert.Equal(t, entities.D20, ch.RollsHistory[1].Die)
	assert.Equal(t, []int{4}, ch.RollsHistory[1].Results)
	assert.True(t, turn.Scratch.DicePool.IsEmpty(), "the pool clears after a throw")
}

func TestEngine_HealOverflowConfirm(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainHitPoints)
	press(t, e, turn, menu.BtnHpDamage)
	out := text(t, e, turn, "10")
	assert.True(t, out.Dirty)
	assert.Equal(t, 20, ch.CurrentHitPoints)

	press(t, e, turn, menu.BtnHpHeal)
	out = text(t, e, turn, "15")
	require.Equal(t, conversation.StateHealConfirm, out.Next, "overflow needs a decision")
	assert.False(t, out.Dirty)
	assert.Equal(t, 20, ch.CurrentHitPoints, "nothing applied yet")

	out = press(t, e, turn, menu.BtnYes)
	assert.True(t, out.Dirty)
	assert.Equal(t, 35, ch.CurrentHitPoints, "kept excess becomes temporary hit points")
}

func TestEngine_HealWithinMaxSkipsConfirm(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.ApplyDamage(10))

	press(t, e, turn, menu.BtnMainHitPoints)
	press(t, e, turn, menu.BtnHpHeal)
	out := text(t, e, turn, "10")
	assert.Equal(t, conversation.StateHitPoints, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 30, ch.CurrentHitPoints)
}

func TestEngine_CastOffersOnlyEligibleSlots(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Slots.Set(1, 2))
	require.NoError(t, ch.Slots.Set(3, 1))
	require.NoError(t, ch.LearnSpell(&entities.Spell{Name: "Invisibility", Level: 2}))

	press(t, e, turn, menu.BtnMainSpells)
	press(t, e, turn, menu.BtnSpellPrefix+"Invisibility")
	out := press(t, e, turn, menu.BtnSpellCast)
	require.Equal(t, conversation.StateSpellCast, out.Next)

	picker := out.Screens[len(out.Screens)-1]
	assert.Contains(t, picker.OptionIDs(), menu.BtnCastSlotPrefix+"3")
	assert.NotContains(t, picker.OptionIDs(), menu.BtnCastSlotPrefix+"1")

	out = press(t, e, turn, menu.BtnCastSlotPrefix+"3")
	assert.True(t, out.Dirty)
	slot, _ := ch.Slots.At(3)
	assert.Equal(t, 1, slot.Used)
}

func TestEngine_ConverterEitherOrder(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Purse.Add(entities.Silver, 7))

	press(t, e, turn, menu.BtnMainCurrency)
	press(t, e, turn, menu.BtnCurrencyConvert)

	// Target first, then source
	press(t, e, turn, menu.BtnConvertToPrefix+"electrum")
	out := press(t, e, turn, menu.BtnConvertFromPrefix+"silver")
	picker := out.Screens[len(out.Screens)-1]
	assert.Contains(t, picker.OptionIDs(), menu.BtnConvertGo)

	press(t, e, turn, menu.BtnConvertGo)
	out = text(t, e, turn, "7")
	assert.True(t, out.Dirty)
	assert.Equal(t, 0, ch.Purse.Amount(entities.Silver))
	assert.Equal(t, 1, ch.Purse.Amount(entities.Electrum))
	assert.Equal(t, 20, ch.Purse.Amount(entities.Bronze))
}

func TestEngine_ArmorClassFirstTimeSetup(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	out := press(t, e, turn, menu.BtnMainArmorClass)
	require.Equal(t, conversation.StateArmorClassEdit, out.Next,
		"a character without armor goes straight to setting the base")

	out = text(t, e, turn, "14")
	assert.Equal(t, conversation.StateArmorClass, out.Next)
	assert.True(t, out.Dirty)
	assert.Equal(t, 14, ch.BaseArmorClass)

	// With a base set, the overview shows first
	press(t, e, turn, menu.BtnBack)
	out = press(t, e, turn, menu.BtnMainArmorClass)
	assert.Equal(t, conversation.StateArmorClass, out.Next)
}

func TestEngine_AutomaticSlotsModeRejected(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainSpells)
	press(t, e, turn, menu.BtnSlots)
	press(t, e, turn, menu.BtnSlotsMode)

	out := press(t, e, turn, menu.BtnSlotsModeAuto)
	assert.Equal(t, conversation.StateSpellSlotsMode, out.Next, "rejection re-prompts")
	assert.False(t, out.Dirty)
	assert.Equal(t, entities.SlotsModeUnset, ch.SlotsMode)
	assert.Contains(t, out.Screens[0].Text, "not yet supported")

	out = press(t, e, turn, menu.BtnSlotsModeManual)
	assert.True(t, out.Dirty)
	assert.Equal(t, entities.SlotsModeManual, ch.SlotsMode)
}

func TestEngine_AbilityCreationFlow(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()

	press(t, e, turn, menu.BtnMainAbilities)
	press(t, e, turn, menu.BtnAbilityAdd)
	text(t, e, turn, "Rage; furious anger; 3")
	out := press(t, e, turn, menu.BtnAbilityKindActive)
	require.Equal(t, conversation.StateAbilityAddRestoration, out.Next)

	out = press(t, e, turn, menu.BtnAbilityRestLong)
	assert.True(t, out.Dirty)

	rage, ok := ch.Ability("Rage")
	require.True(t, ok)
	assert.Equal(t, 3, rage.MaxUses)
	assert.Equal(t, 3, rage.Uses, "a new ability starts full")
	assert.False(t, rage.Passive)
	assert.Equal(t, entities.RestoreLongRest, rage.Restoration)
}

func newRulesEngine(t *testing.T, client rules.Client) *conversation.Engine {
	t.Helper()
	e, err := conversation.New(&conversation.Config{
		DiceRoller: &stubRoller{result: 4},
		Rules:      client,
	})
	require.NoError(t, err)
	return e
}

func TestEngine_SpellLearnLooksUpByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRules := rulesmock.NewMockClient(ctrl)
	mockRules.EXPECT().
		GetSpell(gomock.Any(), "Magic Missile").
		Return(&rules.SpellData{Name: "Magic Missile", Level: 1, Description: "Evocation spell"}, nil)

	e := newRulesEngine(t, mockRules)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Slots.Set(1, 2))

	press(t, e, turn, menu.BtnMainSpells)
	press(t, e, turn, menu.BtnSpellLearn)
	out := text(t, e, turn, "Magic Missile")

	assert.Equal(t, conversation.StateSpells, out.Next)
	assert.True(t, out.Dirty)
	sp, ok := ch.Spell("Magic Missile")
	require.True(t, ok)
	assert.Equal(t, 1, sp.Level)
	assert.Equal(t, "Evocation spell", sp.Description)
}

func TestEngine_SpellLearnFallsBackWhenLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRules := rulesmock.NewMockClient(ctrl)
	mockRules.EXPECT().
		GetSpell(gomock.Any(), "Magic Missile").
		Return(nil, errors.Unavailable("api unreachable"))

	e := newRulesEngine(t, mockRules)
	turn := newTurn(t, true)
	ch := turn.Roster.ActiveCharacter()
	require.NoError(t, ch.Slots.Set(1, 2))

	press(t, e, turn, menu.BtnMainSpells)
	press(t, e, turn, menu.BtnSpellLearn)
	out := text(t, e, turn, "Magic Missile")

	require.Equal(t, conversation.StateSpellLearn, out.Next, "lookup failure falls back to manual entry")
	assert.Contains(t, out.Screens[0].Text, "Send 'name; level' instead.")

	out = text(t, e, turn, "Magic Missile; 1")
	assert.True(t, out.Dirty)
	_, ok := ch.Spell("Magic Missile")
	assert.True(t, ok)
}

func TestEngine_DeleteConfirm(t *testing.T) {
	e := newTestEngine(t)
	turn := newTurn(t, true)
	turn.State = conversation.StateCharacterSelect

	out := press(t, e, turn, menu.BtnRosterDeletePrefix+"Durnik")
	require.Equal(t, conversation.StateDeleteConfirm, out.Next)

	out = press(t, e, turn, menu.BtnNo)
	assert.Equal(t, conversation.StateCharacterSelect, out.Next)
	assert.False(t, out.Dirty)
	assert.NotNil(t, turn.Roster.ActiveCharacter())

	press(t, e, turn, menu.BtnRosterDeletePrefix+"Durnik")
	out = press(t, e, turn, menu.BtnYes)
	assert.True(t, out.Dirty)
	assert.Empty(t, turn.Roster.Characters)
}
