package conversation

import (
	"github.com/tavernkeep/tavernkeep/internal/menu"
)

// buildDispatch wires every state to its handlers. Back buttons reuse the
// open handler of the parent screen, so going back always re-renders from
// live data.
func (e *Engine) buildDispatch() map[State]*handlerSet {
	return map[State]*handlerSet{
		StateCharacterSelect: {
			buttons: map[string]buttonFn{
				menu.BtnRosterCreate: e.rosterCreate,
			},
			prefixes: []prefixEntry{
				{menu.BtnRosterSelectPrefix, e.rosterSelect},
				{menu.BtnRosterDeletePrefix, e.rosterDeleteAsk},
			},
		},
		StateDeleteConfirm: {
			buttons: map[string]buttonFn{
				menu.BtnYes: e.rosterDeleteYes,
				menu.BtnNo:  e.rosterDeleteNo,
			},
		},
		StateCreateName:      {text: e.createName, buttons: map[string]buttonFn{menu.BtnBack: e.openCharacters}},
		StateCreateRace:      {text: e.createRace, buttons: map[string]buttonFn{menu.BtnBack: e.rosterCreate}},
		StateCreateGender:    {text: e.createGender, buttons: map[string]buttonFn{menu.BtnBack: e.rosterCreate}},
		StateCreateClass:     {text: e.createClass, buttons: map[string]buttonFn{menu.BtnBack: e.rosterCreate}},
		StateCreateHitPoints: {text: e.createHitPoints, buttons: map[string]buttonFn{menu.BtnBack: e.rosterCreate}},

		StateMainMenu: {
			buttons: map[string]buttonFn{
				menu.BtnMainBag:        e.openBag,
				menu.BtnMainCurrency:   e.openCurrency,
				menu.BtnMainAbilities:  e.openAbilities,
				menu.BtnMainSpells:     e.openSpells,
				menu.BtnMainMulticlass: e.openMulticlass,
				menu.BtnMainRest:       e.openRest,
				menu.BtnMainHitPoints:  e.openHitPoints,
				menu.BtnMainDice:       e.openDice,
				menu.BtnMainNotes:      e.openNotes,
				menu.BtnMainMaps:       e.openMaps,
				menu.BtnMainFeatures:   e.openFeatures,
				menu.BtnMainSettings:   e.openSettings,
				menu.BtnMainArmorClass: e.openArmorClass,
				menu.BtnMainCharacters: e.openCharacters,
			},
		},

		StateBag: {
			buttons: map[string]buttonFn{
				menu.BtnBagAdd:      e.bagAddPrompt,
				menu.BtnBagNextPage: e.bagNextPage,
				menu.BtnBagPrevPage: e.bagPrevPage,
				menu.BtnBack:        e.toMain,
			},
			prefixes: []prefixEntry{{menu.BtnBagItemPrefix, e.bagOpenItem}},
		},
		StateBagAddItem: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openBag},
			text:    e.bagAddItem,
		},
		StateBagItem: {
			buttons: map[string]buttonFn{
				menu.BtnItemInc:    e.itemIncrement,
				menu.BtnItemDec:    e.itemDecrement,
				menu.BtnItemSetQty: e.itemQuantityPrompt,
				menu.BtnItemDrop:   e.itemDrop,
				menu.BtnBack:       e.openBag,
			},
		},
		StateBagItemQuantity: {
			buttons: map[string]buttonFn{menu.BtnBack: e.itemBack},
			text:    e.itemSetQuantity,
		},

		StateCurrency: {
			buttons: map[string]buttonFn{
				menu.BtnCurrencyConvert: e.currencyConvertOpen,
				menu.BtnBack:            e.toMain,
			},
			prefixes: []prefixEntry{
				{menu.BtnCurrencyDepositPrefix, e.currencyDeposit},
				{menu.BtnCurrencyWithdrawPrefix, e.currencyWithdraw},
			},
		},
		StateCurrencyAmount: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openCurrency},
			text:    e.currencyAmount,
		},
		StateCurrencyConvert: {
			buttons: map[string]buttonFn{
				menu.BtnConvertGo: e.convertGo,
				menu.BtnBack:      e.openCurrency,
			},
			prefixes: []prefixEntry{
				{menu.BtnConvertFromPrefix, e.convertFrom},
				{menu.BtnConvertToPrefix, e.convertTo},
			},
		},
		StateCurrencyConvertAmount: {
			buttons: map[string]buttonFn{menu.BtnBack: e.currencyConvertOpen},
			text:    e.convertAmount,
		},

		StateAbilities: {
			buttons: map[string]buttonFn{
				menu.BtnAbilityAdd: e.abilityAddPrompt,
				menu.BtnBack:       e.toMain,
			},
			prefixes: []prefixEntry{{menu.BtnAbilityPrefix, e.abilityOpen}},
		},
		StateAbilityAdd: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openAbilities},
			text:    e.abilityAddText,
		},
		StateAbilityAddKind: {
			buttons: map[string]buttonFn{
				menu.BtnAbilityKindActive:  e.abilityKindActive,
				menu.BtnAbilityKindPassive: e.abilityKindPassive,
				menu.BtnBack:               e.abilityAddPrompt,
			},
		},
		StateAbilityAddRestoration: {
			buttons: map[string]buttonFn{
				menu.BtnAbilityRestShort: e.abilityRestShort,
				menu.BtnAbilityRestLong:  e.abilityRestLong,
				menu.BtnBack:             e.abilityAddPrompt,
			},
		},
		StateAbility: {
			buttons: map[string]buttonFn{
				menu.BtnAbilityUse:     e.abilityUse,
				menu.BtnAbilityRestore: e.abilityRestore,
				menu.BtnAbilityToggle:  e.abilityToggle,
				menu.BtnAbilityForget:  e.abilityForget,
				menu.BtnBack:           e.openAbilities,
			},
		},

		StateSpells: {
			buttons: map[string]buttonFn{
				menu.BtnSpellLearn:    e.spellLearnPrompt,
				menu.BtnSlots:         e.openSlots,
				menu.BtnSpellNextPage: e.spellNextPage,
				menu.BtnSpellPrevPage: e.spellPrevPage,
				menu.BtnBack:          e.toMain,
			},
			prefixes: []prefixEntry{{menu.BtnSpellPrefix, e.spellOpen}},
		},
		StateSpellLearn: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openSpells},
			text:    e.spellLearnText,
		},
		StateSpell: {
			buttons: map[string]buttonFn{
				menu.BtnSpellCast:   e.spellCastPrompt,
				menu.BtnSpellForget: e.spellForget,
				menu.BtnBack:        e.openSpells,
			},
		},
		StateSpellCast: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.spellBack},
			prefixes: []prefixEntry{{menu.BtnCastSlotPrefix, e.spellCastSlot}},
		},
		StateSpellSlots: {
			buttons: map[string]buttonFn{
				menu.BtnSlotsEdit: e.slotsEditPrompt,
				menu.BtnSlotsMode: e.slotsModePrompt,
				menu.BtnBack:      e.openSpells,
			},
			prefixes: []prefixEntry{
				{menu.BtnSlotUsePrefix, e.slotUse},
				{menu.BtnSlotFreePrefix, e.slotFree},
			},
		},
		StateSpellSlotsMode: {
			buttons: map[string]buttonFn{
				menu.BtnSlotsModeManual: e.slotsModeManual,
				menu.BtnSlotsModeAuto:   e.slotsModeAutomatic,
				menu.BtnBack:            e.openSlots,
			},
		},
		StateSpellSlotEdit: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openSlots},
			text:    e.slotsEditText,
		},

		StateMulticlass: {
			buttons: map[string]buttonFn{
				menu.BtnMcAdd:       e.mcAddPrompt,
				menu.BtnMcLevelUp:   e.mcLevelUpPrompt,
				menu.BtnMcLevelDown: e.mcLevelDownPrompt,
				menu.BtnMcRemove:    e.mcRemovePrompt,
				menu.BtnBack:        e.toMain,
			},
		},
		StateMulticlassAdd: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.openMulticlass},
			prefixes: []prefixEntry{{menu.BtnMcPickPrefix, e.mcAddPick}},
			text:     e.mcAddText,
		},
		StateMulticlassLevelUp: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.openMulticlass},
			prefixes: []prefixEntry{{menu.BtnMcPickPrefix, e.mcLevelUpPick}},
		},
		StateMulticlassLevelDown: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.openMulticlass},
			prefixes: []prefixEntry{{menu.BtnMcPickPrefix, e.mcLevelDownPick}},
		},
		StateMulticlassRemove: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.openMulticlass},
			prefixes: []prefixEntry{{menu.BtnMcPickPrefix, e.mcRemovePick}},
		},
		StateMulticlassReassign: {
			prefixes: []prefixEntry{{menu.BtnMcReassignPrefix, e.mcReassign}},
		},

		StateRest: {
			buttons: map[string]buttonFn{
				menu.BtnRestShort: e.restShort,
				menu.BtnRestLong:  e.restLong,
				menu.BtnBack:      e.toMain,
			},
		},
		StateHitPoints: {
			buttons: map[string]buttonFn{
				menu.BtnHpDamage: e.hpDamagePrompt,
				menu.BtnHpHeal:   e.hpHealPrompt,
				menu.BtnBack:     e.toMain,
			},
		},
		StateDamage: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openHitPoints},
			text:    e.hpDamageText,
		},
		StateHeal: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openHitPoints},
			text:    e.hpHealText,
		},
		StateHealConfirm: {
			buttons: map[string]buttonFn{
				menu.BtnYes: e.healKeep,
				menu.BtnNo:  e.healCap,
			},
		},

		StateDice: {
			buttons: map[string]buttonFn{
				menu.BtnDiceRoll:    e.diceRoll,
				menu.BtnDiceHistory: e.diceHistoryOpen,
				menu.BtnBack:        e.toMain,
			},
			prefixes: []prefixEntry{
				{menu.BtnDiceIncPrefix, e.diceInc},
				{menu.BtnDiceDecPrefix, e.diceDec},
			},
		},
		StateDiceHistory: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openDice},
		},

		StateNotes: {
			buttons: map[string]buttonFn{
				menu.BtnNoteAdd: e.noteAddPrompt,
				menu.BtnBack:    e.toMain,
			},
			prefixes: []prefixEntry{{menu.BtnNotePrefix, e.noteOpen}},
		},
		StateNoteAdd: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openNotes},
			text:    e.noteAddTitle,
		},
		StateNoteContent: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openNotes},
			text:    e.noteContentText,
			attach:  e.noteContentAttach,
		},
		StateNote: {
			buttons: map[string]buttonFn{
				menu.BtnNoteDelete: e.noteDelete,
				menu.BtnBack:       e.openNotes,
			},
		},
		StateMaps: {
			buttons: map[string]buttonFn{
				menu.BtnMapZoneAdd: e.mapZoneAddPrompt,
				menu.BtnBack:       e.toMain,
			},
			prefixes: []prefixEntry{{menu.BtnMapZonePrefix, e.mapZoneOpen}},
		},
		StateMapZoneAdd: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openMaps},
			text:    e.mapZoneAddText,
		},
		StateMapZone: {
			buttons: map[string]buttonFn{
				menu.BtnMapUpload:     e.mapUploadPrompt,
				menu.BtnMapZoneDelete: e.mapZoneDelete,
				menu.BtnBack:          e.openMaps,
			},
		},
		StateMapUpload: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openMaps},
			attach:  e.mapUploadAttach,
		},

		StateFeatures: {
			buttons:  map[string]buttonFn{menu.BtnBack: e.toMain},
			prefixes: []prefixEntry{{menu.BtnFeaturePrefix, e.featureEditPick}},
		},
		StateFeatureEdit: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openFeatures},
			text:    e.featureEditText,
		},

		StateSettings: {
			buttons: map[string]buttonFn{
				menu.BtnSettingsSpellView:    e.settingsToggleSpellView,
				menu.BtnSettingsCurrencyView: e.settingsToggleCurrencyView,
				menu.BtnBack:                 e.toMain,
			},
		},
		StateArmorClass: {
			buttons: map[string]buttonFn{
				menu.BtnAcBase:   e.acEditBase,
				menu.BtnAcShield: e.acEditShield,
				menu.BtnAcMagic:  e.acEditMagic,
				menu.BtnBack:     e.toMain,
			},
		},
		StateArmorClassEdit: {
			buttons: map[string]buttonFn{menu.BtnBack: e.openArmorClass},
			text:    e.acEditText,
		},
	}
}
