package menu

// Button IDs. These are the wire vocabulary between rendered screens and
// the state machine's dispatch tables. Prefixed IDs carry an argument after
// the final colon, e.g. "bag:item:Rope".
const (
	// Global
	BtnStop = "stop"
	BtnBack = "back"
	BtnYes  = "yes"
	BtnNo   = "no"

	// Roster
	BtnRosterCreate       = "roster:create"
	BtnRosterSelectPrefix = "roster:select:"
	BtnRosterDeletePrefix = "roster:delete:"

	// Main menu
	BtnMainBag        = "main:bag"
	BtnMainCurrency   = "main:currency"
	BtnMainAbilities  = "main:abilities"
	BtnMainSpells     = "main:spells"
	BtnMainMulticlass = "main:multiclass"
	BtnMainRest       = "main:rest"
	BtnMainHitPoints  = "main:hitpoints"
	BtnMainDice       = "main:dice"
	BtnMainNotes      = "main:notes"
	BtnMainMaps       = "main:maps"
	BtnMainFeatures   = "main:features"
	BtnMainSettings   = "main:settings"
	BtnMainArmorClass = "main:armorclass"
	BtnMainCharacters = "main:characters"

	// Bag
	BtnBagAdd        = "bag:add"
	BtnBagItemPrefix = "bag:item:"
	BtnBagNextPage   = "bag:page:next"
	BtnBagPrevPage   = "bag:page:prev"
	BtnItemInc       = "item:inc"
	BtnItemDec       = "item:dec"
	BtnItemSetQty    = "item:setqty"
	BtnItemDrop      = "item:drop"

	// Currency
	BtnCurrencyDepositPrefix  = "currency:deposit:"
	BtnCurrencyWithdrawPrefix = "currency:withdraw:"
	BtnCurrencyConvert        = "currency:convert"
	BtnConvertFromPrefix      = "convert:from:"
	BtnConvertToPrefix        = "convert:to:"
	BtnConvertGo              = "convert:go"

	// Abilities
	BtnAbilityAdd          = "ability:add"
	BtnAbilityPrefix       = "ability:view:"
	BtnAbilityUse          = "ability:use"
	BtnAbilityRestore      = "ability:restore"
	BtnAbilityToggle       = "ability:toggle"
	BtnAbilityForget       = "ability:forget"
	BtnAbilityKindActive   = "ability:kind:active"
	BtnAbilityKindPassive  = "ability:kind:passive"
	BtnAbilityRestShort    = "ability:rest:short"
	BtnAbilityRestLong     = "ability:rest:long"

	// Spells
	BtnSpellLearn      = "spell:learn"
	BtnSpellPrefix     = "spell:view:"
	BtnSpellCast       = "spell:cast"
	BtnSpellForget     = "spell:forget"
	BtnSpellNextPage   = "spell:page:next"
	BtnSpellPrevPage   = "spell:page:prev"
	BtnCastSlotPrefix  = "cast:slot:"
	BtnSlots           = "slots:menu"
	BtnSlotsMode       = "slots:mode"
	BtnSlotsModeManual = "slots:mode:manual"
	BtnSlotsModeAuto   = "slots:mode:automatic"
	BtnSlotsEdit       = "slots:edit"
	BtnSlotUsePrefix   = "slots:use:"
	BtnSlotFreePrefix  = "slots:free:"

	// Multiclass
	BtnMcAdd            = "mc:add"
	BtnMcLevelUp        = "mc:levelup"
	BtnMcLevelDown      = "mc:leveldown"
	BtnMcRemove         = "mc:remove"
	BtnMcPickPrefix     = "mc:pick:"
	BtnMcReassignPrefix = "mc:reassign:"

	// Rest and hit points
	BtnRestShort = "rest:short"
	BtnRestLong  = "rest:long"
	BtnHpDamage  = "hp:damage"
	BtnHpHeal    = "hp:heal"

	// Dice
	BtnDiceIncPrefix = "dice:inc:"
	BtnDiceDecPrefix = "dice:dec:"
	BtnDiceRoll      = "dice:roll"
	BtnDiceHistory   = "dice:history"

	// Notes and maps
	BtnNoteAdd       = "note:add"
	BtnNotePrefix    = "note:view:"
	BtnNoteDelete    = "note:delete"
	BtnMapZoneAdd    = "map:zoneadd"
	BtnMapZonePrefix = "map:zone:"
	BtnMapUpload     = "map:upload"
	BtnMapZoneDelete = "map:zonedelete"

	// Settings and armor class
	BtnFeaturePrefix        = "feature:set:"
	BtnSettingsSpellView    = "settings:spellview"
	BtnSettingsCurrencyView = "settings:currencyview"
	BtnAcBase               = "ac:base"
	BtnAcShield             = "ac:shield"
	BtnAcMagic              = "ac:magic"
)
