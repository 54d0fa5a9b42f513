package conversation

// State names where a user's session currently sits. Every state has a
// dispatch table; events with no entry fall through to the global handler.
type State string

// Conversation states
const (
	// StateNone is the zero value: no session yet
	StateNone State = ""

	// Roster and creation
	StateCharacterSelect State = "character_select"
	StateDeleteConfirm   State = "delete_confirm"
	StateCreateName      State = "create_name"
	StateCreateRace      State = "create_race"
	StateCreateGender    State = "create_gender"
	StateCreateClass     State = "create_class"
	StateCreateHitPoints State = "create_hit_points"

	StateMainMenu State = "main_menu"

	// Bag
	StateBag             State = "bag"
	StateBagAddItem      State = "bag_add_item"
	StateBagItem         State = "bag_item"
	StateBagItemQuantity State = "bag_item_quantity"

	// Purse
	StateCurrency              State = "currency"
	StateCurrencyAmount        State = "currency_amount"
	StateCurrencyConvert       State = "currency_convert"
	StateCurrencyConvertAmount State = "currency_convert_amount"

	// Abilities
	StateAbilities              State = "abilities"
	StateAbilityAdd             State = "ability_add"
	StateAbilityAddKind         State = "ability_add_kind"
	StateAbilityAddRestoration  State = "ability_add_restoration"
	StateAbility                State = "ability"

	// Spells and slots
	StateSpells         State = "spells"
	StateSpellLearn     State = "spell_learn"
	StateSpell          State = "spell"
	StateSpellCast      State = "spell_cast"
	StateSpellSlots     State = "spell_slots"
	StateSpellSlotsMode State = "spell_slots_mode"
	StateSpellSlotEdit  State = "spell_slot_edit"

	// Multiclass
	StateMulticlass          State = "multiclass"
	StateMulticlassAdd       State = "multiclass_add"
	StateMulticlassLevelUp   State = "multiclass_level_up"
	StateMulticlassLevelDown State = "multiclass_level_down"
	StateMulticlassRemove    State = "multiclass_remove"
	StateMulticlassReassign  State = "multiclass_reassign"

	// Rest and hit points
	StateRest        State = "rest"
	StateHitPoints   State = "hit_points"
	StateDamage      State = "damage"
	StateHeal        State = "heal"
	StateHealConfirm State = "heal_confirm"

	// Dice
	StateDice        State = "dice"
	StateDiceHistory State = "dice_history"

	// Journal
	StateNotes       State = "notes"
	StateNoteAdd     State = "note_add"
	StateNoteContent State = "note_content"
	StateNote        State = "note"
	StateMaps        State = "maps"
	StateMapZoneAdd  State = "map_zone_add"
	StateMapZone     State = "map_zone"
	StateMapUpload   State = "map_upload"

	// Feature points
	StateFeatures    State = "features"
	StateFeatureEdit State = "feature_edit"

	// Settings and armor class
	StateSettings       State = "settings"
	StateArmorClass     State = "armor_class"
	StateArmorClassEdit State = "armor_class_edit"
)
