package roster

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// CurrentSchemaVersion tags every record written by this build. Bump it
// when a migration is appended below.
const CurrentSchemaVersion = 3

// migration upgrades a raw character record by exactly one schema version.
// Migrations are pure: they fill defaults for fields the older version
// lacked and never drop data.
type migration func(char map[string]interface{})

// migrations[i] upgrades version i+1 to version i+2
var migrations = []migration{
	migrateV1ToV2,
	migrateV2ToV3,
}

// migrateV1ToV2 backfills the journal and settings fields added in v2
func migrateV1ToV2(char map[string]interface{}) {
	ensureKey(char, "notes", map[string]interface{}{})
	ensureKey(char, "maps", map[string]interface{}{})
	ensureKey(char, "settings", map[string]interface{}{})
	ensureKey(char, "rolls_history", []interface{}{})
}

// migrateV2ToV3 splits the single armor class into its three components and
// introduces the slot management mode. An old flat armor_class value
// becomes the base component.
func migrateV2ToV3(char map[string]interface{}) {
	if ac, ok := char["armor_class"]; ok {
		if _, has := char["base_armor_class"]; !has {
			char["base_armor_class"] = ac
		}
		delete(char, "armor_class")
	}
	ensureKey(char, "base_armor_class", 0)
	ensureKey(char, "shield_armor_class", 0)
	ensureKey(char, "magic_armor_class", 0)
	ensureKey(char, "slots_mode", "")
}

func ensureKey(m map[string]interface{}, key string, def interface{}) {
	if _, ok := m[key]; !ok {
		m[key] = def
	}
}

// migrateRecord upgrades a raw character map from the stored version to
// CurrentSchemaVersion. Running it on a current record is a no-op.
func migrateRecord(version int, char map[string]interface{}) (int, error) {
	if version < 1 {
		return 0, errors.InvalidArgumentf("invalid schema version %d", version)
	}
	if version > CurrentSchemaVersion {
		return 0, errors.Internalf("record schema version %d is newer than supported %d",
			version, CurrentSchemaVersion)
	}
	for v := version; v < CurrentSchemaVersion; v++ {
		migrations[v-1](char)
	}
	return CurrentSchemaVersion, nil
}
