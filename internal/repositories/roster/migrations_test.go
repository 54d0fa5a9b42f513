package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRecord_V1ToCurrent(t *testing.T) {
	char := map[string]interface{}{
		"name":               "Durnik",
		"hit_points":         30,
		"current_hit_points": 12,
		"armor_class":        15,
	}

	version, err := migrateRecord(1, char)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	// v2 backfills the journal
	assert.Equal(t, map[string]interface{}{}, char["notes"])
	assert.Equal(t, map[string]interface{}{}, char["maps"])
	assert.Equal(t, []interface{}{}, char["rolls_history"])

	// v3 splits armor class into components
	assert.Equal(t, 15, char["base_armor_class"])
	assert.NotContains(t, char, "armor_class")
	assert.Equal(t, 0, char["shield_armor_class"])
	assert.Equal(t, 0, char["magic_armor_class"])
	assert.Equal(t, "", char["slots_mode"])
}

func TestMigrateRecord_V2ToCurrent(t *testing.T) {
	existingNotes := map[string]interface{}{"Quest": map[string]interface{}{"title": "Quest"}}
	char := map[string]interface{}{
		"name":        "Durnik",
		"notes":       existingNotes,
		"armor_class": 13,
	}

	_, err := migrateRecord(2, char)
	require.NoError(t, err)

	assert.Equal(t, existingNotes, char["notes"], "migrations never overwrite existing data")
	assert.Equal(t, 13, char["base_armor_class"])
}

func TestMigrateRecord_CurrentIsNoOp(t *testing.T) {
	char := map[string]interface{}{
		"name":               "Durnik",
		"base_armor_class":   14,
		"shield_armor_class": 2,
	}

	version, err := migrateRecord(CurrentSchemaVersion, char)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
	assert.Equal(t, 14, char["base_armor_class"])
	assert.NotContains(t, char, "notes", "no migration ran")
}

func TestMigrateRecord_Idempotent(t *testing.T) {
	char := map[string]interface{}{"name": "Durnik", "armor_class": 15}

	_, err := migrateRecord(1, char)
	require.NoError(t, err)
	base := char["base_armor_class"]

	_, err = migrateRecord(CurrentSchemaVersion, char)
	require.NoError(t, err)
	assert.Equal(t, base, char["base_armor_class"])
}

func TestMigrateRecord_BadVersions(t *testing.T) {
	_, err := migrateRecord(0, map[string]interface{}{})
	assert.Error(t, err)

	_, err = migrateRecord(CurrentSchemaVersion+1, map[string]interface{}{})
	assert.Error(t, err)
}
