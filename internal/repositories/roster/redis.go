package roster

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/pkg/clock"
	redisclient "github.com/tavernkeep/tavernkeep/internal/redis"
)

const (
	characterKeyPrefix = "roster:character:"
	nameIndexPrefix    = "roster:names:"
	activeKeyPrefix    = "roster:active:"

	// Error messages
	errUserIDEmpty = "user ID cannot be empty"
	errRosterNil   = "roster cannot be nil"
	errNameEmpty   = "character name cannot be empty"
)

// characterRecord is the persisted envelope: schema version plus the raw
// character payload the migration pipeline operates on.
type characterRecord struct {
	SchemaVersion int             `json:"schema_version"`
	Character     json.RawMessage `json:"character"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func characterKey(userID, name string) string {
	return characterKeyPrefix + userID + ":" + name
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := nameIndexPrefix + input.UserID
	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for user %s", input.UserID)
	}

	result := entities.NewRoster(input.UserID)
	for _, name := range names {
		ch, err := r.getCharacter(ctx, input.UserID, name)
		if err != nil {
			if errors.IsNotFound(err) {
				// Dangling index entry, clean it up and move on
				slog.WarnContext(ctx, "character missing, cleaning up index",
					"user_id", input.UserID,
					"character", name)
				r.client.SRem(ctx, indexKey, name)
				continue
			}
			return nil, err
		}
		result.Characters = append(result.Characters, ch)
	}

	active, err := r.client.Get(ctx, activeKeyPrefix+input.UserID).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get active character for user %s", input.UserID)
	}
	if _, ok := result.Get(active); ok {
		result.Active = active
	}

	return &GetOutput{Roster: result}, nil
}

// getCharacter loads one record, runs the migration pipeline, and decodes
// the current-version character.
func (r *redisRepository) getCharacter(ctx context.Context, userID, name string) (*entities.Character, error) {
	raw, err := r.client.Get(ctx, characterKey(userID, name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no character named %s", name)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", name)
	}

	var record characterRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character record for %s", name)
	}

	var charMap map[string]interface{}
	if err := json.Unmarshal(record.Character, &charMap); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character payload for %s", name)
	}

	migrated, err := migrateRecord(record.SchemaVersion, charMap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to migrate character %s", name)
	}
	if migrated != record.SchemaVersion {
		slog.DebugContext(ctx, "migrated character record",
			"user_id", userID,
			"character", name,
			"from_version", record.SchemaVersion,
			"to_version", migrated)
	}

	payload, err := json.Marshal(charMap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to re-marshal migrated character %s", name)
	}

	var ch entities.Character
	if err := json.Unmarshal(payload, &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", name)
	}
	return &ch, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := nameIndexPrefix + input.Roster.UserID

	// Diff the stored index so removed characters lose their keys
	existing, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index for user %s", input.Roster.UserID)
	}

	now := r.clock.Now().Unix()
	pipe := r.client.TxPipeline()

	current := make(map[string]bool, len(input.Roster.Characters))
	for _, ch := range input.Roster.Characters {
		if ch.Name == "" {
			return nil, errors.InvalidArgument(errNameEmpty)
		}
		current[ch.Name] = true

		if ch.CreatedAt == 0 {
			ch.CreatedAt = now
		}
		ch.UpdatedAt = now

		payload, err := json.Marshal(ch)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal character %s", ch.Name)
		}
		record, err := json.Marshal(characterRecord{
			SchemaVersion: CurrentSchemaVersion,
			Character:     payload,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal record for %s", ch.Name)
		}

		pipe.Set(ctx, characterKey(input.Roster.UserID, ch.Name), record, 0)
		pipe.SAdd(ctx, indexKey, ch.Name)
	}

	for _, name := range existing {
		if !current[name] {
			pipe.Del(ctx, characterKey(input.Roster.UserID, name))
			pipe.SRem(ctx, indexKey, name)
		}
	}

	activeKey := activeKeyPrefix + input.Roster.UserID
	if input.Roster.Active != "" {
		pipe.Set(ctx, activeKey, input.Roster.Active, 0)
	} else {
		pipe.Del(ctx, activeKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save roster for user %s", input.Roster.UserID)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	key := characterKey(input.UserID, input.CharacterName)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence of %s", input.CharacterName)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("no character named %s", input.CharacterName)
	}

	active, err := r.client.Get(ctx, activeKeyPrefix+input.UserID).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get active character for user %s", input.UserID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, nameIndexPrefix+input.UserID, input.CharacterName)
	if active == input.CharacterName {
		pipe.Del(ctx, activeKeyPrefix+input.UserID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterName)
	}

	return &DeleteOutput{}, nil
}
