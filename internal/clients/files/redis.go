package files

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/tavernkeep/internal/redis"
)

const (
	dataKeyPrefix = "file:data:"
	kindKeyPrefix = "file:kind:"
)

type redisStore struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis attachment store.
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
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

// NewRedis creates a new Redis-backed attachment store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("file")
	}

	return &redisStore{
		client: cfg.Client,
		idGen:  gen,
	}, nil
}

func (s *redisStore) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("attachment data cannot be empty")
	}
	if input.Kind != KindImage && input.Kind != KindVoice {
		return nil, errors.InvalidArgumentf("unknown attachment kind %q", input.Kind)
	}

	path := s.idGen.Generate()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, dataKeyPrefix+path, input.Data, 0)
	pipe.Set(ctx, kindKeyPrefix+path, string(input.Kind), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store attachment")
	}

	return &PutOutput{Path: path}, nil
}

func (s *redisStore) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument("attachment path cannot be empty")
	}

	data, err := s.client.Get(ctx, dataKeyPrefix+input.Path).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no attachment at %s", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to read attachment %s", input.Path)
	}

	kind, err := s.client.Get(ctx, kindKeyPrefix+input.Path).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read attachment kind for %s", input.Path)
	}

	return &GetOutput{Data: data, Kind: Kind(kind)}, nil
}
