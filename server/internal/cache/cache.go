package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Astemirdum/shareit/server/internal/model"
)

type Config struct {
	Addr     string        `yaml:"addr" envconfig:"REDIS_ADDR"`
	Password string        `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" envconfig:"REDIS_DB" default:"0"`
	PoolSize int           `yaml:"poolSize" envconfig:"REDIS_POOL_SIZE" default:"10"`
	TTL      time.Duration `yaml:"ttl" envconfig:"REDIS_TTL" default:"10m"`
}

func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// UserCache keeps users as JSON under shareit:user:<id>.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func userKey(id int64) string {
	return fmt.Sprintf("shareit:user:%d", id)
}

func (c *UserCache) Get(ctx context.Context, id int64) (model.User, bool, error) {
	val, err := c.client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, errors.Wrap(err, "redis get")
	}

	var user model.User
	if err := json.Unmarshal(val, &user); err != nil {
		return model.User{}, false, errors.Wrap(err, "unmarshal user")
	}
	return user, true, nil
}

func (c *UserCache) Set(ctx context.Context, user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal user")
	}
	return errors.Wrap(c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err(), "redis set")
}

func (c *UserCache) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(c.client.Del(ctx, userKey(id)).Err(), "redis del")
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, int64) (model.User, bool, error) { return model.User{}, false, nil }
func (Noop) Set(context.Context, model.User) error                { return nil }
func (Noop) Delete(context.Context, int64) error                  { return nil }
