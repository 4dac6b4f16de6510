package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis connects the query cache. A missing or unreachable Redis is not
// fatal: callers fall back to database reads when Redis is nil.
func InitRedis() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	addr := config.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	Redis = client
	return nil
}
