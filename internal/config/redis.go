package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is the shared Redis handle, set by InitRedis.
var RedisClient *redis.Client

// InitRedis connects to Redis and checks the connection with PING.
func InitRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	RedisClient = client
	if Logger != nil {
		Logger.Info("✅ Connected to Redis", zap.String("addr", addr), zap.String("ping", s))
	}
	return client, nil
}
