package cache

import (
	"context"
	"fmt"

	"github.com/Humayun167/green-nest/config"
	"github.com/redis/go-redis/v9"
)

func CreateRedisClient(ctx context.Context, config *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisConfig.Address,
		Password: config.RedisConfig.Password,
		DB:       config.RedisConfig.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}
