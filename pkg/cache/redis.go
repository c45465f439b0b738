package cache

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edugest/edugest-api/pkg/config"
)

const keyPrefix = "edugest:"

// NewRedis dials Redis and fails fast when the server does not answer a PING.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// ListKey is the cache key holding the listing of a table.
func ListKey(table string) string {
	return keyPrefix + "list:" + table
}

// ListPattern matches every cached listing.
func ListPattern() string {
	return keyPrefix + "list:*"
}
