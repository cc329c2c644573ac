package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis opens the shared Redis client. Redis sits on the request path
// (rate limiter, stats cache, view counters), so timeouts are kept short: a
// slow Redis degrades those features but must not stall request handling.
func ConnectRedis(redisURI string) error {
	opt, err := redis.ParseURL(redisURI)
	if err != nil {
		return err
	}

	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second
	opt.PoolTimeout = 4 * time.Second
	opt.PoolSize = 10
	opt.MinIdleConns = 5 // keep warm conns for the rate limiter's per-request Incr
	opt.ConnMaxIdleTime = 5 * time.Minute
	opt.MaxRetries = 3

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
	return nil
}

// DisconnectRedis closes the Redis connection.
func DisconnectRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}
