package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedis connects to redis. The cache is an optimization only, so a
// missing redis is logged and tolerated: callers receive a client whose
// failures make every lookup a miss.
func NewRedis(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v (cache disabled)", addr, err)
	}

	return rdb
}
