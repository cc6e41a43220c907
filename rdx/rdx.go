package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// SetJSON caches a value under key with a TTL. Cache failures are logged
// and swallowed; the store remains the source of truth.
func SetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	data, err := json.Marshal(val)
	if err != nil {
		log.Println("rdx marshal error:", err)
		return
	}
	if err := Conn.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Println("rdx SET error:", err)
	}
}

// GetJSON loads a cached value into dest. Returns false on miss or error.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	data, err := Conn.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("rdx GET error:", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Println("rdx unmarshal error:", err)
		return false
	}
	return true
}

// Invalidate drops cached keys after a write.
func Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Println("rdx DEL error:", err)
	}
}
