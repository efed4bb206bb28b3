package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// setIfExpiredScript returns the remaining PTTL of a live key, or writes the
// value with the given expiry (milliseconds) and returns 0.
//
//nolint:gochecknoglobals // compiled once, shared by all stores
var setIfExpiredScript = redis.NewScript(`
local remaining = redis.call("PTTL", KEYS[1])
if remaining > 0 then
	return remaining
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 0
`)

// consumeScript returns 0 when the key is absent, 1 when the value differs,
// and 2 after deleting a matching value.
//
//nolint:gochecknoglobals // compiled once, shared by all stores
var consumeScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
	return 0
end
if stored ~= ARGV[1] then
	return 1
end
redis.call("DEL", KEYS[1])
return 2
`)

// RedisStore is a Store backed by Redis server-side scripts.
type RedisStore struct {
	client redis.Scripter
}

// NewRedisStore wraps a Redis client.
func NewRedisStore(client redis.Scripter) *RedisStore {
	return &RedisStore{client: client}
}

// SetIfExpired implements Store.
func (s *RedisStore) SetIfExpired(ctx context.Context, key, code string, ttl time.Duration) (time.Duration, error) {
	remaining, err := setIfExpiredScript.Run(ctx, s.client, []string{key}, code, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, err
	}

	return time.Duration(remaining) * time.Millisecond, nil
}

// Consume implements Store.
func (s *RedisStore) Consume(ctx context.Context, key, code string) (VerifyOutcome, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{key}, code).Int64()
	if err != nil {
		return 0, err
	}

	switch res {
	case 0:
		return OutcomeExpired, nil
	case 1:
		return OutcomeInvalid, nil
	case 2:
		return OutcomeValid, nil
	default:
		return 0, fmt.Errorf("otp: unexpected consume result %d", res)
	}
}
