package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrStoreUnavailable = errors.New("rate limit store unavailable")

// consumeScript mirrors MemoryStore.ConsumeTokens atomically. Times are in
// milliseconds.
var consumeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local now = tonumber(ARGV[5])
local ttl = tonumber(ARGV[6])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now
end

local intervals = math.floor((now - last) / interval)
local cap = math.floor(capacity / rate) + 1
if intervals > cap then intervals = cap end
if intervals > 0 then
  tokens = math.min(tokens + intervals * rate, capacity)
  last = last + intervals * interval
  if tokens == capacity then last = now end
end

local remaining = tokens - requested
if remaining >= 0 then tokens = remaining end
redis.call('HSET', KEYS[1], 'tokens', tokens, 'last_refill', last)
redis.call('PEXPIRE', KEYS[1], ttl)
return {remaining, last + interval}
`)

// RedisStore shares buckets between instances through Redis.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. The default is "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) { rs.prefix = prefix }
}

func NewRedisStore(client redis.Cmdable, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{client: client, prefix: "ratelimit:", now: time.Now}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	// Idle buckets expire once they would be full again.
	refills := (cfg.Capacity + cfg.RefillRate - 1) / cfg.RefillRate
	ttl := time.Duration(refills+1) * cfg.RefillInterval

	res, err := consumeScript.Run(ctx, rs.client, []string{rs.prefix + key},
		cfg.Capacity,
		cfg.RefillRate,
		cfg.RefillInterval.Milliseconds(),
		tokens,
		rs.now().UnixMilli(),
		ttl.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("%w: unexpected script reply %v", ErrStoreUnavailable, res)
	}
	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
