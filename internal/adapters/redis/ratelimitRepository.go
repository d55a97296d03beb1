package redis

import (
	"context"
	"fmt"
	"time"

	"emojifeed/internal/core/ratelimit"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

// slidingWindow trims attempts that left the window, then records the new
// attempt only if the window still has room. Scores are unix milliseconds
// taken from the Redis server clock, so every API instance shares one time
// source. A positive ARGV[1] overrides it.
//
// KEYS[1] counter key
// ARGV[1] now or 0, ARGV[2] window, ARGV[3] limit, ARGV[4] member
//
// Returns {allowed, remaining, retryAfterMs}.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
if now <= 0 then
	local t = redis.call('TIME')
	now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)
end
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)

if count < limit then
	redis.call('ZADD', key, now, ARGV[4])
	redis.call('PEXPIRE', key, window)
	return {1, limit - count - 1, 0}
end

local retry = 0
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if oldest[2] then
	retry = tonumber(oldest[2]) + window - now
end
return {0, 0, retry}
`)

// RateLimitRepositoryRedis keeps one sorted set of attempts per key.
type RateLimitRepositoryRedis struct {
	Client *redis.Client
	// Now overrides the Redis server clock when set. Tests only.
	Now func() time.Time
}

func NewRateLimitRepositoryRedis(client *redis.Client) *RateLimitRepositoryRedis {
	return &RateLimitRepositoryRedis{Client: client}
}

// TryAcquire runs the sliding-window script in one round trip.
func (r *RateLimitRepositoryRedis) TryAcquire(ctx context.Context, key string, limit int, window time.Duration) (ratelimit.Decision, error) {
	var now int64
	if r.Now != nil {
		now = r.Now().UnixMilli()
	}
	member := uuid.Must(uuid.NewV4()).String()

	res, err := slidingWindow.Run(ctx, r.Client, []string{key}, now, window.Milliseconds(), limit, member).Result()
	if err != nil {
		return ratelimit.Decision{}, fmt.Errorf("sliding window script: %w", err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 3 {
		return ratelimit.Decision{}, fmt.Errorf("sliding window script: unexpected reply %v", res)
	}
	allowed, _ := vals[0].(int64)
	remaining, _ := vals[1].(int64)
	retryMs, _ := vals[2].(int64)

	return ratelimit.Decision{
		Allowed:    allowed == 1,
		Remaining:  int(remaining),
		RetryAfter: time.Duration(retryMs) * time.Millisecond,
	}, nil
}
