// Package lock provides the single-flight lease that keeps overlapping
// reminder runs from double-sending: the dedupe check in the scheduler is
// read-then-write, so concurrent runs must be serialized externally.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker grants an exclusive lease on a named resource for at most ttl.
type Locker interface {
	// Acquire returns true when the lease was granted.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// NopLocker always grants the lease. Used when Redis is not configured and the
// external trigger owns non-overlap instead.
type NopLocker struct{}

// Acquire always grants the lease.
func (NopLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }

// Release is a no-op.
func (NopLocker) Release(context.Context, string) error { return nil }

var _ Locker = NopLocker{}

// releaseScript deletes the key only if it still holds our token, so an
// expired lease taken over by another run is never released from here.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is a SETNX-based lease with owner tokens. One locker is shared
// by every concurrent run trigger, so the token map is mutex-guarded: a lease
// expiring mid-run lets another goroutine acquire while the first releases.
type RedisLocker struct {
	client *redis.Client

	mu     sync.Mutex
	tokens map[string]string
}

// NewRedisLocker creates a RedisLocker on the given client.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client: client,
		tokens: make(map[string]string),
	}
}

func (l *RedisLocker) storeToken(key, token string) {
	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()
}

// takeToken removes and returns the owner token for key, if any.
func (l *RedisLocker) takeToken(key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	token, ok := l.tokens[key]
	if ok {
		delete(l.tokens, key)
	}
	return token, ok
}

// Acquire attempts SET key token NX PX ttl.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	token, err := newToken()
	if err != nil {
		return false, err
	}
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock %q: %w", key, err)
	}
	if ok {
		l.storeToken(key, token)
	}
	return ok, nil
}

// Release drops the lease if this locker still owns it.
func (l *RedisLocker) Release(ctx context.Context, key string) error {
	token, ok := l.takeToken(key)
	if !ok {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("unlock %q: %w", key, err)
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("lock token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
