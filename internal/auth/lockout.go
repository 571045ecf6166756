package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginFailures = 5
	lockoutWindow    = 15 * time.Minute
)

// Lockout counts failed logins per email in Redis.
// The counter expires with the lockout window, so a lock clears on its own.
type Lockout struct {
	rdb *redis.Client
}

func NewLockout(rdb *redis.Client) *Lockout {
	return &Lockout{rdb: rdb}
}

func lockoutKey(email string) string {
	return fmt.Sprintf("login:failures:%s", email)
}

// IsLocked reports whether the email has reached the failure limit.
func (l *Lockout) IsLocked(ctx context.Context, email string) (bool, error) {
	count, err := l.rdb.Get(ctx, lockoutKey(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= maxLoginFailures, nil
}

// RecordFailure increments the failure counter and resets its TTL.
func (l *Lockout) RecordFailure(ctx context.Context, email string) error {
	key := lockoutKey(email)

	if err := l.rdb.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return l.rdb.Expire(ctx, key, lockoutWindow).Err()
}

// Reset clears the counter after a successful login.
func (l *Lockout) Reset(ctx context.Context, email string) error {
	return l.rdb.Del(ctx, lockoutKey(email)).Err()
}
