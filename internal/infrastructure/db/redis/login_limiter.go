package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	loginLimit  = 10
	loginWindow = time.Minute
)

// incrExpire atomically bumps the attempt counter and sets the window expiry
// on the first hit.
const incrExpire = `
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return c
`

// LoginLimiter throttles login attempts per email using a fixed window in
// Redis. It fails open: when Redis is unreachable the attempt is allowed and
// the error is logged, so a cache outage never locks users out.
type LoginLimiter struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewLoginLimiter(client *redis.Client, log zerolog.Logger) *LoginLimiter {
	return &LoginLimiter{client: client, log: log}
}

// Allow reports whether another login attempt for this email fits in the
// current window. A Redis failure is logged and absorbed here, so callers
// never see an error for an unavailable backend.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	count, err := l.client.Eval(ctx, incrExpire, []string{l.key(email)}, loginWindow.Milliseconds()).Int64()
	if err != nil {
		l.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		return true, nil
	}
	return count <= loginLimit, nil
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
