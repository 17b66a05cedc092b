package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"instant_offer/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisLockPrefix = "quote-lock:"
	retryInterval   = 25 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes quote mutations across instances with SET NX PX.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger *zap.Logger
}

var _ interfaces.IQuoteLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, ttl, wait time.Duration, logger *zap.Logger) *RedisLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLocker{client: client, ttl: ttl, wait: wait, logger: logger}
}

func (l *RedisLocker) Lock(ctx context.Context, quoteID string) (func(), error) {
	key := redisLockPrefix + quoteID
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("acquire quote lock: %w", err)
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}
		select {
		case <-ctx.Done():
			return nil, interfaces.ErrLockTimeout
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func() {
	return func() {
		// The caller's context may already be done; release on a fresh one.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("[quote][lock] release failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// NewRedisClient connects and pings, the way the cache clients are set up.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
