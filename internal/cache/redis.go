// Package cache stores extracted product facts between extractions and
// provides the distributed sweep lock.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const (
	defaultPrefix = "foxdeal:"
	factKeyPart   = "fact:"
	lockKeyPart   = "lock:"
)

// releaseScript deletes a lock only while it is still held by the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Connect parses a redis:// URL, opens a client and verifies it with PING.
func Connect(ctx context.Context, url string, db int) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if db > 0 {
		opt.DB = db
	}

	rc := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rc, nil
}

// Redis is a fact cache and job lock backed by Redis.
type Redis struct {
	rc     redis.UniversalClient
	prefix string
	log    *slog.Logger
}

// RedisOption configures Redis.
type RedisOption func(*Redis)

// WithPrefix namespaces every key.
func WithPrefix(p string) RedisOption {
	return func(r *Redis) {
		if p != "" {
			r.prefix = p
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) RedisOption {
	return func(r *Redis) {
		r.log = l
	}
}

// NewRedis wraps an open client.
func NewRedis(rc redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		rc:     rc,
		prefix: defaultPrefix,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) factKey(url string) string {
	return r.prefix + factKeyPart + url
}

func (r *Redis) lockKey(name string) string {
	return r.prefix + lockKeyPart + name
}

// GetFact returns the cached fact for url. A miss is not an error.
func (r *Redis) GetFact(ctx context.Context, url string) (domain.ProductFact, bool, error) {
	bs, err := r.rc.Get(ctx, r.factKey(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ProductFact{}, false, nil
	}
	if err != nil {
		return domain.ProductFact{}, false, fmt.Errorf("reading cached fact: %w", err)
	}

	var f domain.ProductFact
	if err := json.Unmarshal(bs, &f); err != nil {
		r.log.Warn("dropping undecodable cached fact", "url", url, "error", err)
		_ = r.rc.Del(ctx, r.factKey(url)).Err()
		return domain.ProductFact{}, false, nil
	}
	return f, true, nil
}

// SetFact caches fact for url for ttl.
func (r *Redis) SetFact(ctx context.Context, url string, fact domain.ProductFact, ttl time.Duration) error {
	bs, err := json.Marshal(fact)
	if err != nil {
		return fmt.Errorf("encoding fact: %w", err)
	}
	if err := r.rc.Set(ctx, r.factKey(url), bs, ttl).Err(); err != nil {
		return fmt.Errorf("caching fact: %w", err)
	}
	return nil
}

// Acquire takes the named lock for holder with SET NX. It reports false
// when someone else holds it.
func (r *Redis) Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error) {
	ok, err := r.rc.SetNX(ctx, r.lockKey(name), holder, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring lock %s: %w", name, err)
	}
	return ok, nil
}

// Release drops the named lock if holder still owns it.
func (r *Redis) Release(ctx context.Context, name, holder string) error {
	if err := releaseScript.Run(ctx, r.rc, []string{r.lockKey(name)}, holder).Err(); err != nil {
		return fmt.Errorf("releasing lock %s: %w", name, err)
	}
	return nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rc.Ping(ctx).Err()
}
