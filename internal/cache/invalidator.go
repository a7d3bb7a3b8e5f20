package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "views:"
	channel   = "views:invalidate"
)

// ViewInvalidator drops cached page renders and notifies subscribers when
// listing views go stale. Every call is best-effort: errors are logged and
// swallowed so a Redis outage never fails a mutation.
type ViewInvalidator struct {
	Client *redis.Client
}

func NewViewInvalidator(client *redis.Client) *ViewInvalidator {
	return &ViewInvalidator{Client: client}
}

// Invalidate deletes the cache key for each path and publishes the path on
// the invalidation channel.
func (v *ViewInvalidator) Invalidate(paths ...string) {
	if len(paths) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = keyPrefix + p
	}
	if err := v.Client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[ViewInvalidator] del %v: %v", keys, err)
	}
	for _, p := range paths {
		if err := v.Client.Publish(ctx, channel, p).Err(); err != nil {
			log.Printf("[ViewInvalidator] publish %s: %v", p, err)
		}
	}
}
