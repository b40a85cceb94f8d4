package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "revoked:"

// Denylist is the redis-backed token revocation registry for multi-instance
// deployments. Entries expire on the token TTL, so a revoked jti outlives the
// token it belongs to but not the keyspace.
type Denylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDenylist creates a Denylist whose entries expire after ttl. Pass the
// token TTL so entries live exactly as long as the tokens they revoke.
func NewDenylist(client *redis.Client, ttl time.Duration) *Denylist {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Denylist{client: client, ttl: ttl}
}

// Revoke marks jti as revoked. Revoking twice only refreshes the entry's TTL.
func (d *Denylist) Revoke(ctx context.Context, jti string) error {
	if err := d.client.Set(ctx, denylistPrefix+jti, "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether jti has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}
