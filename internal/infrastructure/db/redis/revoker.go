package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker records logged-out token IDs in Redis. Entries carry a TTL no
// shorter than the token's own lifetime, after which Redis drops them on its
// own; an expired token no longer needs a revocation entry to be rejected.
type TokenRevoker struct {
	client *redis.Client
}

func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke marks tokenID as invalid for ttl.
func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *TokenRevoker) key(tokenID string) string {
	return "revoked_token:" + tokenID
}
