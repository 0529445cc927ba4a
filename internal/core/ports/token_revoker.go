package ports

import (
	"context"
	"time"
)

// TokenRevoker records tokens invalidated by logout. Entries only need to
// live as long as the token itself; the backing store expires them by TTL.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
