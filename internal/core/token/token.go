// Package token issues and verifies the signed bearer tokens used for API
// authentication. Tokens are stateless HS256 JWTs; the only server-side state
// is the logout revocation ledger, which lives elsewhere.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTTL = 60 * time.Minute

var (
	ErrMalformed = errors.New("token malformed")
	ErrExpired   = errors.New("token expired")
	ErrSignature = errors.New("token signature invalid")
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// Issuer mints and verifies bearer tokens bound to a user identity.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a signed token for userID, valid from now until now+TTL.
// It returns the opaque token string and the lifetime in seconds.
func (i *Issuer) Issue(userID string) (string, int64, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(i.ttl.Seconds()), nil
}

// Verify checks raw's structure, signature and expiry, returning the decoded
// claims on success. Failures map to the sentinel errors above so callers can
// distinguish a garbled token from a stale one.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}

	return &Claims{
		UserID:    claims.Subject,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
