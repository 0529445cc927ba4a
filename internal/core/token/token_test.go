package token

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, expiresIn, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expires_in 3600, got %d", expiresIn)
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected token id to be set")
	}
	if until := time.Until(claims.ExpiresAt); until <= 0 || until > time.Hour {
		t.Fatalf("unexpected expiry window: %v", until)
	}
}

func TestVerify_DefaultTTL(t *testing.T) {
	issuer := NewIssuer("secret", 0)
	if issuer.TTL() != DefaultTTL {
		t.Fatalf("expected default ttl, got %v", issuer.TTL())
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer("secret", -time.Minute)

	raw, _, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(raw); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_BadSignature(t *testing.T) {
	raw, _, err := NewIssuer("secret-a", time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(raw); err != ErrSignature {
		t.Fatalf("expected ErrSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(raw); err != ErrMalformed {
			t.Fatalf("token %q: expected ErrMalformed, got %v", raw, err)
		}
	}
}
