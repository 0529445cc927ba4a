package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// DefaultResetTTL is how long a reset token stays usable. The ledger stores
// no explicit expiry column; staleness is checked against CreatedAt.
const DefaultResetTTL = 60 * time.Minute

const resetTokenBytes = 32

// ResetService implements the password-reset ledger: single-use, superseding,
// hash-at-rest tokens delivered out-of-band.
type ResetService struct {
	users    ports.AuthRepository
	ledger   ports.ResetRepository
	notifier ports.Notifier
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewResetService(users ports.AuthRepository, ledger ports.ResetRepository, notifier ports.Notifier, ttl time.Duration, logger zerolog.Logger) *ResetService {
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	return &ResetService{users: users, ledger: ledger, notifier: notifier, ttl: ttl, logger: logger}
}

// Request generates a fresh token for email, superseding any prior record,
// and queues the plaintext for delivery. Only the hash is stored.
func (s *ResetService) Request(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	plaintext, err := newResetToken()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	record := &domain.PasswordReset{
		Email:     email,
		TokenHash: string(hash),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ledger.Upsert(ctx, record); err != nil {
		return err
	}

	s.notifier.Enqueue(ports.Notification{
		Channel: ports.ChannelEmail,
		To:      email,
		Subject: "Reset your password",
		Body: fmt.Sprintf("Hello %s,\n\nUse this token to reset your password: %s\n\nThe token is valid for %d minutes and can be used once.",
			user.Name, plaintext, int(s.ttl.Minutes())),
	})

	s.logger.Info().Str("email", email).Msg("password reset requested")
	return nil
}

// Consume redeems a presented token. On a hash match the ledger record is
// deleted before the password update is attempted, so the token is spent even
// if the update fails.
func (s *ResetService) Consume(ctx context.Context, email, presentedToken, newPassword string) error {
	email = normalizeEmail(email)

	record, err := s.ledger.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if time.Since(record.CreatedAt) > s.ttl {
		_ = s.ledger.DeleteByEmail(ctx, email)
		return domain.ErrResetNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(record.TokenHash), []byte(presentedToken)) != nil {
		return domain.ErrResetMismatch
	}

	if err := s.ledger.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.notifier.Enqueue(ports.Notification{
		Channel: ports.ChannelEmail,
		To:      email,
		Subject: "Your password was changed",
		Body:    fmt.Sprintf("Hello %s,\n\nYour password was just changed. If this wasn't you, contact support immediately.", user.Name),
	})

	s.logger.Info().Str("email", email).Msg("password reset consumed")
	return nil
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
