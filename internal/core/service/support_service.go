package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// SupportService implements the public contact form.
type SupportService struct {
	repo   ports.SupportRepository
	logger zerolog.Logger
}

func NewSupportService(repo ports.SupportRepository, logger zerolog.Logger) *SupportService {
	return &SupportService{repo: repo, logger: logger}
}

func (s *SupportService) Create(ctx context.Context, in ports.SupportInput) (*domain.SupportRequest, error) {
	now := time.Now().UTC()
	request := &domain.SupportRequest{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     normalizeEmail(in.Email),
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	s.logger.Info().Str("support_id", request.ID).Msg("support request created")
	return request, nil
}

func (s *SupportService) List(ctx context.Context) ([]domain.SupportRequest, error) {
	return s.repo.List(ctx)
}
