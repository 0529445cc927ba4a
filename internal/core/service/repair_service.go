package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// RepairService implements repair-request intake and lifecycle updates.
type RepairService struct {
	repo     ports.RepairRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewRepairService(repo ports.RepairRepository, notifier ports.Notifier, logger zerolog.Logger) *RepairService {
	return &RepairService{repo: repo, notifier: notifier, logger: logger}
}

// Create files a new repair request together with its image rows. The
// repository writes both in one transaction; a failed image write leaves no
// orphaned parent behind.
func (s *RepairService) Create(ctx context.Context, in ports.CreateRepairInput) (*domain.RepairRequest, error) {
	now := time.Now().UTC()
	request := &domain.RepairRequest{
		ID:            uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerEmail: normalizeEmail(in.CustomerEmail),
		CustomerPhone: in.CustomerPhone,
		DeviceBrand:   in.DeviceBrand,
		DeviceModel:   in.DeviceModel,
		Problem:       in.Problem,
		Status:        domain.RepairPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, path := range in.ImagePaths {
		request.Images = append(request.Images, domain.RepairImage{
			ID:              uuid.NewString(),
			RepairRequestID: request.ID,
			Path:            path,
			CreatedAt:       now,
		})
	}

	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Error().Err(err).Msg("failed to create repair request")
		return nil, err
	}

	s.logger.Info().Str("repair_id", request.ID).Int("images", len(request.Images)).Msg("repair request created")
	return request, nil
}

func (s *RepairService) Get(ctx context.Context, id string) (*domain.RepairRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RepairService) List(ctx context.Context) ([]domain.RepairRequest, error) {
	return s.repo.List(ctx)
}

// Update moves a request through its lifecycle. A status change notifies the
// customer with the display label, not the raw variant.
func (s *RepairService) Update(ctx context.Context, id string, in ports.UpdateRepairInput) (*domain.RepairRequest, error) {
	if !in.Status.Valid() {
		return nil, domain.NewValidationError("status", "unknown repair status")
	}

	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := request.Status != in.Status
	request.Status = in.Status
	if in.QuoteCents != nil {
		request.QuoteCents = in.QuoteCents
	}
	request.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	if statusChanged {
		s.notifier.Enqueue(ports.Notification{
			Channel: ports.ChannelEmail,
			To:      request.CustomerEmail,
			Subject: "Your repair request was updated",
			Body:    "Hello " + request.CustomerName + ",\n\nYour repair request is now: " + request.Status.Label() + ".",
		})
	}

	return request, nil
}

func (s *RepairService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
