package hauliers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/apperr"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// Service coordinates haulier profile reads and writes. Profiles are
// normalized on the way in so the matching engine only ever sees fully
// populated records.
type Service struct {
	repo             haulierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a haulier Service.
func NewService(r haulierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get retrieves a haulier profile by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.HaulierProfile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperr.ErrNotFound
	}
	return h, nil
}

// List returns haulier profiles with optional pagination.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.HaulierProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// GetAvailable returns the profiles currently open for new work.
func (s *Service) GetAvailable(ctx context.Context) ([]domain.HaulierProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.GetAvailable(ctx)
}

// Save normalizes and upserts a haulier profile, returning the stored form.
func (s *Service) Save(ctx context.Context, h *domain.HaulierProfile) (domain.HaulierProfile, error) {
	if h == nil {
		return domain.HaulierProfile{}, apperr.ErrInvalid
	}
	if strings.TrimSpace(h.ID) == "" {
		return domain.HaulierProfile{}, fmt.Errorf("haulier has no id: %w", apperr.ErrInvalid)
	}
	normalized := domain.NewHaulierProfile(*h)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Upsert(ctx, &normalized); err != nil {
		return domain.HaulierProfile{}, err
	}
	return normalized, nil
}
