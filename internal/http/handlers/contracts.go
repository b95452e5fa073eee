package handlers

import (
	"context"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/hauliers"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
)

type matchUsecase interface {
	MatchJob(ctx context.Context, userID string, job domain.JobRequirements, profiles []domain.HaulierProfile) ([]domain.MatchResult, error)
	Preferences(ctx context.Context, userID string) (matching.Preferences, error)
	SavePreferences(ctx context.Context, userID string, p matching.Preferences) error
	History(userID string) []domain.MatchRecord
}

// NewMatchUsecase wires a matching Service into a matchUsecase.
func NewMatchUsecase(service *matching.Service) matchUsecase {
	return service
}

type haulierUsecase interface {
	Get(ctx context.Context, id string) (*domain.HaulierProfile, error)
	List(ctx context.Context, limit, offset *int) ([]domain.HaulierProfile, error)
	GetAvailable(ctx context.Context) ([]domain.HaulierProfile, error)
	Save(ctx context.Context, h *domain.HaulierProfile) (domain.HaulierProfile, error)
}

// NewHaulierUsecase wires a hauliers Service into a haulierUsecase.
func NewHaulierUsecase(service *hauliers.Service) haulierUsecase {
	return service
}
