package hauliers

import (
	"context"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

type haulierRepository interface {
	Get(ctx context.Context, id string) (*domain.HaulierProfile, error)
	List(ctx context.Context, limit, offset *int) ([]domain.HaulierProfile, error)
	GetAvailable(ctx context.Context) ([]domain.HaulierProfile, error)
	Upsert(ctx context.Context, h *domain.HaulierProfile) error
}
