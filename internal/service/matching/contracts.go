package matching

import (
	"context"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// HaulierSource supplies the profiles to rank when the caller does not
// provide them inline. Backed by the repository in production.
type HaulierSource interface {
	GetAvailable(ctx context.Context) ([]domain.HaulierProfile, error)
}

// PreferenceSink persists per-user matching preferences across restarts.
// The in-memory store stays authoritative for the running process.
type PreferenceSink interface {
	LoadPreferences(ctx context.Context, userID string) (*Preferences, error)
	SavePreferences(ctx context.Context, userID string, p Preferences) error
}

// counter abstracts the subset of prometheus.Counter the engine needs.
type counter interface {
	Inc()
}
