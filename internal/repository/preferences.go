package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
)

// PreferenceRepo persists per-user matching preferences. The in-memory
// store in the matching service stays authoritative for a running process;
// this repo only survives restarts.
type PreferenceRepo struct{ db *pgxpool.Pool }

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(db *pgxpool.Pool) *PreferenceRepo { return &PreferenceRepo{db: db} }

// LoadPreferences returns the stored preferences, or nil when the user
// never saved any.
func (r *PreferenceRepo) LoadPreferences(ctx context.Context, userID string) (*matching.Preferences, error) {
	var p matching.Preferences
	err := r.db.QueryRow(ctx, `
        SELECT max_distance, min_rating, preferred_countries, max_price
        FROM match_preferences
        WHERE user_id = $1
    `, userID).Scan(&p.MaxDistance, &p.MinRating, &p.PreferredCountries, &p.MaxPrice)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load preferences for %q: %w", userID, err)
	}
	if p.PreferredCountries == nil {
		p.PreferredCountries = []string{}
	}
	return &p, nil
}

// SavePreferences inserts or overwrites the user's preferences.
func (r *PreferenceRepo) SavePreferences(ctx context.Context, userID string, p matching.Preferences) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO match_preferences (user_id, max_distance, min_rating, preferred_countries, max_price, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id) DO UPDATE SET
            max_distance = EXCLUDED.max_distance,
            min_rating = EXCLUDED.min_rating,
            preferred_countries = EXCLUDED.preferred_countries,
            max_price = EXCLUDED.max_price,
            updated_at = EXCLUDED.updated_at
    `, userID, p.MaxDistance, p.MinRating, p.PreferredCountries, p.MaxPrice, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save preferences for %q: %w", userID, err)
	}
	return nil
}
