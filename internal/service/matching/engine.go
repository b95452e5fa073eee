// Package matching ranks haulier profiles against a job's requirements.
//
// The score is a fixed-weight sum of six factor sub-scores, each in [0,1].
// Two sub-scores (route distance, working-hours overlap) are deterministic
// placeholders isolated behind swappable functions; see estimate.go.
package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/apperr"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
)

// Service computes and ranks job/haulier matches and owns the per-user
// preference and history store.
type Service struct {
	store            *Store
	hauliers         HaulierSource
	prefs            PreferenceSink
	logger           logx.Logger
	distanceScore    RouteDistanceScoreFunc
	hoursScore       WorkingHoursScoreFunc
	matchesComputed  counter
	hauliersExcluded counter
}

// NewService creates a matching Service with the default placeholder
// scorers. A nil store gets a fresh in-memory one.
func NewService(store *Store, logger logx.Logger) *Service {
	if store == nil {
		store = NewStore()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:         store,
		logger:        logger,
		distanceScore: EstimateRouteDistanceScore,
		hoursScore:    EstimateWorkingHoursScore,
	}
}

// WithHaulierSource sets the repository used when MatchJob is called
// without inline haulier profiles.
func (s *Service) WithHaulierSource(src HaulierSource) *Service {
	s.hauliers = src
	return s
}

// WithPreferenceSink sets the persistence collaborator for preferences.
func (s *Service) WithPreferenceSink(sink PreferenceSink) *Service {
	s.prefs = sink
	return s
}

// WithRouteDistanceScorer swaps the route-distance placeholder.
func (s *Service) WithRouteDistanceScorer(fn RouteDistanceScoreFunc) *Service {
	if fn != nil {
		s.distanceScore = fn
	}
	return s
}

// WithWorkingHoursScorer swaps the working-hours placeholder.
func (s *Service) WithWorkingHoursScorer(fn WorkingHoursScoreFunc) *Service {
	if fn != nil {
		s.hoursScore = fn
	}
	return s
}

// WithCounters wires the computed/excluded metrics counters.
func (s *Service) WithCounters(computed, excluded counter) *Service {
	s.matchesComputed = computed
	s.hauliersExcluded = excluded
	return s
}

// Store exposes the preference/history store, mainly for the worker flow.
func (s *Service) Store() *Store { return s.store }

// Score computes the weighted match score for one haulier. Both inputs
// must be normalized; the sub-scores are total functions over that domain.
func (s *Service) Score(job domain.JobRequirements, h domain.HaulierProfile) domain.MatchScore {
	breakdown := domain.ScoreBreakdown{
		Fleet:        fleetScore(job, h),
		Location:     locationScore(job, h, s.distanceScore),
		Capabilities: capabilitiesScore(job, h),
		Availability: availabilityScore(job, h, s.hoursScore),
		Performance:  performanceScore(job, h),
		Pricing:      pricingScore(job, h),
	}
	total := round2(breakdown.Fleet*weightFleet +
		breakdown.Location*weightLocation +
		breakdown.Capabilities*weightCapabilities +
		breakdown.Availability*weightAvailability +
		breakdown.Performance*weightPerformance +
		breakdown.Pricing*weightPricing)

	return domain.MatchScore{
		TotalScore: total,
		Breakdown:  breakdown,
		Weights:    factorWeights(),
	}
}

// FindMatches scores every haulier, drops unavailable ones and confirmed
// zero scores, and returns the rest ordered by descending total score. The
// sort is stable: equal scores keep their input order. Either the full
// ranked list is returned or the call fails without partial results.
func (s *Service) FindMatches(job *domain.JobRequirements, hauliers []domain.HaulierProfile) ([]domain.MatchResult, error) {
	if job == nil {
		return nil, fmt.Errorf("nil job: %w", apperr.ErrInvalid)
	}
	if hauliers == nil {
		return nil, fmt.Errorf("nil haulier list: %w", apperr.ErrInvalid)
	}
	for i := range hauliers {
		if strings.TrimSpace(hauliers[i].ID) == "" {
			return nil, fmt.Errorf("haulier at index %d has no id: %w", i, apperr.ErrInvalid)
		}
	}

	results := make([]domain.MatchResult, 0, len(hauliers))
	for i := range hauliers {
		h := &hauliers[i]
		score := s.Score(*job, *h)
		// The fleet short-circuit on an unavailable haulier excludes it
		// outright; beyond that only a confirmed zero total excludes.
		if !h.Availability.IsAvailable || score.TotalScore == 0 {
			if s.hauliersExcluded != nil {
				s.hauliersExcluded.Inc()
			}
			continue
		}
		results = append(results, domain.MatchResult{
			Haulier:       h,
			Score:         score,
			Reasons:       MatchReasons(*job, *h),
			Compatibility: CompatibilityFor(*job, *h),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.TotalScore > results[j].Score.TotalScore
	})

	if s.matchesComputed != nil {
		s.matchesComputed.Inc()
	}
	s.logger.Info("matches computed",
		logx.String("job_id", job.JobID),
		logx.Int("hauliers", len(hauliers)),
		logx.Int("matches", len(results)),
	)
	return results, nil
}

// MatchJob is the request-level entry point: it normalizes the inputs,
// pulls available hauliers from the source when none are supplied inline,
// ranks them and records the results in the user's match history.
func (s *Service) MatchJob(ctx context.Context, userID string, job domain.JobRequirements, hauliers []domain.HaulierProfile) ([]domain.MatchResult, error) {
	now := time.Now().UTC()
	normalizedJob := domain.NormalizeJobRequirements(job, now)

	if hauliers == nil {
		if s.hauliers == nil {
			return nil, fmt.Errorf("no haulier source configured: %w", apperr.ErrInvalid)
		}
		loaded, err := s.hauliers.GetAvailable(ctx)
		if err != nil {
			return nil, fmt.Errorf("load available hauliers: %w", err)
		}
		hauliers = loaded
	}

	normalized := make([]domain.HaulierProfile, len(hauliers))
	for i := range hauliers {
		normalized[i] = domain.NormalizeHaulierProfile(hauliers[i], now)
	}

	results, err := s.FindMatches(&normalizedJob, normalized)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = normalizedJob.ForwarderID
	}
	if userID != "" {
		for _, r := range results {
			s.store.SaveResult(userID, normalizedJob.JobID, r)
		}
	}
	return results, nil
}

// Preferences returns the user's stored preferences, falling back to the
// persistence sink and finally to the documented defaults.
func (s *Service) Preferences(ctx context.Context, userID string) (Preferences, error) {
	if p, ok := s.store.Preferences(userID); ok {
		return p, nil
	}
	if s.prefs != nil {
		p, err := s.prefs.LoadPreferences(ctx, userID)
		if err != nil {
			return Preferences{}, fmt.Errorf("load preferences: %w", err)
		}
		if p != nil {
			s.store.SavePreferences(userID, *p)
			return *p, nil
		}
	}
	return DefaultPreferences(), nil
}

// SavePreferences overwrites the user's preferences in the store and, when
// a sink is configured, persists them.
func (s *Service) SavePreferences(ctx context.Context, userID string, p Preferences) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("empty user id: %w", apperr.ErrInvalid)
	}
	s.store.SavePreferences(userID, p)
	if s.prefs != nil {
		if err := s.prefs.SavePreferences(ctx, userID, p); err != nil {
			return fmt.Errorf("persist preferences: %w", err)
		}
	}
	return nil
}

// History returns the user's recorded matches, newest first.
func (s *Service) History(userID string) []domain.MatchRecord {
	return s.store.History(userID)
}

// DropJob removes a cancelled job's entries from the user's history.
func (s *Service) DropJob(userID, jobID string) int {
	return s.store.DropJob(userID, jobID)
}
