package matching

import (
	"sync"
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// Preferences are a user's matching filters.
type Preferences struct {
	MaxDistance        float64  `json:"max_distance"`
	MinRating          float64  `json:"min_rating"`
	PreferredCountries []string `json:"preferred_countries"`
	MaxPrice           float64  `json:"max_price"`
}

// DefaultPreferences returns the values used for users that never saved any.
func DefaultPreferences() Preferences {
	return Preferences{
		MaxDistance:        100,
		MinRating:          3.0,
		PreferredCountries: []string{},
		MaxPrice:           10000,
	}
}

// DefaultHistoryLimit caps the per-user match history.
const DefaultHistoryLimit = 50

// Store keeps per-user preferences and a bounded match history in memory.
// Keys are user ids; entries for different users never interact. The store
// lives for the process lifetime; durability is the caller's concern.
type Store struct {
	mu           sync.RWMutex
	prefs        map[string]Preferences
	history      map[string][]domain.MatchRecord
	historyLimit int
	now          func() time.Time
}

// NewStore creates a Store with the default history limit.
func NewStore() *Store {
	return NewStoreWithLimit(DefaultHistoryLimit)
}

// NewStoreWithLimit creates a Store keeping at most limit history entries
// per user. Non-positive limits fall back to the default.
func NewStoreWithLimit(limit int) *Store {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Store{
		prefs:        make(map[string]Preferences),
		history:      make(map[string][]domain.MatchRecord),
		historyLimit: limit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Preferences returns the stored preferences for userID and whether any exist.
func (s *Store) Preferences(userID string) (Preferences, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[userID]
	if !ok {
		return Preferences{}, false
	}
	return copyPreferences(p), true
}

// SavePreferences overwrites the preferences for userID.
func (s *Store) SavePreferences(userID string, p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = copyPreferences(p)
}

// SaveResult prepends a timestamped record to the user's history and
// truncates it to the configured limit, dropping the oldest entries.
func (s *Store) SaveResult(userID, jobID string, r domain.MatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.MatchRecord{
		JobID:   jobID,
		Result:  r,
		SavedAt: s.now(),
	}
	list := append([]domain.MatchRecord{record}, s.history[userID]...)
	if len(list) > s.historyLimit {
		list = list[:s.historyLimit]
	}
	s.history[userID] = list
}

// History returns a copy of the user's records, newest first.
func (s *Store) History(userID string) []domain.MatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.history[userID]
	out := make([]domain.MatchRecord, len(list))
	copy(out, list)
	return out
}

// DropJob removes every record for jobID from the user's history and
// returns how many were removed. Unknown users and jobs are a no-op.
func (s *Store) DropJob(userID, jobID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.history[userID]
	if len(list) == 0 {
		return 0
	}
	kept := list[:0:0]
	for _, rec := range list {
		if rec.JobID != jobID {
			kept = append(kept, rec)
		}
	}
	removed := len(list) - len(kept)
	if removed == 0 {
		return 0
	}
	if len(kept) == 0 {
		delete(s.history, userID)
		return removed
	}
	s.history[userID] = kept
	return removed
}

func copyPreferences(p Preferences) Preferences {
	countries := make([]string, len(p.PreferredCountries))
	copy(countries, p.PreferredCountries)
	p.PreferredCountries = countries
	return p
}
