package domain

import "time"

// CompatibilityLevel is a coarse categorical judgment used for UI badges.
// It is deliberately decoupled from the numeric match score.
type CompatibilityLevel string

// Compatibility levels from best to worst.
const (
	CompatibilityExcellent CompatibilityLevel = "excellent"
	CompatibilityGood      CompatibilityLevel = "good"
	CompatibilityFair      CompatibilityLevel = "fair"
	CompatibilityPoor      CompatibilityLevel = "poor"
)

// ScoreBreakdown holds the six per-factor sub-scores, each in [0,1].
type ScoreBreakdown struct {
	Fleet        float64 `json:"fleet"`
	Location     float64 `json:"location"`
	Capabilities float64 `json:"capabilities"`
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Pricing      float64 `json:"pricing"`
}

// MatchScore is the weighted-sum heuristic result. TotalScore is in [0,1]
// and is not a probability.
type MatchScore struct {
	TotalScore float64            `json:"total_score"`
	Breakdown  ScoreBreakdown     `json:"breakdown"`
	Weights    map[string]float64 `json:"weights"`
}

// Compatibility carries the categorical labels per axis.
type Compatibility struct {
	Fleet       CompatibilityLevel `json:"fleet"`
	Location    CompatibilityLevel `json:"location"`
	Performance CompatibilityLevel `json:"performance"`
}

// MatchResult is one ranked haulier for a job. The profile is shared by
// reference; results are never mutated after creation.
type MatchResult struct {
	Haulier       *HaulierProfile `json:"haulier"`
	Score         MatchScore      `json:"match_score"`
	Reasons       []string        `json:"match_reasons"`
	Compatibility Compatibility   `json:"compatibility"`
}

// MatchRecord is a history entry: a result saved for a user at a point in time.
type MatchRecord struct {
	JobID   string      `json:"job_id"`
	Result  MatchResult `json:"result"`
	SavedAt time.Time   `json:"saved_at"`
}
