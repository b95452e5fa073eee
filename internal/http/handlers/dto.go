package handlers

import "github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"

type matchRequest struct {
	UserID string                 `json:"user_id"`
	Job    domain.JobRequirements `json:"job"`
	// Optional inline profiles; when absent the repository supplies the
	// currently available hauliers.
	Hauliers []domain.HaulierProfile `json:"hauliers,omitempty"`
}

type matchResponse struct {
	JobID   string               `json:"job_id"`
	Matches []domain.MatchResult `json:"matches"`
}
