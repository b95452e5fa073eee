package jobs

import (
	"context"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// MatcherPort abstracts the subset of matching service operations the
// Processor needs when handling job events.
type MatcherPort interface {
	MatchJob(ctx context.Context, userID string, job domain.JobRequirements, hauliers []domain.HaulierProfile) ([]domain.MatchResult, error)
	DropJob(userID, jobID string) int
}

// NotifierPort dispatches a notification for one found match. A nil
// notifier disables notifications; the engine itself never dispatches.
type NotifierPort interface {
	MatchFound(ctx context.Context, job domain.JobRequirements, m domain.MatchResult) error
}
