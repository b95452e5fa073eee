package jobs

import (
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// Event is a single job lifecycle event. Posted events carry the full job
// requirements so the worker never has to look the job up.
type Event struct {
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	Job       domain.JobRequirements `json:"job"`
}
