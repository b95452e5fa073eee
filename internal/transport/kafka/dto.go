package kafka

import (
	"strings"
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/jobs"
)

// EventDTO is the wire shape of a job event.
type EventDTO struct {
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	Job       domain.JobRequirements `json:"job"`
}

// ToDomain converts an EventDTO to a jobs.Event.
func ToDomain(dto EventDTO) jobs.Event {
	job := dto.Job
	job.JobID = strings.TrimSpace(job.JobID)
	job.ForwarderID = strings.TrimSpace(job.ForwarderID)
	return jobs.Event{
		Status:    strings.TrimSpace(dto.Status),
		CreatedAt: dto.CreatedAt,
		Job:       job,
	}
}
