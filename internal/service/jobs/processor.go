package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/apperr"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
)

// topMatchNotifications caps how many top-ranked matches trigger a
// notification per posted job.
const topMatchNotifications = 3

// Processor reacts to job lifecycle events: posted jobs get matched and
// announced, cancelled jobs get their cached matches dropped.
type Processor struct {
	matcher  MatcherPort
	notifier NotifierPort
	factory  *actionFactory
	logger   logx.Logger
}

// NewProcessor creates a job event Processor. notifier may be nil.
func NewProcessor(matcher MatcherPort, notifier NotifierPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		matcher:  matcher,
		notifier: notifier,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onPosted, p.onCancelled)
	return p
}

// Handle processes a single job event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPosted(ctx context.Context, e Event) error {
	results, err := p.matcher.MatchJob(ctx, e.Job.ForwarderID, e.Job, nil)
	if errors.Is(err, apperr.ErrInvalid) {
		// A malformed event will not get better on redelivery.
		p.logger.Warn("dropping invalid job event",
			logx.String("job_id", e.Job.JobID),
			logx.Any("err", err),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("match job %q: %w", e.Job.JobID, err)
	}

	p.logger.Info("job event handled",
		logx.String("event", "job_posted"),
		logx.String("job_id", e.Job.JobID),
		logx.String("forwarder_id", e.Job.ForwarderID),
		logx.Int("matches", len(results)),
	)

	if p.notifier == nil {
		return nil
	}
	for i, r := range results {
		if i >= topMatchNotifications {
			break
		}
		if err := p.notifier.MatchFound(ctx, e.Job, r); err != nil {
			return fmt.Errorf("notify match for job %q: %w", e.Job.JobID, err)
		}
	}
	return nil
}

func (p *Processor) onCancelled(_ context.Context, e Event) error {
	removed := p.matcher.DropJob(e.Job.ForwarderID, e.Job.JobID)
	p.logger.Info("job event handled",
		logx.String("event", "job_cancelled"),
		logx.String("job_id", e.Job.JobID),
		logx.Int("dropped_records", removed),
	)
	return nil
}
