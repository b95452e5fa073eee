package notify

import (
	"context"
	"time"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
)

type notifier interface {
	MatchFound(ctx context.Context, job domain.JobRequirements, m domain.MatchResult) error
}

type counter interface {
	Inc()
}

// RetryConfig describes the RetryingNotifier behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingNotifier retries failed publishes with capped exponential backoff.
type RetryingNotifier struct {
	next    notifier
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingNotifier wraps next; returns nil when next is nil.
func NewRetryingNotifier(next notifier, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingNotifier {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingNotifier{next: next, logger: logger, retries: retries, cfg: cfg, sleep: time.Sleep}
}

// MatchFound delivers through the wrapped notifier, retrying transient
// failures until the attempt budget or the context runs out.
func (r *RetryingNotifier) MatchFound(ctx context.Context, job domain.JobRequirements, m domain.MatchResult) error {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		err := r.next.MatchFound(ctx, job, m)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts {
			break
		}
		delay := backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("notify retry",
			logx.String("job_id", job.JobID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, r.sleep, delay) {
			break
		}
	}
	return lastErr
}

// backoff doubles the base delay per attempt, capped at max.
func backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if max > 0 && delay >= max {
			return max
		}
	}
	if max > 0 && delay > max {
		return max
	}
	return delay
}

// sleepWithContext waits delay or until ctx is done; reports whether the
// full delay elapsed.
func sleepWithContext(ctx context.Context, sleep func(time.Duration), delay time.Duration) bool {
	if delay <= 0 {
		return true
	}
	done := make(chan struct{})
	go func() {
		sleep(delay)
		close(done)
	}()
	select {
	case <-ctx.Done():
		return false
	case <-done:
		return true
	}
}
