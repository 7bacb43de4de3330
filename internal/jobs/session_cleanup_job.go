package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"gearshift/internal/repository"
)

// LimiterCleaner drops idle per-client rate limiters.
type LimiterCleaner interface {
	CleanupLimiters() int
}

// SessionCleanupJob evicts visitor sessions idle for longer than the TTL.
type SessionCleanupJob struct {
	sessions repository.SessionRepository
	limiters LimiterCleaner
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewSessionCleanupJob builds the job; limiters may be nil.
func NewSessionCleanupJob(sessions repository.SessionRepository, limiters LimiterCleaner, ttl, interval time.Duration) *SessionCleanupJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionCleanupJob{
		sessions: sessions,
		limiters: limiters,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (j *SessionCleanupJob) Start() {
	log.Info().Dur("ttl", j.ttl).Dur("interval", j.interval).Msg("session cleanup job started")
	j.ticker = time.NewTicker(j.interval)

	go func() {
		defer close(j.stopped)
		for {
			select {
			case <-j.ticker.C:
				j.RunOnce(context.Background())
			case <-j.done:
				log.Info().Msg("session cleanup job stopped")
				return
			}
		}
	}()
}

// Stop halts the ticker and waits for the worker goroutine to exit.
func (j *SessionCleanupJob) Stop() {
	if j.ticker == nil {
		return
	}
	j.stopOnce.Do(func() {
		j.ticker.Stop()
		close(j.done)
	})
	<-j.stopped
}

// RunOnce performs a single cleanup pass and reports how many sessions were evicted.
func (j *SessionCleanupJob) RunOnce(ctx context.Context) int {
	evicted := j.sessions.EvictIdle(ctx, j.now().Add(-j.ttl))

	limiters := 0
	if j.limiters != nil {
		limiters = j.limiters.CleanupLimiters()
	}

	log.Debug().
		Int("evicted_sessions", evicted).
		Int("dropped_limiters", limiters).
		Int("active_sessions", j.sessions.Count()).
		Msg("session cleanup completed")
	return evicted
}
