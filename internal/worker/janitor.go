package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ExpiredPurger exposes the subset of storage functionality the janitor needs.
type ExpiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Janitor periodically sweeps expired sessions and password reset codes.
// Expiry itself is enforced at lookup time; the sweep only keeps the
// tables from accumulating dead rows.
type Janitor struct {
	sessions ExpiredPurger
	resets   ExpiredPurger
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewJanitor constructs the sweeper.
func NewJanitor(sessions, resets ExpiredPurger, interval time.Duration, logger *slog.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		sessions: sessions,
		resets:   resets,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (j *Janitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the loop to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *Janitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	sessions, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("session sweep failed", slog.String("error", err.Error()))
	}
	resets, err := j.resets.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("reset code sweep failed", slog.String("error", err.Error()))
	}
	if sessions > 0 || resets > 0 {
		j.logger.Info("expired records purged",
			slog.Int64("sessions", sessions), slog.Int64("reset_codes", resets))
	}
}
