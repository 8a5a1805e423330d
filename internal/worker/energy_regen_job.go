package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/metrics"
)

// SleepingTicker credits regeneration to every sleeping profile for the
// window (since, now]
type SleepingTicker interface {
	TickSleeping(ctx context.Context, since, now time.Time) (int, error)
}

// EnergyRegenJob is the host tick for the energy state machines. Each run
// covers the time since the previous run, so runs that are late or skipped
// lose nothing. Runs never overlap.
type EnergyRegenJob struct {
	ticker SleepingTicker
	now    func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// NewEnergyRegenJob creates the job; the first run covers the time since
// construction. now defaults to time.Now.
func NewEnergyRegenJob(ticker SleepingTicker, now func() time.Time) *EnergyRegenJob {
	if now == nil {
		now = time.Now
	}
	return &EnergyRegenJob{ticker: ticker, now: now, lastRun: now()}
}

func (j *EnergyRegenJob) Name() string {
	return EnergyRegenJobName
}

// Process runs one sweep. A sweep that failed without crediting anyone
// leaves the window open so the next run covers it again.
func (j *EnergyRegenJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	started := time.Now()
	now := j.now()
	if !now.After(j.lastRun) {
		return nil
	}

	ticked, err := j.ticker.TickSleeping(ctx, j.lastRun, now)
	metrics.EnergyTickDuration.Observe(time.Since(started).Seconds())
	metrics.ProfilesTicked.Add(float64(ticked))

	if err == nil || ticked > 0 {
		j.lastRun = now
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEnergyRegenFailed, "ticked", ticked, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgEnergyRegenCompleted, "ticked", ticked, "window_end", now)
	return nil
}

// LastRun returns the end of the last window that was credited
func (j *EnergyRegenJob) LastRun() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastRun
}
