package cache

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/guttosm/shoppulse/internal/logger"
)

func log() *zerolog.Logger { return logger.Component("cache") }

// Purger is implemented by stores that can drop expired entries in bulk.
type Purger interface {
	Purge() int
}

// Janitor periodically purges expired entries from a store.
type Janitor struct {
	scheduler *gocron.Scheduler
	store     Purger
	interval  time.Duration
}

// NewJanitor prepares a janitor; call Start to schedule it.
func NewJanitor(store Purger, interval time.Duration) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		interval:  interval,
	}
}

// Start schedules the purge job and runs the scheduler in the background.
func (j *Janitor) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("cache janitor: interval must be positive, got %s", j.interval)
	}

	_, err := j.scheduler.Every(j.interval).SingletonMode().Do(j.run)
	if err != nil {
		return fmt.Errorf("cache janitor: schedule purge: %w", err)
	}

	j.scheduler.StartAsync()
	log().Info().Dur("interval", j.interval).Msg("cache janitor started")
	return nil
}

// Stop halts the scheduler. Safe to call when Start failed or was not called.
func (j *Janitor) Stop() {
	if j.scheduler.IsRunning() {
		j.scheduler.Stop()
	}
}

func (j *Janitor) run() {
	if n := j.store.Purge(); n > 0 {
		log().Debug().Int("removed", n).Msg("cache purge")
	}
}
