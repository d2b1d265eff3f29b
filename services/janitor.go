package services

import (
	"time"

	"github.com/go-co-op/gocron"

	"rag-analyzer/internal/logger"
)

// Janitor periodically sweeps the upload staging directory so files
// leaked by a crashed process do not accumulate.
type Janitor struct {
	scheduler *gocron.Scheduler
	uploads   *UploadStore
	interval  time.Duration
	ttl       time.Duration
}

func NewJanitor(uploads *UploadStore, interval, ttl time.Duration) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		uploads:   uploads,
		interval:  interval,
		ttl:       ttl,
	}
}

// Start schedules the sweep and runs the scheduler in the background.
func (j *Janitor) Start() error {
	_, err := j.scheduler.Every(j.interval).Tag("upload-sweep").Do(func() {
		removed, err := j.uploads.Sweep(j.ttl)
		if err != nil {
			logger.Warn("Upload sweep failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("Swept stale uploads", "removed", removed)
		}
	})
	if err != nil {
		return err
	}
	j.scheduler.StartAsync()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	j.scheduler.Stop()
}
