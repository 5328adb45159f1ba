package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/logger"
	"jobboard/internal/repositories"
)

// DeadlineWorker periodically deactivates jobs whose application deadline
// has passed, so expired postings drop out of the public listing without
// waiting for a request to touch them.
type DeadlineWorker struct {
	db       *gorm.DB
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewDeadlineWorker(db *gorm.DB, jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *DeadlineWorker {
	return &DeadlineWorker{
		db:       db,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		interval: time.Hour,
	}
}

// Run blocks until ctx is cancelled, sweeping once immediately and then on
// every tick.
func (w *DeadlineWorker) Run(ctx context.Context) {
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Deadline worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *DeadlineWorker) sweep() {
	count, err := w.jobRepo.DeactivateExpired(w.db, time.Now())
	if err != nil {
		logger.Error("Deadline sweep failed", "error", err)
		return
	}
	if count > 0 {
		logger.Info("Deactivated expired jobs", "count", count)
	}

	// Expired refresh tokens ride along on the same schedule.
	if err := w.userRepo.CleanExpiredRefreshTokens(w.db); err != nil {
		logger.Error("Refresh token cleanup failed", "error", err)
	}
}
