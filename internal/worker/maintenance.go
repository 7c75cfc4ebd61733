package worker

import (
	"context"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"

	"go.uber.org/zap"
)

// Maintenance runs periodic housekeeping: purging expired sessions and
// re-deriving the denormalized restaurant rating rollups.
type Maintenance struct {
	repo     *repository.Repository
	interval time.Duration
	log      *zap.Logger
}

func NewMaintenance(repo *repository.Repository, interval time.Duration, log *zap.Logger) *Maintenance {
	return &Maintenance{
		repo:     repo,
		interval: interval,
		log:      log.With(zap.String("worker", "maintenance")),
	}
}

// Run blocks until ctx is cancelled. One sweep runs immediately, then one
// per interval.
func (m *Maintenance) Run(ctx context.Context) {
	m.log.Info("Maintenance worker started", zap.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Maintenance worker stopped")
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Maintenance) sweep(ctx context.Context) {
	started := time.Now()

	sessions, err := m.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		m.log.Error("Failed to clean expired sessions", zap.Error(err))
	}

	ratings, err := m.repo.Restaurant.RefreshAllRatings(ctx)
	if err != nil {
		m.log.Error("Failed to refresh restaurant ratings", zap.Error(err))
	}

	m.log.Info("Maintenance sweep finished",
		zap.Int64("sessions_removed", sessions),
		zap.Int64("ratings_refreshed", ratings),
		zap.Duration("took", time.Since(started)),
	)
}
