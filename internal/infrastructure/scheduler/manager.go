// Package scheduler hosts the recurring-work sweeps using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"mantis/internal/application/scheduler/usecases"
	"mantis/internal/shared/biztime"
	"mantis/internal/shared/logger"
)

// sweepTimeout bounds one full sweep over the asset table.
const sweepTimeout = 10 * time.Minute

// Manager owns the gocron scheduler and the daily maintenance and
// cleaning sweeps. Singleton mode keeps a slow sweep from overlapping
// with the next trigger.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewManager creates the scheduler anchored to the business timezone so
// cron expressions fire at business midnight, not server midnight.
func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSweepJobs registers the daily maintenance and cleaning sweeps
// on the given cron expression.
func (m *Manager) RegisterSweepJobs(
	sweepCron string,
	maintenanceSweep usecases.RunMaintenanceSweepExecutor,
	cleaningSweep usecases.RunCleaningSweepExecutor,
) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(sweepCron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
			defer cancel()
			m.runSweeps(ctx, maintenanceSweep, cleaningSweep)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("scheduler", "sweep"),
		gocron.WithName("asset-schedule-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered sweep jobs", "cron", sweepCron)
	return nil
}

func (m *Manager) runSweeps(
	ctx context.Context,
	maintenanceSweep usecases.RunMaintenanceSweepExecutor,
	cleaningSweep usecases.RunCleaningSweepExecutor,
) {
	m.logger.Debugw("asset schedule sweep started")

	startTime := biztime.NowUTC()

	result, err := maintenanceSweep.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("maintenance sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
	} else if result.Created > 0 || result.Skipped > 0 {
		m.logger.Infow("maintenance sweep processed",
			"scanned", result.Scanned,
			"created", result.Created,
			"skipped", result.Skipped,
			"duration", time.Since(startTime),
		)
	}

	result, err = cleaningSweep.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("cleaning sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
	} else if result.Created > 0 || result.Skipped > 0 {
		m.logger.Infow("cleaning sweep processed",
			"scanned", result.Scanned,
			"created", result.Created,
			"skipped", result.Skipped,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler. It waits for running jobs to
// complete before returning.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
