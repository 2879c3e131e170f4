package usecases

import "context"

type RunMaintenanceSweepExecutor interface {
	Execute(ctx context.Context) (*SweepResult, error)
}

type RunCleaningSweepExecutor interface {
	Execute(ctx context.Context) (*SweepResult, error)
}
