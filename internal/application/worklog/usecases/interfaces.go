package usecases

import "context"

type StartTimerExecutor interface {
	Execute(ctx context.Context, cmd StartTimerCommand) (*StartTimerResult, error)
}

type StopTimerExecutor interface {
	Execute(ctx context.Context, cmd StopTimerCommand) (*StopTimerResult, error)
}

type ListWorkLogsExecutor interface {
	Execute(ctx context.Context, query ListWorkLogsQuery) (*ListWorkLogsResult, error)
}
