package usecases

import (
	"context"
	goerrors "errors"
	"time"

	"deskflow/internal/domain/status"
	"deskflow/internal/domain/timer"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

// StatusResolver maps a desired status name to a directory entry.
type StatusResolver interface {
	Resolve(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error)
}

type StartTimerCommand struct {
	AnalysisID uint
	WorkerID   uint
	WorkerName string
}

type StartTimerResult struct {
	AnalysisID uint
	StartTime  time.Time
	Duration   string
}

type StartTimerUseCase struct {
	store        *timer.Store
	analysisRepo workanalysis.AnalysisRepository
	logger       logger.Interface
}

func NewStartTimerUseCase(
	store *timer.Store,
	analysisRepo workanalysis.AnalysisRepository,
	logger logger.Interface,
) *StartTimerUseCase {
	return &StartTimerUseCase{
		store:        store,
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

// Execute starts a timer for the analysis. Starting never touches the
// ticket: the working-in-progress transition happens on stop, when the log
// entry is recorded.
func (uc *StartTimerUseCase) Execute(ctx context.Context, cmd StartTimerCommand) (*StartTimerResult, error) {
	uc.logger.Infow("executing start timer use case", "analysis_id", cmd.AnalysisID, "worker_id", cmd.WorkerID)

	if cmd.AnalysisID == 0 {
		return nil, errors.NewValidationError("analysis ID is required")
	}
	if cmd.WorkerID == 0 {
		return nil, errors.NewValidationError("worker ID is required")
	}

	analysis, err := uc.analysisRepo.GetByID(ctx, cmd.AnalysisID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.NewNotFoundError("work analysis not found")
	}

	state, err := uc.store.Start(ctx, cmd.AnalysisID, analysis.TicketID(), cmd.WorkerID, cmd.WorkerName)
	if err != nil {
		if goerrors.Is(err, timer.ErrTimerRunning) {
			return nil, errors.NewConflictError(err.Error())
		}
		uc.logger.Errorw("failed to start timer", "analysis_id", cmd.AnalysisID, "error", err)
		return nil, err
	}

	return &StartTimerResult{
		AnalysisID: state.AnalysisID,
		StartTime:  state.StartTime,
		Duration:   state.Duration,
	}, nil
}
