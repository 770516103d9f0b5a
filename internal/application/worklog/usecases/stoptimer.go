package usecases

import (
	"context"
	goerrors "errors"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/timer"
	"deskflow/internal/domain/worklog"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type StopTimerCommand struct {
	AnalysisID uint
}

type StopTimerResult struct {
	EntryID      uint
	Duration     string
	FromTime     string
	ToTime       string
	LogDate      string
	TicketStatus string
}

type StopTimerUseCase struct {
	store      *timer.Store
	entryRepo  worklog.EntryRepository
	ticketRepo ticket.TicketRepository
	resolver   StatusResolver
	logger     logger.Interface
}

func NewStopTimerUseCase(
	store *timer.Store,
	entryRepo worklog.EntryRepository,
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *StopTimerUseCase {
	return &StopTimerUseCase{
		store:      store,
		entryRepo:  entryRepo,
		ticketRepo: ticketRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

// Execute runs the stop sequence in strict order: stop the timer, persist
// the log entry, move the ticket into working in progress, then clear the
// timer state. Each step runs at most once and nothing is compensated; a
// failure part-way leaves the earlier steps done and returns the error.
func (uc *StopTimerUseCase) Execute(ctx context.Context, cmd StopTimerCommand) (*StopTimerResult, error) {
	uc.logger.Infow("executing stop timer use case", "analysis_id", cmd.AnalysisID)

	if cmd.AnalysisID == 0 {
		return nil, errors.NewValidationError("analysis ID is required")
	}

	state, err := uc.store.Stop(ctx, cmd.AnalysisID)
	if err != nil {
		if goerrors.Is(err, timer.ErrTimerNotRunning) {
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, err
	}

	entry, err := worklog.NewEntryFromInstants(
		state.TicketID,
		state.AnalysisID,
		state.WorkerID,
		state.WorkerName,
		state.StartTime,
		*state.EndTime,
	)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.entryRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save work log entry", "analysis_id", cmd.AnalysisID, "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, state.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.State().IsWorkingInProgress() {
		if err := uc.moveToInProgress(ctx, t); err != nil {
			return nil, err
		}
	}

	if err := uc.store.Clear(ctx, cmd.AnalysisID); err != nil {
		uc.logger.Errorw("failed to clear timer state", "analysis_id", cmd.AnalysisID, "error", err)
		return nil, err
	}

	uc.logger.Infow("work log recorded",
		"entry_id", entry.ID(), "analysis_id", cmd.AnalysisID, "duration", entry.Duration())

	return &StopTimerResult{
		EntryID:      entry.ID(),
		Duration:     entry.Duration(),
		FromTime:     entry.FromTime(),
		ToTime:       entry.ToTime(),
		LogDate:      entry.LogDate(),
		TicketStatus: t.StatusLabel(),
	}, nil
}

func (uc *StopTimerUseCase) moveToInProgress(ctx context.Context, t *ticket.Ticket) error {
	res, err := uc.resolver.Resolve(ctx, vo.StateWorkingInProgress.DisplayName(), t.CompanyID())
	if err != nil {
		uc.logger.Warnw("status directory lookup failed, keeping free-text label", "error", err)
		res.Resolved = false
	}

	label := vo.StateWorkingInProgress.DisplayName()
	var statusID *uint
	if res.Resolved {
		label = res.Name
		statusID = &res.StatusID
	}

	if err := t.TransitionTo(vo.StateWorkingInProgress, statusID, label); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket transition", "ticket_id", t.ID(), "error", err)
		return err
	}
	return nil
}
