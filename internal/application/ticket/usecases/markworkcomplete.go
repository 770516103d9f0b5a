package usecases

import (
	"context"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type MarkWorkCompleteCommand struct {
	TicketID uint
	WorkerID uint
}

type MarkWorkCompleteResult struct {
	TicketID uint
	Status   string
}

type MarkWorkCompleteUseCase struct {
	ticketRepo   ticket.TicketRepository
	analysisRepo workanalysis.AnalysisRepository
	resolver     StatusResolver
	logger       logger.Interface
}

func NewMarkWorkCompleteUseCase(
	ticketRepo ticket.TicketRepository,
	analysisRepo workanalysis.AnalysisRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *MarkWorkCompleteUseCase {
	return &MarkWorkCompleteUseCase{
		ticketRepo:   ticketRepo,
		analysisRepo: analysisRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

func (uc *MarkWorkCompleteUseCase) Execute(ctx context.Context, cmd MarkWorkCompleteCommand) (*MarkWorkCompleteResult, error) {
	uc.logger.Infow("executing mark work complete use case", "ticket_id", cmd.TicketID, "worker_id", cmd.WorkerID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.WorkerID == 0 {
		return nil, errors.NewValidationError("worker ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Completion only makes sense once a worker has analysed the ticket.
	analysis, err := uc.analysisRepo.GetLatestByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.NewValidationError("ticket has no work analysis")
	}

	res, err := uc.resolver.Resolve(ctx, vo.StateWorkCompleted.DisplayName(), t.CompanyID())
	if err != nil {
		uc.logger.Warnw("status directory lookup failed, keeping free-text label", "error", err)
		res.Resolved = false
	}

	label := vo.StateWorkCompleted.DisplayName()
	var statusID *uint
	if res.Resolved {
		label = res.Name
		statusID = &res.StatusID
	}

	if err := t.TransitionTo(vo.StateWorkCompleted, statusID, label); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist completed ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &MarkWorkCompleteResult{
		TicketID: t.ID(),
		Status:   t.StatusLabel(),
	}, nil
}
