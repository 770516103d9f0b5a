package usecases

import (
	"context"
	goerrors "errors"
	"time"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	ClosedBy uint
}

type CloseTicketResult struct {
	TicketID uint
	Status   string
	ClosedAt *time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	resolver   StatusResolver
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "closed_by", cmd.ClosedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ClosedBy == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	res, err := uc.resolver.Resolve(ctx, vo.StateClosed.DisplayName(), t.CompanyID())
	if err != nil {
		uc.logger.Warnw("status directory lookup failed, keeping free-text label", "error", err)
		res.Resolved = false
	}

	label := vo.StateClosed.DisplayName()
	var statusID *uint
	if res.Resolved {
		label = res.Name
		statusID = &res.StatusID
	}

	if err := t.Close(cmd.ClosedBy, statusID, label); err != nil {
		if goerrors.Is(err, ticket.ErrNotRaiser) {
			uc.logger.Warnw("close rejected, requester did not raise the ticket",
				"ticket_id", cmd.TicketID, "user_id", cmd.ClosedBy, "raised_by", t.RaisedBy())
			return nil, errors.NewForbiddenError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist closed ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "closed_by", cmd.ClosedBy)

	return &CloseTicketResult{
		TicketID: t.ID(),
		Status:   t.StatusLabel(),
		ClosedAt: t.ClosedAt(),
	}, nil
}
