package usecases

import (
	"context"
	goerrors "errors"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID     uint
	UserID       uint
	Title        *string
	Description  *string
	Location     *string
	DepartmentID *uint
	PriorityID   *uint
	// StatusName is the display name picked from the status directory.
	StatusName *string
}

type UpdateTicketResult struct {
	TicketID uint
	Status   string
	State    string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	resolver   StatusResolver
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		resolver:   resolver,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// The close permission check happens before any field is touched, so a
	// rejected update leaves the ticket exactly as it was.
	if cmd.StatusName != nil {
		if target, ok := vo.StateFromLabel(*cmd.StatusName); ok && target.IsClosed() && !t.CanBeClosedBy(cmd.UserID) {
			return nil, errors.NewForbiddenError(ticket.ErrNotRaiser.Error())
		}
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.Location, cmd.DepartmentID, cmd.PriorityID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.StatusName != nil {
		if err := uc.applyStatusChange(ctx, t, *cmd.StatusName, cmd.UserID); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &UpdateTicketResult{
		TicketID: t.ID(),
		Status:   t.StatusLabel(),
		State:    t.State().String(),
	}, nil
}

func (uc *UpdateTicketUseCase) applyStatusChange(ctx context.Context, t *ticket.Ticket, statusName string, userID uint) error {
	res, err := uc.resolver.Resolve(ctx, statusName, t.CompanyID())
	if err != nil {
		return err
	}

	label := statusName
	var statusID *uint
	if res.Resolved {
		label = res.Name
		statusID = &res.StatusID
	}

	target, ok := vo.StateFromLabel(label)
	if !ok {
		// Unknown label, no workflow meaning: carry it without moving
		// the state machine.
		t.SetStatusRef(statusID, label)
		return nil
	}

	if target.IsClosed() {
		if err := t.Close(userID, statusID, label); err != nil {
			if goerrors.Is(err, ticket.ErrNotRaiser) {
				return errors.NewForbiddenError(err.Error())
			}
			return errors.NewValidationError(err.Error())
		}
		return nil
	}

	if err := t.TransitionTo(target, statusID, label); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
