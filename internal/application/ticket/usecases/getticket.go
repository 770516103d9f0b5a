package usecases

import (
	"context"

	"deskflow/internal/application/ticket/dto"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Number   string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	var (
		t   *ticket.Ticket
		err error
	)

	switch {
	case query.TicketID != 0:
		t, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	case query.Number != "":
		t, err = uc.ticketRepo.GetByNumber(ctx, query.Number)
	default:
		return nil, errors.NewValidationError("ticket ID or number is required")
	}

	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return dto.ToTicketDTO(t), nil
}
