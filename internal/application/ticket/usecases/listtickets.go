package usecases

import (
	"context"

	"deskflow/internal/application/ticket/dto"
	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ListTicketsQuery struct {
	State        string
	CompanyID    *uint
	DepartmentID *uint
	PriorityID   *uint
	RaisedBy     uint
	AssignedTo   uint
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := ticket.TicketFilter{
		CompanyID:    query.CompanyID,
		DepartmentID: query.DepartmentID,
		PriorityID:   query.PriorityID,
		Search:       query.Search,
		Page:         query.Page,
		PageSize:     query.PageSize,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
	}
	if query.State != "" {
		state, err := vo.NewWorkflowState(query.State)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.State = &state
	}
	if query.RaisedBy != 0 {
		filter.RaisedBy = &query.RaisedBy
	}
	if query.AssignedTo != 0 {
		filter.AssignedTo = &query.AssignedTo
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
