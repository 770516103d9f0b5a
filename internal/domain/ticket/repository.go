package ticket

import (
	"context"

	vo "deskflow/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	GetRaisedTickets(ctx context.Context, userID uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetAssignedTickets(ctx context.Context, workerID uint, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	State        *vo.WorkflowState
	CompanyID    *uint
	DepartmentID *uint
	PriorityID   *uint
	RaisedBy     *uint
	AssignedTo   *uint
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}
