package approval

import "context"

type ApprovalRepository interface {
	Save(ctx context.Context, approval *Approval) error
	GetByID(ctx context.Context, id uint) (*Approval, error)
	GetLatestByTicketID(ctx context.Context, ticketID uint) (*Approval, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Approval, error)
	List(ctx context.Context, page, pageSize int) ([]*Approval, int64, error)
}
