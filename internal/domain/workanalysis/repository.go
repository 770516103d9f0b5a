package workanalysis

import "context"

type AnalysisRepository interface {
	Save(ctx context.Context, analysis *Analysis) error
	Update(ctx context.Context, analysis *Analysis) error
	GetByID(ctx context.Context, analysisID uint) (*Analysis, error)
	GetLatestByTicketID(ctx context.Context, ticketID uint) (*Analysis, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Analysis, error)
	ListByWorkerID(ctx context.Context, workerID uint) ([]*Analysis, error)
	ListApproved(ctx context.Context) ([]*Analysis, error)
	List(ctx context.Context) ([]*Analysis, error)
}
