package worklog

import "context"

type EntryRepository interface {
	Save(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, entryID uint) (*Entry, error)
	ListByAnalysisID(ctx context.Context, analysisID uint) ([]*Entry, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Entry, error)
	ListByWorkerID(ctx context.Context, workerID uint) ([]*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
}
