package usecases

import (
	"context"

	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/timer"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/domain/worklog"
)

type mockEntryRepository struct {
	SaveFunc             func(ctx context.Context, e *worklog.Entry) error
	GetByIDFunc          func(ctx context.Context, entryID uint) (*worklog.Entry, error)
	ListByAnalysisIDFunc func(ctx context.Context, analysisID uint) ([]*worklog.Entry, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*worklog.Entry, error)
	ListByWorkerIDFunc   func(ctx context.Context, workerID uint) ([]*worklog.Entry, error)
	ListFunc             func(ctx context.Context) ([]*worklog.Entry, error)
}

func (m *mockEntryRepository) Save(ctx context.Context, e *worklog.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, entryID uint) (*worklog.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, entryID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListByAnalysisID(ctx context.Context, analysisID uint) ([]*worklog.Entry, error) {
	if m.ListByAnalysisIDFunc != nil {
		return m.ListByAnalysisIDFunc(ctx, analysisID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*worklog.Entry, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListByWorkerID(ctx context.Context, workerID uint) ([]*worklog.Entry, error) {
	if m.ListByWorkerIDFunc != nil {
		return m.ListByWorkerIDFunc(ctx, workerID)
	}
	return nil, nil
}

func (m *mockEntryRepository) List(ctx context.Context) ([]*worklog.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) GetRaisedTickets(ctx context.Context, userID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) GetAssignedTickets(ctx context.Context, workerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

type mockAnalysisRepository struct {
	GetByIDFunc func(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error)
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *workanalysis.Analysis) error {
	return nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, a *workanalysis.Analysis) error {
	return nil
}

func (m *mockAnalysisRepository) GetByID(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, analysisID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*workanalysis.Analysis, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) ListByWorkerID(ctx context.Context, workerID uint) ([]*workanalysis.Analysis, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) ListApproved(ctx context.Context) ([]*workanalysis.Analysis, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) List(ctx context.Context) ([]*workanalysis.Analysis, error) {
	return nil, nil
}

type mockStatusResolver struct {
	ResolveFunc func(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error)
}

func (m *mockStatusResolver) Resolve(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, desiredName, companyID)
	}
	return status.Resolution{}, nil
}

type memorySnapshotter struct {
	saved map[uint]timer.State
}

func (m *memorySnapshotter) Save(ctx context.Context, states map[uint]timer.State) error {
	m.saved = states
	return nil
}

func (m *memorySnapshotter) Load(ctx context.Context) (map[uint]timer.State, error) {
	return m.saved, nil
}
