package usecases

import (
	"context"

	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/workanalysis"
)

type mockAnalysisRepository struct {
	SaveFunc                func(ctx context.Context, a *workanalysis.Analysis) error
	UpdateFunc              func(ctx context.Context, a *workanalysis.Analysis) error
	GetByIDFunc             func(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error)
	GetLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error)
	ListByTicketIDFunc      func(ctx context.Context, ticketID uint) ([]*workanalysis.Analysis, error)
	ListByWorkerIDFunc      func(ctx context.Context, workerID uint) ([]*workanalysis.Analysis, error)
	ListApprovedFunc        func(ctx context.Context) ([]*workanalysis.Analysis, error)
	ListFunc                func(ctx context.Context) ([]*workanalysis.Analysis, error)
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *workanalysis.Analysis) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, a *workanalysis.Analysis) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAnalysisRepository) GetByID(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, analysisID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error) {
	if m.GetLatestByTicketIDFunc != nil {
		return m.GetLatestByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*workanalysis.Analysis, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) ListByWorkerID(ctx context.Context, workerID uint) ([]*workanalysis.Analysis, error) {
	if m.ListByWorkerIDFunc != nil {
		return m.ListByWorkerIDFunc(ctx, workerID)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) ListApproved(ctx context.Context) ([]*workanalysis.Analysis, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx)
	}
	return nil, nil
}

func (m *mockAnalysisRepository) List(ctx context.Context) ([]*workanalysis.Analysis, error) {
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

type mockStatusResolver struct {
	ResolveFunc func(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error)
}

func (m *mockStatusResolver) Resolve(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, desiredName, companyID)
	}
	return status.Resolution{}, nil
}
