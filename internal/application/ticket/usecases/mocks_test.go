package usecases

import (
	"context"

	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/workanalysis"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc             func(ctx context.Context, ticketID uint) error
	GetByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc        func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetRaisedTicketsFunc   func(ctx context.Context, userID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetAssignedTicketsFunc func(ctx context.Context, workerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetRaisedTickets(ctx context.Context, userID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetRaisedTicketsFunc != nil {
		return m.GetRaisedTicketsFunc(ctx, userID, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetAssignedTickets(ctx context.Context, workerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetAssignedTicketsFunc != nil {
		return m.GetAssignedTicketsFunc(ctx, workerID, filters)
	}
	return nil, 0, nil
}

type mockAnalysisRepository struct {
	GetLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error)
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *workanalysis.Analysis) error {
	return nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, a *workanalysis.Analysis) error {
	return nil
}

func (m *mockAnalysisRepository) GetByID(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error) {
	return nil, nil
}

func (m *mockAnalysisRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error) {
	if m.GetLatestByTicketIDFunc != nil {
		return m.GetLatestByTicketIDFunc(ctx, ticketID)
	}
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

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TKT-20250310-0001", nil
}
