package usecases

import (
	"context"
	"errors"

	"deskflow/internal/domain/approval"
	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/workanalysis"
)

var assertError = errors.New("smtp unreachable")

type mockApprovalRepository struct {
	SaveFunc                func(ctx context.Context, a *approval.Approval) error
	GetByIDFunc             func(ctx context.Context, id uint) (*approval.Approval, error)
	GetLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*approval.Approval, error)
	ListByTicketIDFunc      func(ctx context.Context, ticketID uint) ([]*approval.Approval, error)
	ListFunc                func(ctx context.Context, page, pageSize int) ([]*approval.Approval, int64, error)
}

func (m *mockApprovalRepository) Save(ctx context.Context, a *approval.Approval) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockApprovalRepository) GetByID(ctx context.Context, id uint) (*approval.Approval, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockApprovalRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*approval.Approval, error) {
	if m.GetLatestByTicketIDFunc != nil {
		return m.GetLatestByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockApprovalRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*approval.Approval, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockApprovalRepository) List(ctx context.Context, page, pageSize int) ([]*approval.Approval, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
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
	GetLatestByTicketIDFunc func(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error)
	UpdateFunc              func(ctx context.Context, a *workanalysis.Analysis) error
}

func (m *mockAnalysisRepository) Save(ctx context.Context, a *workanalysis.Analysis) error {
	return nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, a *workanalysis.Analysis) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
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

type mockAssignmentNotifier struct {
	NotifyAssignmentFunc func(ctx context.Context, t *ticket.Ticket, workerIDs []uint) error
}

func (m *mockAssignmentNotifier) NotifyAssignment(ctx context.Context, t *ticket.Ticket, workerIDs []uint) error {
	if m.NotifyAssignmentFunc != nil {
		return m.NotifyAssignmentFunc(ctx, t, workerIDs)
	}
	return nil
}
