package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/approval"
	"deskflow/internal/shared/logger"
)

type ApprovalDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	ApproverID uint      `json:"approver_id"`
	Status     string    `json:"status"`
	AssignedTo []uint    `json:"assigned_to"`
	Remark     string    `json:"remark,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
}

func toApprovalDTO(a *approval.Approval) ApprovalDTO {
	return ApprovalDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		ApproverID: a.ApproverID(),
		Status:     a.Status().String(),
		AssignedTo: a.AssignedTo(),
		Remark:     a.Remark(),
		DecidedAt:  a.DecidedAt(),
	}
}

type ListApprovalsQuery struct {
	TicketID uint
	Page     int
	PageSize int
}

type ListApprovalsResult struct {
	Approvals []ApprovalDTO
	Total     int64
}

type ListApprovalsUseCase struct {
	approvalRepo approval.ApprovalRepository
	logger       logger.Interface
}

func NewListApprovalsUseCase(approvalRepo approval.ApprovalRepository, logger logger.Interface) *ListApprovalsUseCase {
	return &ListApprovalsUseCase{
		approvalRepo: approvalRepo,
		logger:       logger,
	}
}

func (uc *ListApprovalsUseCase) Execute(ctx context.Context, query ListApprovalsQuery) (*ListApprovalsResult, error) {
	if query.TicketID != 0 {
		approvals, err := uc.approvalRepo.ListByTicketID(ctx, query.TicketID)
		if err != nil {
			return nil, err
		}
		items := make([]ApprovalDTO, 0, len(approvals))
		for _, a := range approvals {
			items = append(items, toApprovalDTO(a))
		}
		return &ListApprovalsResult{Approvals: items, Total: int64(len(items))}, nil
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	approvals, total, err := uc.approvalRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list approvals", "error", err)
		return nil, err
	}

	items := make([]ApprovalDTO, 0, len(approvals))
	for _, a := range approvals {
		items = append(items, toApprovalDTO(a))
	}
	return &ListApprovalsResult{Approvals: items, Total: total}, nil
}
