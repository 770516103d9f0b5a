package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/approval"
	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

// StatusResolver maps a desired status name to a directory entry.
type StatusResolver interface {
	Resolve(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error)
}

// AssignmentNotifier tells the assigned workers about new work. Delivery is
// best effort, after the decision is persisted.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, t *ticket.Ticket, workerIDs []uint) error
}

type CreateApprovalCommand struct {
	TicketID   uint
	ApproverID uint
	Status     string
	AssignedTo []uint
	Remark     string
}

type CreateApprovalResult struct {
	ApprovalID   uint
	Status       string
	TicketStatus string
	DecidedAt    time.Time
}

type CreateApprovalUseCase struct {
	approvalRepo approval.ApprovalRepository
	ticketRepo   ticket.TicketRepository
	analysisRepo workanalysis.AnalysisRepository
	resolver     StatusResolver
	notifier     AssignmentNotifier
	logger       logger.Interface
}

func NewCreateApprovalUseCase(
	approvalRepo approval.ApprovalRepository,
	ticketRepo ticket.TicketRepository,
	analysisRepo workanalysis.AnalysisRepository,
	resolver StatusResolver,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *CreateApprovalUseCase {
	return &CreateApprovalUseCase{
		approvalRepo: approvalRepo,
		ticketRepo:   ticketRepo,
		analysisRepo: analysisRepo,
		resolver:     resolver,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute records the decision and, when approved, assigns the workers and
// moves the ticket to material approved. A rejection keeps the ticket in
// material request so the worker can revise the analysis.
func (uc *CreateApprovalUseCase) Execute(ctx context.Context, cmd CreateApprovalCommand) (*CreateApprovalResult, error) {
	uc.logger.Infow("executing create approval use case",
		"ticket_id", cmd.TicketID, "approver_id", cmd.ApproverID, "status", cmd.Status)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	decision, err := approval.NewApproval(cmd.TicketID, cmd.ApproverID, approval.ApprovalStatus(cmd.Status), cmd.AssignedTo, cmd.Remark)
	if err != nil {
		return nil, err
	}

	if err := uc.approvalRepo.Save(ctx, decision); err != nil {
		uc.logger.Errorw("failed to save approval", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := t.ApplyApproval(cmd.ApproverID, decision.Status().String(), decision.AssignedTo(), decision.DecidedAt()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if decision.IsApproved() {
		if err := uc.approveTicket(ctx, t); err != nil {
			return nil, err
		}
		if err := uc.markAnalysisApproved(ctx, cmd.TicketID, cmd.ApproverID); err != nil {
			uc.logger.Warnw("failed to mark analysis approved", "ticket_id", cmd.TicketID, "error", err)
		}
	} else if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist approval fields", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if decision.IsApproved() && uc.notifier != nil {
		if err := uc.notifier.NotifyAssignment(ctx, t, decision.AssignedTo()); err != nil {
			uc.logger.Warnw("assignment notification failed", "ticket_id", cmd.TicketID, "error", err)
		}
	}

	return &CreateApprovalResult{
		ApprovalID:   decision.ID(),
		Status:       decision.Status().String(),
		TicketStatus: t.StatusLabel(),
		DecidedAt:    decision.DecidedAt(),
	}, nil
}

func (uc *CreateApprovalUseCase) approveTicket(ctx context.Context, t *ticket.Ticket) error {
	target := vo.StateMaterialApproved

	res, err := uc.resolver.Resolve(ctx, target.DisplayName(), t.CompanyID())
	if err != nil {
		uc.logger.Warnw("status directory lookup failed, keeping free-text label", "error", err)
		res.Resolved = false
	}

	label := target.DisplayName()
	var statusID *uint
	if res.Resolved {
		label = res.Name
		statusID = &res.StatusID
	}

	if err := t.TransitionTo(target, statusID, label); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist approved ticket", "ticket_id", t.ID(), "error", err)
		return err
	}
	return nil
}

func (uc *CreateApprovalUseCase) markAnalysisApproved(ctx context.Context, ticketID, approverID uint) error {
	analysis, err := uc.analysisRepo.GetLatestByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}
	if analysis == nil {
		return nil
	}

	if err := analysis.MarkApproved(approverID); err != nil {
		return err
	}
	return uc.analysisRepo.Update(ctx, analysis)
}
