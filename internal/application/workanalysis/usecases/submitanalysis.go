package usecases

import (
	"context"
	"time"

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

type SubmitAnalysisCommand struct {
	TicketID            uint
	WorkerID            uint
	MaterialRequired    string
	MaterialDescription string
	UploadedImages      []string
}

type SubmitAnalysisResult struct {
	AnalysisID   uint
	TicketStatus string
	CreatedAt    time.Time
}

type SubmitAnalysisUseCase struct {
	analysisRepo workanalysis.AnalysisRepository
	ticketRepo   ticket.TicketRepository
	resolver     StatusResolver
	logger       logger.Interface
}

func NewSubmitAnalysisUseCase(
	analysisRepo workanalysis.AnalysisRepository,
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *SubmitAnalysisUseCase {
	return &SubmitAnalysisUseCase{
		analysisRepo: analysisRepo,
		ticketRepo:   ticketRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

// Execute stores the analysis, then moves the ticket into the material
// branch. The two writes are sequential without compensation: a ticket
// update failure leaves the analysis saved, and resubmitting is the
// recovery path.
func (uc *SubmitAnalysisUseCase) Execute(ctx context.Context, cmd SubmitAnalysisCommand) (*SubmitAnalysisResult, error) {
	uc.logger.Infow("executing submit analysis use case",
		"ticket_id", cmd.TicketID, "worker_id", cmd.WorkerID, "material_required", cmd.MaterialRequired)

	required, err := workanalysis.NewMaterialRequired(cmd.MaterialRequired)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	analysis, err := workanalysis.NewAnalysis(
		cmd.TicketID,
		cmd.WorkerID,
		required,
		cmd.MaterialDescription,
		cmd.UploadedImages,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.analysisRepo.Save(ctx, analysis); err != nil {
		uc.logger.Errorw("failed to save work analysis", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	target := vo.StateMaterialApproved
	if required.IsYes() {
		target = vo.StateMaterialRequest
	}

	if err := transitionTicket(ctx, uc.ticketRepo, uc.resolver, uc.logger, t, target); err != nil {
		return nil, err
	}

	uc.logger.Infow("work analysis submitted",
		"analysis_id", analysis.ID(), "ticket_id", cmd.TicketID, "ticket_status", t.StatusLabel())

	return &SubmitAnalysisResult{
		AnalysisID:   analysis.ID(),
		TicketStatus: t.StatusLabel(),
		CreatedAt:    analysis.CreatedAt(),
	}, nil
}

// transitionTicket resolves the directory entry for the target state and
// persists the moved ticket. Shared by submit and toggle.
func transitionTicket(
	ctx context.Context,
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	log logger.Interface,
	t *ticket.Ticket,
	target vo.WorkflowState,
) error {
	res, err := resolver.Resolve(ctx, target.DisplayName(), t.CompanyID())
	if err != nil {
		log.Warnw("status directory lookup failed, keeping free-text label", "error", err)
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

	if err := ticketRepo.Update(ctx, t); err != nil {
		log.Errorw("failed to persist ticket transition",
			"ticket_id", t.ID(), "target", target.String(), "error", err)
		return err
	}
	return nil
}
