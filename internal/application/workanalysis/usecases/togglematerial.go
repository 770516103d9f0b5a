package usecases

import (
	"context"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ToggleMaterialCommand struct {
	AnalysisID          uint
	MaterialRequired    string
	MaterialDescription string
}

type ToggleMaterialResult struct {
	AnalysisID       uint
	MaterialRequired string
	TicketStatus     string
}

type ToggleMaterialUseCase struct {
	analysisRepo workanalysis.AnalysisRepository
	ticketRepo   ticket.TicketRepository
	resolver     StatusResolver
	logger       logger.Interface
}

func NewToggleMaterialUseCase(
	analysisRepo workanalysis.AnalysisRepository,
	ticketRepo ticket.TicketRepository,
	resolver StatusResolver,
	logger logger.Interface,
) *ToggleMaterialUseCase {
	return &ToggleMaterialUseCase{
		analysisRepo: analysisRepo,
		ticketRepo:   ticketRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

// Execute flips the material flag on an existing analysis and moves the
// ticket between the material request and material approved states. The
// toggle may repeat any number of times before work starts.
func (uc *ToggleMaterialUseCase) Execute(ctx context.Context, cmd ToggleMaterialCommand) (*ToggleMaterialResult, error) {
	uc.logger.Infow("executing toggle material use case",
		"analysis_id", cmd.AnalysisID, "material_required", cmd.MaterialRequired)

	required, err := workanalysis.NewMaterialRequired(cmd.MaterialRequired)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	analysis, err := uc.analysisRepo.GetByID(ctx, cmd.AnalysisID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.NewNotFoundError("work analysis not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, analysis.TicketID())
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := analysis.SetMaterialRequired(required, cmd.MaterialDescription); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.analysisRepo.Update(ctx, analysis); err != nil {
		uc.logger.Errorw("failed to update work analysis", "analysis_id", cmd.AnalysisID, "error", err)
		return nil, err
	}

	target := vo.StateMaterialApproved
	if required.IsYes() {
		target = vo.StateMaterialRequest
	}

	if t.State() != target {
		if err := transitionTicket(ctx, uc.ticketRepo, uc.resolver, uc.logger, t, target); err != nil {
			return nil, err
		}
	}

	return &ToggleMaterialResult{
		AnalysisID:       analysis.ID(),
		MaterialRequired: analysis.MaterialRequired().String(),
		TicketStatus:     t.StatusLabel(),
	}, nil
}
