package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AnalysisDTO struct {
	ID                  uint       `json:"id"`
	TicketID            uint       `json:"ticket_id"`
	WorkerID            uint       `json:"worker_id"`
	MaterialRequired    string     `json:"material_required"`
	MaterialDescription string     `json:"material_description,omitempty"`
	UploadedImages      []string   `json:"uploaded_images"`
	AnalysisStatus      string     `json:"analysis_status"`
	ApprovedBy          *uint      `json:"approved_by,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func toAnalysisDTO(a *workanalysis.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:                  a.ID(),
		TicketID:            a.TicketID(),
		WorkerID:            a.WorkerID(),
		MaterialRequired:    a.MaterialRequired().String(),
		MaterialDescription: a.MaterialDescription(),
		UploadedImages:      a.UploadedImages(),
		AnalysisStatus:      a.AnalysisStatus(),
		ApprovedBy:          a.ApprovedBy(),
		ApprovedAt:          a.ApprovedAt(),
		CreatedAt:           a.CreatedAt(),
		UpdatedAt:           a.UpdatedAt(),
	}
}

type ListAnalysesQuery struct {
	TicketID     uint
	WorkerID     uint
	ApprovedOnly bool
}

type ListAnalysesUseCase struct {
	analysisRepo workanalysis.AnalysisRepository
	logger       logger.Interface
}

func NewListAnalysesUseCase(analysisRepo workanalysis.AnalysisRepository, logger logger.Interface) *ListAnalysesUseCase {
	return &ListAnalysesUseCase{
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

func (uc *ListAnalysesUseCase) Execute(ctx context.Context, query ListAnalysesQuery) ([]AnalysisDTO, error) {
	var (
		analyses []*workanalysis.Analysis
		err      error
	)

	switch {
	case query.TicketID != 0:
		analyses, err = uc.analysisRepo.ListByTicketID(ctx, query.TicketID)
	case query.WorkerID != 0:
		analyses, err = uc.analysisRepo.ListByWorkerID(ctx, query.WorkerID)
	case query.ApprovedOnly:
		analyses, err = uc.analysisRepo.ListApproved(ctx)
	default:
		analyses, err = uc.analysisRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list work analyses", "error", err)
		return nil, err
	}

	items := make([]AnalysisDTO, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, toAnalysisDTO(a))
	}
	return items, nil
}

type GetAnalysisUseCase struct {
	analysisRepo workanalysis.AnalysisRepository
	logger       logger.Interface
}

func NewGetAnalysisUseCase(analysisRepo workanalysis.AnalysisRepository, logger logger.Interface) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

func (uc *GetAnalysisUseCase) Execute(ctx context.Context, analysisID uint) (*AnalysisDTO, error) {
	if analysisID == 0 {
		return nil, errors.NewValidationError("analysis ID is required")
	}

	analysis, err := uc.analysisRepo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.NewNotFoundError("work analysis not found")
	}

	dto := toAnalysisDTO(analysis)
	return &dto, nil
}
