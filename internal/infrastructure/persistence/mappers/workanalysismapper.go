package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/infrastructure/persistence/models"
)

type WorkAnalysisMapper interface {
	ToModel(a *workanalysis.Analysis) *models.WorkAnalysisModel
	ToDomain(model *models.WorkAnalysisModel) (*workanalysis.Analysis, error)
}

type WorkAnalysisMapperImpl struct{}

func NewWorkAnalysisMapper() WorkAnalysisMapper {
	return &WorkAnalysisMapperImpl{}
}

func (m *WorkAnalysisMapperImpl) ToModel(a *workanalysis.Analysis) *models.WorkAnalysisModel {
	model := &models.WorkAnalysisModel{
		ID:                  a.ID(),
		TicketID:            a.TicketID(),
		WorkerID:            a.WorkerID(),
		MaterialRequired:    a.MaterialRequired().String(),
		MaterialDescription: a.MaterialDescription(),
		AnalysisStatus:      a.AnalysisStatus(),
		ApprovedBy:          a.ApprovedBy(),
		CreatedAt:           a.CreatedAt().UnixMilli(),
		UpdatedAt:           a.UpdatedAt().UnixMilli(),
	}

	images, _ := json.Marshal(a.UploadedImages())
	model.UploadedImages = images

	if a.ApprovedAt() != nil {
		approved := a.ApprovedAt().UnixMilli()
		model.ApprovedAt = &approved
	}

	return model
}

func (m *WorkAnalysisMapperImpl) ToDomain(model *models.WorkAnalysisModel) (*workanalysis.Analysis, error) {
	images := []string{}
	if len(model.UploadedImages) > 0 {
		if err := json.Unmarshal(model.UploadedImages, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal uploaded images (id=%d): %w", model.ID, err)
		}
	}

	var approvedAt *time.Time
	if model.ApprovedAt != nil {
		v := time.UnixMilli(*model.ApprovedAt)
		approvedAt = &v
	}

	return workanalysis.ReconstructAnalysis(
		model.ID,
		model.TicketID,
		model.WorkerID,
		workanalysis.MaterialRequired(model.MaterialRequired),
		model.MaterialDescription,
		images,
		model.AnalysisStatus,
		model.ApprovedBy,
		approvedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
