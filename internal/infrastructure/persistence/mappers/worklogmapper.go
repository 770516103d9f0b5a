package mappers

import (
	"time"

	"deskflow/internal/domain/worklog"
	"deskflow/internal/infrastructure/persistence/models"
)

type WorkLogMapper interface {
	ToModel(e *worklog.Entry) *models.WorkLogModel
	ToDomain(model *models.WorkLogModel) (*worklog.Entry, error)
}

type WorkLogMapperImpl struct{}

func NewWorkLogMapper() WorkLogMapper {
	return &WorkLogMapperImpl{}
}

func (m *WorkLogMapperImpl) ToModel(e *worklog.Entry) *models.WorkLogModel {
	return &models.WorkLogModel{
		ID:         e.ID(),
		TicketID:   e.TicketID(),
		AnalysisID: e.AnalysisID(),
		WorkerID:   e.WorkerID(),
		WorkerName: e.WorkerName(),
		FromTime:   e.FromTime(),
		ToTime:     e.ToTime(),
		Duration:   e.Duration(),
		LogDate:    e.LogDate(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}
}

func (m *WorkLogMapperImpl) ToDomain(model *models.WorkLogModel) (*worklog.Entry, error) {
	return worklog.ReconstructEntry(
		model.ID,
		model.TicketID,
		model.AnalysisID,
		model.WorkerID,
		model.WorkerName,
		model.FromTime,
		model.ToTime,
		model.Duration,
		model.LogDate,
		time.UnixMilli(model.CreatedAt),
	)
}
