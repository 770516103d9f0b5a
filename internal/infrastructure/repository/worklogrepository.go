package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/worklog"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

type WorkLogRepository struct {
	db     *gorm.DB
	mapper mappers.WorkLogMapper
}

func NewWorkLogRepository(database *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{
		db:     database,
		mapper: mappers.NewWorkLogMapper(),
	}
}

func (r *WorkLogRepository) Save(ctx context.Context, e *worklog.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work log entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *WorkLogRepository) GetByID(ctx context.Context, entryID uint) (*worklog.Entry, error) {
	var model models.WorkLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find work log entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkLogRepository) ListByAnalysisID(ctx context.Context, analysisID uint) ([]*worklog.Entry, error) {
	return r.list(ctx, "analysis_id = ?", analysisID)
}

func (r *WorkLogRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*worklog.Entry, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *WorkLogRepository) ListByWorkerID(ctx context.Context, workerID uint) ([]*worklog.Entry, error) {
	return r.list(ctx, "worker_id = ?", workerID)
}

func (r *WorkLogRepository) List(ctx context.Context) ([]*worklog.Entry, error) {
	return r.list(ctx, "1 = 1")
}

func (r *WorkLogRepository) list(ctx context.Context, query string, args ...any) ([]*worklog.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.WorkLogModel
	if err := tx.Where(query, args...).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list work log entries: %w", err)
	}

	entries := make([]*worklog.Entry, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
