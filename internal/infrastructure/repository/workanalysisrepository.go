package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

type WorkAnalysisRepository struct {
	db     *gorm.DB
	mapper mappers.WorkAnalysisMapper
}

func NewWorkAnalysisRepository(database *gorm.DB) *WorkAnalysisRepository {
	return &WorkAnalysisRepository{
		db:     database,
		mapper: mappers.NewWorkAnalysisMapper(),
	}
}

func (r *WorkAnalysisRepository) Save(ctx context.Context, a *workanalysis.Analysis) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work analysis: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *WorkAnalysisRepository) Update(ctx context.Context, a *workanalysis.Analysis) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkAnalysisModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update work analysis: %w", result.Error)
	}
	return nil
}

func (r *WorkAnalysisRepository) GetByID(ctx context.Context, analysisID uint) (*workanalysis.Analysis, error) {
	var model models.WorkAnalysisModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, analysisID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find work analysis: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkAnalysisRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*workanalysis.Analysis, error) {
	var model models.WorkAnalysisModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find work analysis: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkAnalysisRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*workanalysis.Analysis, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *WorkAnalysisRepository) ListByWorkerID(ctx context.Context, workerID uint) ([]*workanalysis.Analysis, error) {
	return r.list(ctx, "worker_id = ?", workerID)
}

func (r *WorkAnalysisRepository) ListApproved(ctx context.Context) ([]*workanalysis.Analysis, error) {
	return r.list(ctx, "analysis_status = ?", "Approved")
}

func (r *WorkAnalysisRepository) List(ctx context.Context) ([]*workanalysis.Analysis, error) {
	return r.list(ctx, "")
}

func (r *WorkAnalysisRepository) list(ctx context.Context, query string, args ...any) ([]*workanalysis.Analysis, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	if query != "" {
		tx = tx.Where(query, args...)
	}

	var rows []models.WorkAnalysisModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list work analyses: %w", err)
	}

	analyses := make([]*workanalysis.Analysis, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}
