package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/status"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewStatusRepository(database *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     database,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, st *status.Status) error {
	model := r.mapper.ToModel(st)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return st.SetID(model.ID)
}

func (r *StatusRepository) Update(ctx context.Context, st *status.Status) error {
	model := r.mapper.ToModel(st)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"sort_order": model.SortOrder,
			"company_id": model.CompanyID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.StatusModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}
	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*status.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StatusRepository) ListAll(ctx context.Context) ([]*status.Status, error) {
	var rows []models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]*status.Status, 0, len(rows))
	for i := range rows {
		st, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
