package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/approval"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

type ApprovalRepository struct {
	db     *gorm.DB
	mapper mappers.ApprovalMapper
}

func NewApprovalRepository(database *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{
		db:     database,
		mapper: mappers.NewApprovalMapper(),
	}
}

func (r *ApprovalRepository) Save(ctx context.Context, a *approval.Approval) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save approval: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *ApprovalRepository) GetByID(ctx context.Context, id uint) (*approval.Approval, error) {
	var model models.ApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approval: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ApprovalRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*approval.Approval, error) {
	var model models.ApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("ticket_id = ?", ticketID).Order("created_at DESC").First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest approval: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ApprovalRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*approval.Approval, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ApprovalModel
	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *ApprovalRepository) List(ctx context.Context, page, pageSize int) ([]*approval.Approval, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ApprovalModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count approvals: %w", err)
	}

	var rows []models.ApprovalModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list approvals: %w", err)
	}

	approvals, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return approvals, total, nil
}

func (r *ApprovalRepository) toDomainList(rows []models.ApprovalModel) ([]*approval.Approval, error) {
	approvals := make([]*approval.Approval, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, nil
}
