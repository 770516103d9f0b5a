package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"deskflow/internal/domain/approval"
	"deskflow/internal/infrastructure/persistence/models"
)

type ApprovalMapper interface {
	ToModel(a *approval.Approval) *models.ApprovalModel
	ToDomain(model *models.ApprovalModel) (*approval.Approval, error)
}

type ApprovalMapperImpl struct{}

func NewApprovalMapper() ApprovalMapper {
	return &ApprovalMapperImpl{}
}

func (m *ApprovalMapperImpl) ToModel(a *approval.Approval) *models.ApprovalModel {
	model := &models.ApprovalModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		ApproverID: a.ApproverID(),
		Status:     a.Status().String(),
		Remark:     a.Remark(),
		DecidedAt:  a.DecidedAt().UnixMilli(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}

	assigned, _ := json.Marshal(a.AssignedTo())
	model.AssignedTo = assigned

	return model
}

func (m *ApprovalMapperImpl) ToDomain(model *models.ApprovalModel) (*approval.Approval, error) {
	assignedTo := []uint{}
	if len(model.AssignedTo) > 0 {
		if err := json.Unmarshal(model.AssignedTo, &assignedTo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assigned workers (id=%d): %w", model.ID, err)
		}
	}

	return approval.ReconstructApproval(
		model.ID,
		model.TicketID,
		model.ApproverID,
		approval.ApprovalStatus(model.Status),
		assignedTo,
		model.Remark,
		time.UnixMilli(model.DecidedAt),
		time.UnixMilli(model.CreatedAt),
	), nil
}
