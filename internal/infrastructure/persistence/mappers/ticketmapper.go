package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		Number:         t.Number(),
		Title:          t.Title(),
		Description:    t.Description(),
		Location:       t.Location(),
		CompanyID:      t.CompanyID(),
		DepartmentID:   t.DepartmentID(),
		PriorityID:     t.PriorityID(),
		StatusID:       t.StatusID(),
		StatusLabel:    t.StatusLabel(),
		State:          t.State().String(),
		RaisedBy:       t.RaisedBy(),
		ApprovalStatus: t.ApprovalStatus(),
		ApproverID:     t.ApproverID(),
		ImagePath:      t.ImagePath(),
		Version:        t.Version(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	assigned, _ := json.Marshal(t.AssignedTo())
	model.AssignedTo = assigned

	if t.ApprovedAt() != nil {
		approved := t.ApprovedAt().UnixMilli()
		model.ApprovedAt = &approved
	}
	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	state, err := vo.NewWorkflowState(model.State)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket state (id=%d): %w", model.ID, err)
	}

	assignedTo := []uint{}
	if len(model.AssignedTo) > 0 {
		if err := json.Unmarshal(model.AssignedTo, &assignedTo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assigned workers (id=%d): %w", model.ID, err)
		}
	}

	var approvedAt *time.Time
	if model.ApprovedAt != nil {
		v := time.UnixMilli(*model.ApprovedAt)
		approvedAt = &v
	}
	var closedAt *time.Time
	if model.ClosedAt != nil {
		v := time.UnixMilli(*model.ClosedAt)
		closedAt = &v
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.Location,
		model.CompanyID,
		model.DepartmentID,
		model.PriorityID,
		model.StatusID,
		model.StatusLabel,
		state,
		model.RaisedBy,
		assignedTo,
		model.ApprovalStatus,
		model.ApproverID,
		approvedAt,
		model.ImagePath,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
}
