package dto

import (
	"time"

	"deskflow/internal/domain/ticket"
)

type TicketDTO struct {
	ID             uint       `json:"id"`
	Number         string     `json:"number"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	CompanyID      *uint      `json:"company_id"`
	DepartmentID   *uint      `json:"department_id"`
	PriorityID     *uint      `json:"priority_id"`
	StatusID       *uint      `json:"status_id"`
	Status         string     `json:"status"`
	State          string     `json:"state"`
	RaisedBy       uint       `json:"raised_by"`
	AssignedTo     []uint     `json:"assigned_to"`
	ApprovalStatus string     `json:"approval_status,omitempty"`
	ApproverID     *uint      `json:"approver_id,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ImagePath      string     `json:"image_path,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

type TicketListItemDTO struct {
	ID         uint   `json:"id"`
	Number     string `json:"number"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	State      string `json:"state"`
	PriorityID *uint  `json:"priority_id"`
	RaisedBy   uint   `json:"raised_by"`
	AssignedTo []uint `json:"assigned_to"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:             t.ID(),
		Number:         t.Number(),
		Title:          t.Title(),
		Description:    t.Description(),
		Location:       t.Location(),
		CompanyID:      t.CompanyID(),
		DepartmentID:   t.DepartmentID(),
		PriorityID:     t.PriorityID(),
		StatusID:       t.StatusID(),
		Status:         t.StatusLabel(),
		State:          t.State().String(),
		RaisedBy:       t.RaisedBy(),
		AssignedTo:     t.AssignedTo(),
		ApprovalStatus: t.ApprovalStatus(),
		ApproverID:     t.ApproverID(),
		ApprovedAt:     t.ApprovedAt(),
		ImagePath:      t.ImagePath(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ClosedAt:       t.ClosedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Number:     t.Number(),
		Title:      t.Title(),
		Status:     t.StatusLabel(),
		State:      t.State().String(),
		PriorityID: t.PriorityID(),
		RaisedBy:   t.RaisedBy(),
		AssignedTo: t.AssignedTo(),
		CreatedAt:  t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt().Format(time.RFC3339),
	}
}
