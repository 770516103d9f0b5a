// Package approval holds the supervisor decision recorded against a ticket's
// material request. A decision carries the selected workers and an optional
// remark, and is immutable once recorded.
package approval

import (
	"time"

	"deskflow/internal/shared/errors"
)

// ApprovalStatus is the decision outcome.
type ApprovalStatus string

const (
	StatusApproved    ApprovalStatus = "Approved"
	StatusNotApproved ApprovalStatus = "Not Approved"
)

func (s ApprovalStatus) IsValid() bool {
	return s == StatusApproved || s == StatusNotApproved
}

func (s ApprovalStatus) String() string {
	return string(s)
}

type Approval struct {
	id         uint
	ticketID   uint
	approverID uint
	status     ApprovalStatus
	assignedTo []uint
	remark     string
	decidedAt  time.Time
	createdAt  time.Time
}

func NewApproval(ticketID, approverID uint, status ApprovalStatus, assignedTo []uint, remark string) (*Approval, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket id is required")
	}
	if approverID == 0 {
		return nil, errors.NewValidationError("approver id is required")
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("approval status must be Approved or Not Approved")
	}
	if status == StatusApproved && len(assignedTo) == 0 {
		return nil, errors.NewValidationError("an approved request must assign at least one worker")
	}

	now := time.Now()
	return &Approval{
		ticketID:   ticketID,
		approverID: approverID,
		status:     status,
		assignedTo: dedupe(assignedTo),
		remark:     remark,
		decidedAt:  now,
		createdAt:  now,
	}, nil
}

func ReconstructApproval(
	id uint,
	ticketID uint,
	approverID uint,
	status ApprovalStatus,
	assignedTo []uint,
	remark string,
	decidedAt time.Time,
	createdAt time.Time,
) *Approval {
	return &Approval{
		id:         id,
		ticketID:   ticketID,
		approverID: approverID,
		status:     status,
		assignedTo: assignedTo,
		remark:     remark,
		decidedAt:  decidedAt,
		createdAt:  createdAt,
	}
}

func (a *Approval) ID() uint                { return a.id }
func (a *Approval) TicketID() uint          { return a.ticketID }
func (a *Approval) ApproverID() uint        { return a.approverID }
func (a *Approval) Status() ApprovalStatus  { return a.status }
func (a *Approval) AssignedTo() []uint      { return a.assignedTo }
func (a *Approval) Remark() string          { return a.remark }
func (a *Approval) DecidedAt() time.Time    { return a.decidedAt }
func (a *Approval) CreatedAt() time.Time    { return a.createdAt }
func (a *Approval) IsApproved() bool        { return a.status == StatusApproved }

func (a *Approval) SetID(id uint) {
	a.id = id
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
