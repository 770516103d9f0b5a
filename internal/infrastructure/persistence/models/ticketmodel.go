package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Number         string `gorm:"uniqueIndex;size:50;not null"`
	Title          string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text;not null"`
	Location       string `gorm:"size:255"`
	CompanyID      *uint  `gorm:"index"`
	DepartmentID   *uint  `gorm:"index"`
	PriorityID     *uint  `gorm:"index"`
	StatusID       *uint  `gorm:"index"`
	StatusLabel    string `gorm:"size:100;not null"`
	State          string `gorm:"size:30;not null;index"`
	RaisedBy       uint   `gorm:"not null;index"`
	AssignedTo     datatypes.JSON
	ApprovalStatus string `gorm:"size:20"`
	ApproverID     *uint  `gorm:"index"`
	ApprovedAt     *int64
	ImagePath      string `gorm:"size:500"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt       *int64

	// No foreign key constraints or associations; relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
