package models

import "gorm.io/datatypes"

type ApprovalModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	ApproverID uint   `gorm:"not null;index"`
	Status     string `gorm:"size:20;not null"`
	AssignedTo datatypes.JSON
	Remark     string `gorm:"type:text"`
	DecidedAt  int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ApprovalModel) TableName() string {
	return "approvals"
}
