package models

import "gorm.io/datatypes"

type WorkAnalysisModel struct {
	ID                  uint   `gorm:"primaryKey"`
	TicketID            uint   `gorm:"not null;index"`
	WorkerID            uint   `gorm:"not null;index"`
	MaterialRequired    string `gorm:"size:5;not null"`
	MaterialDescription string `gorm:"type:text"`
	UploadedImages      datatypes.JSON
	AnalysisStatus      string `gorm:"size:20;not null;index"`
	ApprovedBy          *uint
	ApprovedAt          *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkAnalysisModel) TableName() string {
	return "work_analyses"
}
