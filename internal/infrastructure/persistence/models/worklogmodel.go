package models

type WorkLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AnalysisID uint   `gorm:"not null;index"`
	WorkerID   uint   `gorm:"not null;index"`
	WorkerName string `gorm:"size:100"`
	FromTime   string `gorm:"size:5;not null"`
	ToTime     string `gorm:"size:5;not null"`
	Duration   string `gorm:"size:30;not null"`
	LogDate    string `gorm:"size:10;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (WorkLogModel) TableName() string {
	return "work_logs"
}
