package models

type StatusModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	SortOrder int    `gorm:"not null;default:0;index"`
	CompanyID *uint  `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
