package models

import "gorm.io/datatypes"

// KVEntryModel is a small key/value table used for process state that must
// survive restarts, such as the timer snapshot.
type KVEntryModel struct {
	Key       string         `gorm:"primaryKey;size:100"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (KVEntryModel) TableName() string {
	return "kv_entries"
}
