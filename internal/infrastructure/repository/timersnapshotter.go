package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskflow/internal/domain/timer"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

const timerSnapshotKey = "timer_state"

// TimerSnapshotter persists the whole timer map as one JSON document in the
// kv_entries table. The map is small (one entry per running timer) so a full
// rewrite per mutation is cheaper than row-level bookkeeping.
type TimerSnapshotter struct {
	db *gorm.DB
}

func NewTimerSnapshotter(database *gorm.DB) *TimerSnapshotter {
	return &TimerSnapshotter{db: database}
}

func (s *TimerSnapshotter) Save(ctx context.Context, states map[uint]timer.State) error {
	payload, err := json.Marshal(states)
	if err != nil {
		return fmt.Errorf("failed to marshal timer snapshot: %w", err)
	}

	tx := db.GetTxFromContext(ctx, s.db)
	entry := models.KVEntryModel{Key: timerSnapshotKey, Value: payload}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save timer snapshot: %w", err)
	}

	return nil
}

func (s *TimerSnapshotter) Load(ctx context.Context) (map[uint]timer.State, error) {
	var entry models.KVEntryModel
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.First(&entry, "`key` = ?", timerSnapshotKey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load timer snapshot: %w", err)
	}

	states := make(map[uint]timer.State)
	if err := json.Unmarshal(entry.Value, &states); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timer snapshot: %w", err)
	}

	return states, nil
}
