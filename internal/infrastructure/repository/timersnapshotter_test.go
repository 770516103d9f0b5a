package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskflow/internal/domain/timer"
	"deskflow/internal/infrastructure/persistence/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntryModel{}))

	return db
}

func TestTimerSnapshotter_LoadEmpty(t *testing.T) {
	s := NewTimerSnapshotter(newTestDB(t))

	states, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, states)
}

func TestTimerSnapshotter_SaveAndLoad(t *testing.T) {
	s := NewTimerSnapshotter(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	states := map[uint]timer.State{
		4: {
			AnalysisID: 4,
			TicketID:   40,
			WorkerID:   12,
			WorkerName: "Dana",
			StartTime:  start,
			IsRunning:  true,
			Duration:   "0h 0m 0s",
		},
	}

	require.NoError(t, s.Save(ctx, states))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, uint(40), loaded[4].TicketID)
	assert.Equal(t, "Dana", loaded[4].WorkerName)
	assert.True(t, loaded[4].IsRunning)
	assert.True(t, loaded[4].StartTime.Equal(start))
}

func TestTimerSnapshotter_SaveOverwrites(t *testing.T) {
	s := NewTimerSnapshotter(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, map[uint]timer.State{
		1: {AnalysisID: 1, IsRunning: true},
		2: {AnalysisID: 2, IsRunning: true},
	}))
	require.NoError(t, s.Save(ctx, map[uint]timer.State{
		2: {AnalysisID: 2, IsRunning: false, Duration: "1h 0m 0s"},
	}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.False(t, loaded[2].IsRunning)
	assert.Equal(t, "1h 0m 0s", loaded[2].Duration)
}
