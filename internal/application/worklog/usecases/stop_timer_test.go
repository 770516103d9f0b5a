package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/timer"
	"deskflow/internal/domain/workanalysis"
	"deskflow/internal/domain/worklog"
	apperrors "deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

func reconstructTicket(t *testing.T, state vo.WorkflowState) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.ReconstructTicket(
		1,
		"TKT-20250310-0001",
		"Broken conveyor belt",
		"Belt slips under load at station 2.",
		"Line 2",
		nil,
		nil,
		nil,
		nil,
		state.DisplayName(),
		state,
		7,
		[]uint{3},
		"",
		nil,
		nil,
		"",
		1,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
		nil,
	)
	require.NoError(t, err)
	return tk
}

func reconstructAnalysis(t *testing.T) *workanalysis.Analysis {
	t.Helper()

	a, err := workanalysis.ReconstructAnalysis(
		10,
		1,
		3,
		workanalysis.MaterialNo,
		"",
		nil,
		"Submitted",
		nil,
		nil,
		time.Now().Add(-time.Minute),
		time.Now().Add(-time.Minute),
	)
	require.NoError(t, err)
	return a
}

func newRunningTimer(t *testing.T, store *timer.Store) {
	t.Helper()
	_, err := store.Start(context.Background(), 10, 1, 3, "pat")
	require.NoError(t, err)
}

func TestStartTimer(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	analysisRepo := &mockAnalysisRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workanalysis.Analysis, error) {
			return reconstructAnalysis(t), nil
		},
	}

	uc := NewStartTimerUseCase(store, analysisRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), StartTimerCommand{AnalysisID: 10, WorkerID: 3, WorkerName: "pat"})
	require.NoError(t, err)
	assert.Equal(t, "0h 0m 0s", result.Duration)

	// A second start for the same analysis conflicts.
	_, err = uc.Execute(context.Background(), StartTimerCommand{AnalysisID: 10, WorkerID: 3, WorkerName: "pat"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestStartTimer_UnknownAnalysis(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	uc := NewStartTimerUseCase(store, &mockAnalysisRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StartTimerCommand{AnalysisID: 10, WorkerID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestStopTimer_FullSequence(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	newRunningTimer(t, store)

	var savedEntry *worklog.Entry
	var savedTicket *ticket.Ticket
	entryRepo := &mockEntryRepository{
		SaveFunc: func(ctx context.Context, e *worklog.Entry) error {
			savedEntry = e
			return e.SetID(100)
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, vo.StateMaterialApproved), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return nil
		},
	}

	uc := NewStopTimerUseCase(store, entryRepo, ticketRepo, &mockStatusResolver{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), StopTimerCommand{AnalysisID: 10})
	require.NoError(t, err)

	require.NotNil(t, savedEntry)
	assert.Equal(t, uint(100), result.EntryID)
	assert.Regexp(t, `^\d+h \d+m \d+s$`, result.Duration)

	require.NotNil(t, savedTicket)
	assert.True(t, savedTicket.State().IsWorkingInProgress())

	// Timer state is gone once the entry is recorded.
	_, ok := store.Get(10)
	assert.False(t, ok)
}

func TestStopTimer_AlreadyInProgressSkipsTransition(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	newRunningTimer(t, store)

	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, vo.StateWorkingInProgress), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}

	uc := NewStopTimerUseCase(store, &mockEntryRepository{}, ticketRepo, &mockStatusResolver{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StopTimerCommand{AnalysisID: 10})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestStopTimer_NoRunningTimer(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	uc := NewStopTimerUseCase(store, &mockEntryRepository{}, &mockTicketRepository{}, &mockStatusResolver{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StopTimerCommand{AnalysisID: 10})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestStopTimer_EntrySaveFailureKeepsStoppedState(t *testing.T) {
	store := timer.NewStore(&memorySnapshotter{})
	newRunningTimer(t, store)

	entryRepo := &mockEntryRepository{
		SaveFunc: func(ctx context.Context, e *worklog.Entry) error {
			return errors.New("disk full")
		},
	}

	uc := NewStopTimerUseCase(store, entryRepo, &mockTicketRepository{}, &mockStatusResolver{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StopTimerCommand{AnalysisID: 10})
	require.Error(t, err)

	// The stop itself is not compensated: the state survives, stopped, so
	// the entry can be retried from its instants.
	state, ok := store.Get(10)
	require.True(t, ok)
	assert.False(t, state.IsRunning)
}
