package worklog

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/application/worklog/usecases"
	"deskflow/internal/domain/timer"
	"deskflow/internal/interfaces/http/handlers/testutil"
	"deskflow/internal/shared/logger"
)

type mockStartTimerUC struct {
	result *usecases.StartTimerResult
	err    error
	gotCmd usecases.StartTimerCommand
}

func (m *mockStartTimerUC) Execute(_ context.Context, cmd usecases.StartTimerCommand) (*usecases.StartTimerResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockStopTimerUC struct {
	result *usecases.StopTimerResult
	err    error
}

func (m *mockStopTimerUC) Execute(_ context.Context, _ usecases.StopTimerCommand) (*usecases.StopTimerResult, error) {
	return m.result, m.err
}

type mockListWorkLogsUC struct {
	result   *usecases.ListWorkLogsResult
	err      error
	gotQuery usecases.ListWorkLogsQuery
}

func (m *mockListWorkLogsUC) Execute(_ context.Context, query usecases.ListWorkLogsQuery) (*usecases.ListWorkLogsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type memorySnapshotter struct {
	states map[uint]timer.State
}

func (s *memorySnapshotter) Save(_ context.Context, states map[uint]timer.State) error {
	s.states = states
	return nil
}

func (s *memorySnapshotter) Load(_ context.Context) (map[uint]timer.State, error) {
	return s.states, nil
}

func newTestStore(t *testing.T, running ...uint) *timer.Store {
	t.Helper()
	store := timer.NewStore(&memorySnapshotter{})
	for _, id := range running {
		_, err := store.Start(context.Background(), id, id*10, 1, "Tester")
		require.NoError(t, err)
	}
	return store
}

func newTestHandler(store *timer.Store, start usecases.StartTimerExecutor, stop usecases.StopTimerExecutor, list usecases.ListWorkLogsExecutor) *WorkLogHandler {
	log := logger.NewNop()
	return NewWorkLogHandler(
		start,
		stop,
		list,
		usecases.NewGetTimerUseCase(store, log),
		usecases.NewListTimersUseCase(store, log),
	)
}

func TestWorkLogHandler_StartTimer_UsesCallerAsWorker(t *testing.T) {
	mockUC := &mockStartTimerUC{
		result: &usecases.StartTimerResult{
			AnalysisID: 4,
			StartTime:  time.Now().UTC(),
			Duration:   "0h 0m 0s",
		},
	}
	handler := newTestHandler(newTestStore(t), mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/analyses/4/timer/start", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 12)

	handler.StartTimer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), mockUC.gotCmd.AnalysisID)
	assert.Equal(t, uint(12), mockUC.gotCmd.WorkerID)
}

func TestWorkLogHandler_StartTimer_NotAuthenticated(t *testing.T) {
	handler := newTestHandler(newTestStore(t), &mockStartTimerUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/analyses/4/timer/start", nil)
	testutil.SetURLParam(c, "id", "4")

	handler.StartTimer(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkLogHandler_StopTimer_Success(t *testing.T) {
	mockUC := &mockStopTimerUC{
		result: &usecases.StopTimerResult{
			EntryID:      1,
			Duration:     "1h 30m 0s",
			TicketStatus: "Working In Progress",
		},
	}
	handler := newTestHandler(newTestStore(t), nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/analyses/4/timer/stop", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 12)

	handler.StopTimer(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkLogHandler_GetTimer_Running(t *testing.T) {
	handler := newTestHandler(newTestStore(t, 4), nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/analyses/4/timer", nil)
	testutil.SetURLParam(c, "id", "4")

	handler.GetTimer(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkLogHandler_GetTimer_NotFound(t *testing.T) {
	handler := newTestHandler(newTestStore(t), nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/analyses/4/timer", nil)
	testutil.SetURLParam(c, "id", "4")

	handler.GetTimer(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkLogHandler_ListTimers_ReturnsActiveStates(t *testing.T) {
	handler := newTestHandler(newTestStore(t, 4, 5), nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/timers", nil)

	handler.ListTimers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestWorkLogHandler_ListWorkLogs_FiltersFromQuery(t *testing.T) {
	mockUC := &mockListWorkLogsUC{
		result: &usecases.ListWorkLogsResult{
			Entries:       []usecases.WorkLogDTO{{ID: 1, TicketID: 3, Duration: "0h 45m 0s"}},
			TotalDuration: "0h 45m 0s",
		},
	}
	handler := newTestHandler(newTestStore(t), nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/worklogs", nil)
	testutil.SetQueryParams(c, map[string]string{"ticket_id": "3", "worker_id": "12"})

	handler.ListWorkLogs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.gotQuery.TicketID)
	assert.Equal(t, uint(12), mockUC.gotQuery.WorkerID)
}
