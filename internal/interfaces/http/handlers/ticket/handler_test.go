package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "deskflow/internal/application/ticket/dto"
	"deskflow/internal/application/ticket/usecases"
	"deskflow/internal/interfaces/http/handlers/testutil"
	"deskflow/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, _ usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.result, m.err
}

type mockCloseTicketUC struct {
	result *usecases.CloseTicketResult
	err    error
	gotCmd usecases.CloseTicketCommand
}

func (m *mockCloseTicketUC) Execute(_ context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockMarkWorkCompleteUC struct {
	result *usecases.MarkWorkCompleteResult
	err    error
}

func (m *mockMarkWorkCompleteUC) Execute(_ context.Context, _ usecases.MarkWorkCompleteCommand) (*usecases.MarkWorkCompleteResult, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) error {
	return m.err
}

type testDeps struct {
	createTicketUC     usecases.CreateTicketExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	closeTicketUC      usecases.CloseTicketExecutor
	markWorkCompleteUC usecases.MarkWorkCompleteExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.updateTicketUC,
		deps.closeTicketUC,
		deps.markWorkCompleteUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.deleteTicketUC,
	)
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			TicketID:  1,
			Number:    "TKT-20260830-0001",
			Status:    "Raised",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Title:       "Broken AC in server room",
		Description: "The AC unit stopped cooling this morning",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	// Missing required description
	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicket_NotAuthenticated(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := CreateTicketRequest{
		Title:       "Broken AC",
		Description: "No cooling",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)

	handler.CreateTicket(c)

	assert.NotEqual(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &ticketdto.TicketDTO{
			ID:     42,
			Number: "TKT-20260830-0042",
			Title:  "Broken AC",
			Status: "Raised",
			State:  "raised",
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/42", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/999", nil)
	testutil.SetURLParam(c, "id", "999")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []ticketdto.TicketListItemDTO{
				{ID: 1, Number: "TKT-20260830-0001", Title: "Broken AC", Status: "Raised"},
			},
			Total:    1,
			Page:     1,
			PageSize: 10,
		},
	}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "1", "page_size": "10"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTicketHandler_CloseTicket_UsesCallerAsCloser(t *testing.T) {
	closedAt := time.Now().UTC()
	mockUC := &mockCloseTicketUC{
		result: &usecases.CloseTicketResult{
			TicketID: 7,
			Status:   "Closed",
			ClosedAt: &closedAt,
		},
	}
	handler := newTestTicketHandler(testDeps{closeTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/7/close", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 33)

	handler.CloseTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.TicketID)
	assert.Equal(t, uint(33), mockUC.gotCmd.ClosedBy)
}

func TestTicketHandler_CloseTicket_Forbidden(t *testing.T) {
	mockUC := &mockCloseTicketUC{err: errors.NewForbiddenError("only the raiser can close the ticket")}
	handler := newTestTicketHandler(testDeps{closeTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/7/close", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 2)

	handler.CloseTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTicketHandler_MarkWorkComplete_Success(t *testing.T) {
	mockUC := &mockMarkWorkCompleteUC{
		result: &usecases.MarkWorkCompleteResult{TicketID: 5, Status: "Work Completed"},
	}
	handler := newTestTicketHandler(testDeps{markWorkCompleteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/5/complete", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 12)

	handler.MarkWorkComplete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_UpdateTicket_Success(t *testing.T) {
	mockUC := &mockUpdateTicketUC{
		result: &usecases.UpdateTicketResult{TicketID: 3, Status: "Material Request", State: "material_request"},
	}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	status := "Material Request"
	reqBody := UpdateTicketRequest{Status: &status}
	c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/3", reqBody)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 1)

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_DeleteTicket_Success(t *testing.T) {
	handler := newTestTicketHandler(testDeps{deleteTicketUC: &mockDeleteTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/9", nil)
	testutil.SetURLParam(c, "id", "9")

	handler.DeleteTicket(c)
	// A body-less 204 is buffered by gin's test context until flushed.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}
