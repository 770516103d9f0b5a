package approval

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/application/approval/usecases"
	"deskflow/internal/interfaces/http/handlers/testutil"
	"deskflow/internal/shared/errors"
)

type mockCreateApprovalUC struct {
	result *usecases.CreateApprovalResult
	err    error
	gotCmd usecases.CreateApprovalCommand
}

func (m *mockCreateApprovalUC) Execute(_ context.Context, cmd usecases.CreateApprovalCommand) (*usecases.CreateApprovalResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListApprovalsUC struct {
	result   *usecases.ListApprovalsResult
	err      error
	gotQuery usecases.ListApprovalsQuery
}

func (m *mockListApprovalsUC) Execute(_ context.Context, query usecases.ListApprovalsQuery) (*usecases.ListApprovalsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

func TestApprovalHandler_CreateApproval_UsesCallerAsApprover(t *testing.T) {
	mockUC := &mockCreateApprovalUC{
		result: &usecases.CreateApprovalResult{
			ApprovalID:   1,
			Status:       "Approved",
			TicketStatus: "Working In Progress",
			DecidedAt:    time.Now().UTC(),
		},
	}
	handler := NewApprovalHandler(mockUC, &mockListApprovalsUC{})

	reqBody := CreateApprovalRequest{
		TicketID:   3,
		Status:     "Approved",
		AssignedTo: []uint{12, 15},
		Remark:     "go ahead",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/approvals", reqBody)
	testutil.SetAuthContext(c, 8)

	handler.CreateApproval(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(8), mockUC.gotCmd.ApproverID)
	assert.Equal(t, []uint{12, 15}, mockUC.gotCmd.AssignedTo)
}

func TestApprovalHandler_CreateApproval_BindError(t *testing.T) {
	handler := NewApprovalHandler(&mockCreateApprovalUC{}, &mockListApprovalsUC{})

	// Missing required status
	reqBody := map[string]interface{}{"ticket_id": 3}
	c, w := testutil.NewTestContext(http.MethodPost, "/approvals", reqBody)
	testutil.SetAuthContext(c, 8)

	handler.CreateApproval(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprovalHandler_CreateApproval_TicketNotFound(t *testing.T) {
	mockUC := &mockCreateApprovalUC{err: errors.NewNotFoundError("ticket not found")}
	handler := NewApprovalHandler(mockUC, &mockListApprovalsUC{})

	reqBody := CreateApprovalRequest{TicketID: 99, Status: "Approved"}
	c, w := testutil.NewTestContext(http.MethodPost, "/approvals", reqBody)
	testutil.SetAuthContext(c, 8)

	handler.CreateApproval(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovalHandler_ListApprovals_FiltersByTicket(t *testing.T) {
	mockUC := &mockListApprovalsUC{
		result: &usecases.ListApprovalsResult{
			Approvals: []usecases.ApprovalDTO{
				{ID: 1, TicketID: 3, ApproverID: 8, Status: "Approved"},
			},
			Total: 1,
		},
	}
	handler := NewApprovalHandler(&mockCreateApprovalUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/approvals", nil)
	testutil.SetQueryParams(c, map[string]string{"ticket_id": "3"})

	handler.ListApprovals(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.gotQuery.TicketID)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
