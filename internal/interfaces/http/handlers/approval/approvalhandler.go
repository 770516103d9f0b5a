package approval

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/approval/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

type ApprovalHandler struct {
	createApprovalUC usecases.CreateApprovalExecutor
	listApprovalsUC  usecases.ListApprovalsExecutor
	logger           logger.Interface
}

func NewApprovalHandler(
	createApprovalUC usecases.CreateApprovalExecutor,
	listApprovalsUC usecases.ListApprovalsExecutor,
) *ApprovalHandler {
	return &ApprovalHandler{
		createApprovalUC: createApprovalUC,
		listApprovalsUC:  listApprovalsUC,
		logger:           logger.NewLogger(),
	}
}

type CreateApprovalRequest struct {
	TicketID   uint   `json:"ticket_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	AssignedTo []uint `json:"assigned_to,omitempty"`
	Remark     string `json:"remark,omitempty"`
}

// CreateApproval handles POST /approvals
func (h *ApprovalHandler) CreateApproval(c *gin.Context) {
	var req CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create approval", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateApprovalCommand{
		TicketID:   req.TicketID,
		ApproverID: userID,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
		Remark:     req.Remark,
	}

	result, err := h.createApprovalUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Approval recorded successfully")
}

// ListApprovals handles GET /approvals
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	query := usecases.ListApprovalsQuery{Page: page, PageSize: pageSize}

	if v, err := strconv.ParseUint(c.Query("ticket_id"), 10, 32); err == nil {
		query.TicketID = uint(v)
	}

	result, err := h.listApprovalsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Approvals, result.Total, page, pageSize)
}
