package worklog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/worklog/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

type WorkLogHandler struct {
	startTimerUC   usecases.StartTimerExecutor
	stopTimerUC    usecases.StopTimerExecutor
	listWorkLogsUC usecases.ListWorkLogsExecutor
	getTimerUC     *usecases.GetTimerUseCase
	listTimersUC   *usecases.ListTimersUseCase
	logger         logger.Interface
}

func NewWorkLogHandler(
	startTimerUC usecases.StartTimerExecutor,
	stopTimerUC usecases.StopTimerExecutor,
	listWorkLogsUC usecases.ListWorkLogsExecutor,
	getTimerUC *usecases.GetTimerUseCase,
	listTimersUC *usecases.ListTimersUseCase,
) *WorkLogHandler {
	return &WorkLogHandler{
		startTimerUC:   startTimerUC,
		stopTimerUC:    stopTimerUC,
		listWorkLogsUC: listWorkLogsUC,
		getTimerUC:     getTimerUC,
		listTimersUC:   listTimersUC,
		logger:         logger.NewLogger(),
	}
}

type StartTimerRequest struct {
	WorkerName string `json:"worker_name,omitempty"`
}

// StartTimer handles POST /analyses/:id/timer/start
func (h *WorkLogHandler) StartTimer(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Body is optional: the worker name defaults to the token subject.
	var req StartTimerRequest
	_ = c.ShouldBindJSON(&req)

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StartTimerCommand{
		AnalysisID: analysisID,
		WorkerID:   userID,
		WorkerName: req.WorkerName,
	}

	result, err := h.startTimerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Timer started", result)
}

// StopTimer handles POST /analyses/:id/timer/stop
func (h *WorkLogHandler) StopTimer(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stopTimerUC.Execute(c.Request.Context(), usecases.StopTimerCommand{AnalysisID: analysisID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Timer stopped", result)
}

// GetTimer handles GET /analyses/:id/timer
func (h *WorkLogHandler) GetTimer(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTimerUC.Execute(analysisID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTimers handles GET /timers
func (h *WorkLogHandler) ListTimers(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.listTimersUC.Execute())
}

// ListWorkLogs handles GET /worklogs
func (h *WorkLogHandler) ListWorkLogs(c *gin.Context) {
	query := usecases.ListWorkLogsQuery{}

	if v, err := strconv.ParseUint(c.Query("ticket_id"), 10, 32); err == nil {
		query.TicketID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("analysis_id"), 10, 32); err == nil {
		query.AnalysisID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("worker_id"), 10, 32); err == nil {
		query.WorkerID = uint(v)
	}

	result, err := h.listWorkLogsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
