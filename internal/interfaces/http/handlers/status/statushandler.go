package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appstatus "deskflow/internal/application/status"
	"deskflow/internal/domain/status"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

type StatusHandler struct {
	directory *appstatus.Directory
	logger    logger.Interface
}

func NewStatusHandler(directory *appstatus.Directory) *StatusHandler {
	return &StatusHandler{
		directory: directory,
		logger:    logger.NewLogger(),
	}
}

type StatusDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	CompanyID *uint  `json:"company_id,omitempty"`
}

func toStatusDTO(s *status.Status) StatusDTO {
	return StatusDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		SortOrder: s.SortOrder(),
		CompanyID: s.CompanyID(),
	}
}

type CreateStatusRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
	CompanyID *uint  `json:"company_id,omitempty"`
}

type UpdateStatusRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
}

// ListStatuses handles GET /statuses
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.directory.ListAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]StatusDTO, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, toStatusDTO(s))
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreateStatus handles POST /statuses
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.directory.Create(c.Request.Context(), req.Name, req.SortOrder, req.CompanyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toStatusDTO(st), "Status created successfully")
}

// UpdateStatus handles PUT /statuses/:id
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	statusID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.directory.Update(c.Request.Context(), statusID, req.Name, req.SortOrder)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", toStatusDTO(st))
}

// DeleteStatus handles DELETE /statuses/:id
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	statusID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.directory.Delete(c.Request.Context(), statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
