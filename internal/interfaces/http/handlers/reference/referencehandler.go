package reference

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appreference "deskflow/internal/application/reference"
	"deskflow/internal/domain/reference"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

// ReferenceHandler serves the master-data lookups backing ticket forms:
// companies, departments, designations and priorities.
type ReferenceHandler struct {
	service *appreference.Service
	logger  logger.Interface
}

func NewReferenceHandler(service *appreference.Service) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type NamedItemDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CompanyID *uint  `json:"company_id,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type CreateNamedItemRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	CompanyID *uint  `json:"company_id,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type RenameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListCompanies handles GET /companies
func (h *ReferenceHandler) ListCompanies(c *gin.Context) {
	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]NamedItemDTO, 0, len(companies))
	for _, company := range companies {
		items = append(items, NamedItemDTO{ID: company.ID(), Name: company.Name()})
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreateCompany handles POST /companies
func (h *ReferenceHandler) CreateCompany(c *gin.Context) {
	req, ok := h.bindNamedItem(c)
	if !ok {
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, NamedItemDTO{ID: company.ID(), Name: company.Name()})
}

// RenameCompany handles PUT /companies/:id
func (h *ReferenceHandler) RenameCompany(c *gin.Context) {
	id, req, ok := h.bindRename(c)
	if !ok {
		return
	}

	company, err := h.service.RenameCompany(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Company renamed", NamedItemDTO{ID: company.ID(), Name: company.Name()})
}

// DeleteCompany handles DELETE /companies/:id
func (h *ReferenceHandler) DeleteCompany(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteCompany)
}

// ListDepartments handles GET /departments
func (h *ReferenceHandler) ListDepartments(c *gin.Context) {
	departments, err := h.service.ListDepartments(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]NamedItemDTO, 0, len(departments))
	for _, d := range departments {
		items = append(items, departmentDTO(d))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreateDepartment handles POST /departments
func (h *ReferenceHandler) CreateDepartment(c *gin.Context) {
	req, ok := h.bindNamedItem(c)
	if !ok {
		return
	}

	d, err := h.service.CreateDepartment(c.Request.Context(), req.Name, req.CompanyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, departmentDTO(d))
}

// RenameDepartment handles PUT /departments/:id
func (h *ReferenceHandler) RenameDepartment(c *gin.Context) {
	id, req, ok := h.bindRename(c)
	if !ok {
		return
	}

	d, err := h.service.RenameDepartment(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Department renamed", departmentDTO(d))
}

// DeleteDepartment handles DELETE /departments/:id
func (h *ReferenceHandler) DeleteDepartment(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteDepartment)
}

// ListDesignations handles GET /designations
func (h *ReferenceHandler) ListDesignations(c *gin.Context) {
	designations, err := h.service.ListDesignations(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]NamedItemDTO, 0, len(designations))
	for _, d := range designations {
		items = append(items, NamedItemDTO{ID: d.ID(), Name: d.Name()})
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreateDesignation handles POST /designations
func (h *ReferenceHandler) CreateDesignation(c *gin.Context) {
	req, ok := h.bindNamedItem(c)
	if !ok {
		return
	}

	d, err := h.service.CreateDesignation(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, NamedItemDTO{ID: d.ID(), Name: d.Name()})
}

// DeleteDesignation handles DELETE /designations/:id
func (h *ReferenceHandler) DeleteDesignation(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteDesignation)
}

// ListPriorities handles GET /priorities
func (h *ReferenceHandler) ListPriorities(c *gin.Context) {
	priorities, err := h.service.ListPriorities(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]NamedItemDTO, 0, len(priorities))
	for _, p := range priorities {
		items = append(items, NamedItemDTO{ID: p.ID(), Name: p.Name(), SortOrder: p.SortOrder()})
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreatePriority handles POST /priorities
func (h *ReferenceHandler) CreatePriority(c *gin.Context) {
	req, ok := h.bindNamedItem(c)
	if !ok {
		return
	}

	p, err := h.service.CreatePriority(c.Request.Context(), req.Name, req.SortOrder)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, NamedItemDTO{ID: p.ID(), Name: p.Name(), SortOrder: p.SortOrder()})
}

// DeletePriority handles DELETE /priorities/:id
func (h *ReferenceHandler) DeletePriority(c *gin.Context) {
	h.deleteByID(c, h.service.DeletePriority)
}

func departmentDTO(d *reference.Department) NamedItemDTO {
	return NamedItemDTO{ID: d.ID(), Name: d.Name(), CompanyID: d.CompanyID()}
}

func (h *ReferenceHandler) bindNamedItem(c *gin.Context) (*CreateNamedItemRequest, bool) {
	var req CreateNamedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func (h *ReferenceHandler) bindRename(c *gin.Context) (uint, *RenameRequest, bool) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, nil, false
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return 0, nil, false
	}
	return id, &req, true
}

func (h *ReferenceHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id uint) error) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
