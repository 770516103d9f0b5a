package workanalysis

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/workanalysis/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

const maxUploadSize = 5 << 20

// ImageStore persists uploaded analysis images and returns their URL paths.
type ImageStore interface {
	Save(content []byte) (string, error)
}

type WorkAnalysisHandler struct {
	submitAnalysisUC usecases.SubmitAnalysisExecutor
	toggleMaterialUC usecases.ToggleMaterialExecutor
	listAnalysesUC   usecases.ListAnalysesExecutor
	getAnalysisUC    usecases.GetAnalysisExecutor
	imageStore       ImageStore
	logger           logger.Interface
}

func NewWorkAnalysisHandler(
	submitAnalysisUC usecases.SubmitAnalysisExecutor,
	toggleMaterialUC usecases.ToggleMaterialExecutor,
	listAnalysesUC usecases.ListAnalysesExecutor,
	getAnalysisUC usecases.GetAnalysisExecutor,
	imageStore ImageStore,
) *WorkAnalysisHandler {
	return &WorkAnalysisHandler{
		submitAnalysisUC: submitAnalysisUC,
		toggleMaterialUC: toggleMaterialUC,
		listAnalysesUC:   listAnalysesUC,
		getAnalysisUC:    getAnalysisUC,
		imageStore:       imageStore,
		logger:           logger.NewLogger(),
	}
}

type SubmitAnalysisRequest struct {
	TicketID            uint     `json:"ticket_id" binding:"required"`
	MaterialRequired    string   `json:"material_required" binding:"required,material_flag"`
	MaterialDescription string   `json:"material_description,omitempty"`
	UploadedImages      []string `json:"uploaded_images,omitempty"`
}

type ToggleMaterialRequest struct {
	MaterialRequired    string `json:"material_required" binding:"required,material_flag"`
	MaterialDescription string `json:"material_description,omitempty"`
}

// SubmitAnalysis handles POST /analyses
func (h *WorkAnalysisHandler) SubmitAnalysis(c *gin.Context) {
	var req SubmitAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit analysis", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubmitAnalysisCommand{
		TicketID:            req.TicketID,
		WorkerID:            userID,
		MaterialRequired:    req.MaterialRequired,
		MaterialDescription: req.MaterialDescription,
		UploadedImages:      req.UploadedImages,
	}

	result, err := h.submitAnalysisUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work analysis submitted successfully")
}

// ToggleMaterial handles PATCH /analyses/:id/material
func (h *WorkAnalysisHandler) ToggleMaterial(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for toggle material", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ToggleMaterialCommand{
		AnalysisID:          analysisID,
		MaterialRequired:    req.MaterialRequired,
		MaterialDescription: req.MaterialDescription,
	}

	result, err := h.toggleMaterialUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Material requirement updated", result)
}

// GetAnalysis handles GET /analyses/:id
func (h *WorkAnalysisHandler) GetAnalysis(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAnalysisUC.Execute(c.Request.Context(), analysisID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAnalyses handles GET /analyses
func (h *WorkAnalysisHandler) ListAnalyses(c *gin.Context) {
	query := usecases.ListAnalysesQuery{}

	if v, err := strconv.ParseUint(c.Query("ticket_id"), 10, 32); err == nil {
		query.TicketID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("worker_id"), 10, 32); err == nil {
		query.WorkerID = uint(v)
	}
	query.ApprovedOnly = c.Query("approved") == "true"

	result, err := h.listAnalysesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UploadImage handles POST /analyses/images
func (h *WorkAnalysisHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Warnw("failed to get uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file size exceeds 5MB limit")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		h.logger.Errorw("failed to read uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process file")
		return
	}

	url, err := h.imageStore.Save(content)
	if err != nil {
		h.logger.Warnw("rejected image upload", "error", err, "filename", header.Filename)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"url": url})
}
