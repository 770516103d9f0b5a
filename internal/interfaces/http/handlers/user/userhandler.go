package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/user/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	logger       logger.Interface
}

func NewUserHandler(createUserUC usecases.CreateUserExecutor) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		logger:       logger.NewLogger(),
	}
}

type CreateUserRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role,omitempty"`
	CompanyID     *uint  `json:"company_id,omitempty"`
	DepartmentID  *uint  `json:"department_id,omitempty"`
	DesignationID *uint  `json:"designation_id,omitempty"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateUserCommand{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		CompanyID:     req.CompanyID,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}
