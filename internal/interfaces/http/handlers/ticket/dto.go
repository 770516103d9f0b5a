package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required,max=5000"`
	Location     string `json:"location,omitempty"`
	CompanyID    *uint  `json:"company_id,omitempty"`
	DepartmentID *uint  `json:"department_id,omitempty"`
	PriorityID   *uint  `json:"priority_id,omitempty"`
	ImagePath    string `json:"image_path,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(raisedBy uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		CompanyID:    r.CompanyID,
		DepartmentID: r.DepartmentID,
		PriorityID:   r.PriorityID,
		RaisedBy:     raisedBy,
		ImagePath:    r.ImagePath,
	}
}

type UpdateTicketRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	DepartmentID *uint   `json:"department_id,omitempty"`
	PriorityID   *uint   `json:"priority_id,omitempty"`
	// Status carries the display name picked from the status directory.
	Status *string `json:"status,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, userID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:     ticketID,
		UserID:       userID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		DepartmentID: r.DepartmentID,
		PriorityID:   r.PriorityID,
		StatusName:   r.Status,
	}
}

type ListTicketsRequest struct {
	State        string
	CompanyID    *uint
	DepartmentID *uint
	PriorityID   *uint
	RaisedBy     uint
	AssignedTo   uint
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		State:        r.State,
		CompanyID:    r.CompanyID,
		DepartmentID: r.DepartmentID,
		PriorityID:   r.PriorityID,
		RaisedBy:     r.RaisedBy,
		AssignedTo:   r.AssignedTo,
		Search:       r.Search,
		Page:         r.Page,
		PageSize:     r.PageSize,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		State:     c.Query("state"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if v, err := strconv.ParseUint(c.Query("company_id"), 10, 32); err == nil && v > 0 {
		id := uint(v)
		req.CompanyID = &id
	}
	if v, err := strconv.ParseUint(c.Query("department_id"), 10, 32); err == nil && v > 0 {
		id := uint(v)
		req.DepartmentID = &id
	}
	if v, err := strconv.ParseUint(c.Query("priority_id"), 10, 32); err == nil && v > 0 {
		id := uint(v)
		req.PriorityID = &id
	}
	if v, err := strconv.ParseUint(c.Query("raised_by"), 10, 32); err == nil {
		req.RaisedBy = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("assigned_to"), 10, 32); err == nil {
		req.AssignedTo = uint(v)
	}

	return req
}
