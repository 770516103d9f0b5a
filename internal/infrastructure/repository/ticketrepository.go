package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

// allowedTicketOrderByFields is the ORDER BY whitelist.
var allowedTicketOrderByFields = map[string]bool{
	"id":           true,
	"number":       true,
	"title":        true,
	"state":        true,
	"status_label": true,
	"priority_id":  true,
	"raised_by":    true,
	"created_at":   true,
	"updated_at":   true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.TicketModel{}, ticketID).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	tx = r.applyFilters(tx, filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	tx = tx.Order(r.orderClause(filters))
	if filters.PageSize > 0 {
		offset := (filters.Page - 1) * filters.PageSize
		tx = tx.Offset(offset).Limit(filters.PageSize)
	}

	var rows []models.TicketModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) GetRaisedTickets(ctx context.Context, userID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	filters.RaisedBy = &userID
	return r.List(ctx, filters)
}

func (r *TicketRepository) GetAssignedTickets(ctx context.Context, workerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	filters.AssignedTo = &workerID
	return r.List(ctx, filters)
}

func (r *TicketRepository) applyFilters(tx *gorm.DB, filters ticket.TicketFilter) *gorm.DB {
	if filters.State != nil {
		tx = tx.Where("state = ?", filters.State.String())
	}
	if filters.CompanyID != nil {
		tx = tx.Where("company_id = ?", *filters.CompanyID)
	}
	if filters.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *filters.DepartmentID)
	}
	if filters.PriorityID != nil {
		tx = tx.Where("priority_id = ?", *filters.PriorityID)
	}
	if filters.RaisedBy != nil {
		tx = tx.Where("raised_by = ?", *filters.RaisedBy)
	}
	if filters.AssignedTo != nil {
		// assigned_to is a JSON array of worker ids.
		tx = tx.Where("assigned_to LIKE ?", fmt.Sprintf("%%%d%%", *filters.AssignedTo))
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		tx = tx.Where("number LIKE ? OR title LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}
	return tx
}

func (r *TicketRepository) orderClause(filters ticket.TicketFilter) string {
	field := "created_at"
	if allowedTicketOrderByFields[filters.SortBy] {
		field = filters.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		direction = "ASC"
	}
	return field + " " + direction
}
