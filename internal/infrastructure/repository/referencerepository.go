package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/reference"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
)

// Master-data repositories share the same shape: small tables looked up
// by id or listed whole, sorted by name.

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: database}
}

func (r *CompanyRepository) Save(ctx context.Context, c *reference.Company) error {
	model := mappers.CompanyToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *reference.Company) error {
	model := mappers.CompanyToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{"name": model.Name})
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("company not found: id=%d", model.ID)
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CompanyModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*reference.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return mappers.CompanyToDomain(&model), nil
}

func (r *CompanyRepository) ListAll(ctx context.Context) ([]*reference.Company, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CompanyModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*reference.Company, 0, len(rows))
	for i := range rows {
		companies = append(companies, mappers.CompanyToDomain(&rows[i]))
	}
	return companies, nil
}

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(database *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: database}
}

func (r *DepartmentRepository) Save(ctx context.Context, d *reference.Department) error {
	model := mappers.DepartmentToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}

	d.SetID(model.ID)
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *reference.Department) error {
	model := mappers.DepartmentToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{"name": model.Name, "company_id": model.CompanyID})
	if result.Error != nil {
		return fmt.Errorf("failed to update department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("department not found: id=%d", model.ID)
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.DepartmentModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*reference.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return mappers.DepartmentToDomain(&model), nil
}

func (r *DepartmentRepository) ListAll(ctx context.Context) ([]*reference.Department, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.DepartmentModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*reference.Department, 0, len(rows))
	for i := range rows {
		departments = append(departments, mappers.DepartmentToDomain(&rows[i]))
	}
	return departments, nil
}

type DesignationRepository struct {
	db *gorm.DB
}

func NewDesignationRepository(database *gorm.DB) *DesignationRepository {
	return &DesignationRepository{db: database}
}

func (r *DesignationRepository) Save(ctx context.Context, d *reference.Designation) error {
	model := mappers.DesignationToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save designation: %w", err)
	}

	d.SetID(model.ID)
	return nil
}

func (r *DesignationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.DesignationModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	return nil
}

func (r *DesignationRepository) GetByID(ctx context.Context, id uint) (*reference.Designation, error) {
	var model models.DesignationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find designation: %w", err)
	}

	return mappers.DesignationToDomain(&model), nil
}

func (r *DesignationRepository) ListAll(ctx context.Context) ([]*reference.Designation, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.DesignationModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}

	designations := make([]*reference.Designation, 0, len(rows))
	for i := range rows {
		designations = append(designations, mappers.DesignationToDomain(&rows[i]))
	}
	return designations, nil
}

type PriorityRepository struct {
	db *gorm.DB
}

func NewPriorityRepository(database *gorm.DB) *PriorityRepository {
	return &PriorityRepository{db: database}
}

func (r *PriorityRepository) Save(ctx context.Context, p *reference.Priority) error {
	model := mappers.PriorityToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save priority: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *PriorityRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.PriorityModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete priority: %w", err)
	}
	return nil
}

func (r *PriorityRepository) GetByID(ctx context.Context, id uint) (*reference.Priority, error) {
	var model models.PriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find priority: %w", err)
	}

	return mappers.PriorityToDomain(&model), nil
}

func (r *PriorityRepository) ListAll(ctx context.Context) ([]*reference.Priority, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.PriorityModel
	if err := tx.Order("sort_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}

	priorities := make([]*reference.Priority, 0, len(rows))
	for i := range rows {
		priorities = append(priorities, mappers.PriorityToDomain(&rows[i]))
	}
	return priorities, nil
}
