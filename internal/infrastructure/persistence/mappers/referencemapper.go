package mappers

import (
	"time"

	"deskflow/internal/domain/reference"
	"deskflow/internal/infrastructure/persistence/models"
)

func CompanyToModel(c *reference.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func CompanyToDomain(m *models.CompanyModel) *reference.Company {
	return reference.ReconstructCompany(m.ID, m.Name, time.UnixMilli(m.CreatedAt), time.UnixMilli(m.UpdatedAt))
}

func DepartmentToModel(d *reference.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		CompanyID: d.CompanyID(),
		CreatedAt: d.CreatedAt().UnixMilli(),
		UpdatedAt: d.UpdatedAt().UnixMilli(),
	}
}

func DepartmentToDomain(m *models.DepartmentModel) *reference.Department {
	return reference.ReconstructDepartment(m.ID, m.Name, m.CompanyID, time.UnixMilli(m.CreatedAt), time.UnixMilli(m.UpdatedAt))
}

func DesignationToModel(d *reference.Designation) *models.DesignationModel {
	return &models.DesignationModel{
		ID:        d.ID(),
		Name:      d.Name(),
		CreatedAt: d.CreatedAt().UnixMilli(),
		UpdatedAt: d.UpdatedAt().UnixMilli(),
	}
}

func DesignationToDomain(m *models.DesignationModel) *reference.Designation {
	return reference.ReconstructDesignation(m.ID, m.Name, time.UnixMilli(m.CreatedAt), time.UnixMilli(m.UpdatedAt))
}

func PriorityToModel(p *reference.Priority) *models.PriorityModel {
	return &models.PriorityModel{
		ID:        p.ID(),
		Name:      p.Name(),
		SortOrder: p.SortOrder(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func PriorityToDomain(m *models.PriorityModel) *reference.Priority {
	return reference.ReconstructPriority(m.ID, m.Name, m.SortOrder, time.UnixMilli(m.CreatedAt), time.UnixMilli(m.UpdatedAt))
}
