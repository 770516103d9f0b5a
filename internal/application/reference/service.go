// Package reference is the thin application service over the master data
// lookup tables. Admin-only writes; everyone reads.
package reference

import (
	"context"

	"deskflow/internal/domain/reference"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type Service struct {
	companies    reference.CompanyRepository
	departments  reference.DepartmentRepository
	designations reference.DesignationRepository
	priorities   reference.PriorityRepository
	logger       logger.Interface
}

func NewService(
	companies reference.CompanyRepository,
	departments reference.DepartmentRepository,
	designations reference.DesignationRepository,
	priorities reference.PriorityRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		companies:    companies,
		departments:  departments,
		designations: designations,
		priorities:   priorities,
		logger:       logger,
	}
}

func (s *Service) ListCompanies(ctx context.Context) ([]*reference.Company, error) {
	return s.companies.ListAll(ctx)
}

func (s *Service) CreateCompany(ctx context.Context, name string) (*reference.Company, error) {
	c, err := reference.NewCompany(name)
	if err != nil {
		return nil, err
	}
	if err := s.companies.Save(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("company already exists: " + name)
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) RenameCompany(ctx context.Context, id uint, name string) (*reference.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("company not found")
	}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCompany(ctx context.Context, id uint) error {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.NewNotFoundError("company not found")
	}
	return s.companies.Delete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]*reference.Department, error) {
	return s.departments.ListAll(ctx)
}

func (s *Service) CreateDepartment(ctx context.Context, name string, companyID *uint) (*reference.Department, error) {
	d, err := reference.NewDepartment(name, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.departments.Save(ctx, d); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("department already exists: " + name)
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) RenameDepartment(ctx context.Context, id uint, name string) (*reference.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("department not found")
	}
	if err := d.Rename(name); err != nil {
		return nil, err
	}
	if err := s.departments.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id uint) error {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return errors.NewNotFoundError("department not found")
	}
	return s.departments.Delete(ctx, id)
}

func (s *Service) ListDesignations(ctx context.Context) ([]*reference.Designation, error) {
	return s.designations.ListAll(ctx)
}

func (s *Service) CreateDesignation(ctx context.Context, name string) (*reference.Designation, error) {
	d, err := reference.NewDesignation(name)
	if err != nil {
		return nil, err
	}
	if err := s.designations.Save(ctx, d); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("designation already exists: " + name)
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDesignation(ctx context.Context, id uint) error {
	d, err := s.designations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return errors.NewNotFoundError("designation not found")
	}
	return s.designations.Delete(ctx, id)
}

func (s *Service) ListPriorities(ctx context.Context) ([]*reference.Priority, error) {
	return s.priorities.ListAll(ctx)
}

func (s *Service) CreatePriority(ctx context.Context, name string, sortOrder int) (*reference.Priority, error) {
	p, err := reference.NewPriority(name, sortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.priorities.Save(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("priority already exists: " + name)
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePriority(ctx context.Context, id uint) error {
	p, err := s.priorities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.NewNotFoundError("priority not found")
	}
	return s.priorities.Delete(ctx, id)
}
