// Package reference holds the master data tickets are classified by:
// companies, departments, designations and priorities. These are flat
// admin-maintained lookup tables.
package reference

import (
	"strings"
	"time"

	"deskflow/internal/shared/errors"
)

type Company struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewCompany(name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("company name is required")
	}
	now := time.Now()
	return &Company{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructCompany(id uint, name string, createdAt, updatedAt time.Time) *Company {
	return &Company{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Company) ID() uint             { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }
func (c *Company) SetID(id uint)        { c.id = id }

func (c *Company) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("company name is required")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

type Department struct {
	id        uint
	name      string
	companyID *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name string, companyID *uint) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("department name is required")
	}
	now := time.Now()
	return &Department{name: name, companyID: companyID, createdAt: now, updatedAt: now}, nil
}

func ReconstructDepartment(id uint, name string, companyID *uint, createdAt, updatedAt time.Time) *Department {
	return &Department{id: id, name: name, companyID: companyID, createdAt: createdAt, updatedAt: updatedAt}
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) CompanyID() *uint     { return d.companyID }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }
func (d *Department) SetID(id uint)        { d.id = id }

func (d *Department) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("department name is required")
	}
	d.name = name
	d.updatedAt = time.Now()
	return nil
}

type Designation struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewDesignation(name string) (*Designation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("designation name is required")
	}
	now := time.Now()
	return &Designation{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructDesignation(id uint, name string, createdAt, updatedAt time.Time) *Designation {
	return &Designation{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (d *Designation) ID() uint             { return d.id }
func (d *Designation) Name() string         { return d.name }
func (d *Designation) CreatedAt() time.Time { return d.createdAt }
func (d *Designation) UpdatedAt() time.Time { return d.updatedAt }
func (d *Designation) SetID(id uint)        { d.id = id }

type Priority struct {
	id        uint
	name      string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewPriority(name string, sortOrder int) (*Priority, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("priority name is required")
	}
	now := time.Now()
	return &Priority{name: name, sortOrder: sortOrder, createdAt: now, updatedAt: now}, nil
}

func ReconstructPriority(id uint, name string, sortOrder int, createdAt, updatedAt time.Time) *Priority {
	return &Priority{id: id, name: name, sortOrder: sortOrder, createdAt: createdAt, updatedAt: updatedAt}
}

func (p *Priority) ID() uint             { return p.id }
func (p *Priority) Name() string         { return p.name }
func (p *Priority) SortOrder() int       { return p.sortOrder }
func (p *Priority) CreatedAt() time.Time { return p.createdAt }
func (p *Priority) UpdatedAt() time.Time { return p.updatedAt }
func (p *Priority) SetID(id uint)        { p.id = id }
