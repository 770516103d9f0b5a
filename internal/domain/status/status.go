// Package status holds the ticket status directory: the free-text status
// labels the workflow resolves against. Names are not unique across
// companies; a nil company scope marks a global entry.
package status

import (
	"fmt"
	"time"
)

type Status struct {
	id        uint
	name      string
	sortOrder int
	companyID *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewStatus(name string, sortOrder int, companyID *uint) (*Status, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("status name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("status name exceeds maximum length of 100 characters")
	}
	if sortOrder < 0 {
		return nil, fmt.Errorf("sort order cannot be negative")
	}

	now := time.Now()
	return &Status{
		name:      name,
		sortOrder: sortOrder,
		companyID: companyID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStatus(id uint, name string, sortOrder int, companyID *uint, createdAt, updatedAt time.Time) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("status name is required")
	}

	return &Status{
		id:        id,
		name:      name,
		sortOrder: sortOrder,
		companyID: companyID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) Name() string {
	return s.name
}

func (s *Status) SortOrder() int {
	return s.sortOrder
}

func (s *Status) CompanyID() *uint {
	return s.companyID
}

func (s *Status) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Status) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Rename(name string, sortOrder int) error {
	if len(name) == 0 {
		return fmt.Errorf("status name is required")
	}
	if sortOrder < 0 {
		return fmt.Errorf("sort order cannot be negative")
	}

	s.name = name
	s.sortOrder = sortOrder
	s.updatedAt = time.Now()
	return nil
}
