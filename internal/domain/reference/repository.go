package reference

import "context"

type CompanyRepository interface {
	Save(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	ListAll(ctx context.Context) ([]*Company, error)
}

type DepartmentRepository interface {
	Save(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	ListAll(ctx context.Context) ([]*Department, error)
}

type DesignationRepository interface {
	Save(ctx context.Context, designation *Designation) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Designation, error)
	ListAll(ctx context.Context) ([]*Designation, error)
}

type PriorityRepository interface {
	Save(ctx context.Context, priority *Priority) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Priority, error)
	ListAll(ctx context.Context) ([]*Priority, error)
}
