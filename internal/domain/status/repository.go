package status

import "context"

// StatusRepository lists entries ascending by sort order. An empty directory
// is a valid result.
type StatusRepository interface {
	Save(ctx context.Context, status *Status) error
	Update(ctx context.Context, status *Status) error
	Delete(ctx context.Context, statusID uint) error
	GetByID(ctx context.Context, statusID uint) (*Status, error)
	ListAll(ctx context.Context) ([]*Status, error)
}
