// Package status exposes the status directory: the ordered list of workflow
// statuses and name-based resolution against it. Reads go through an optional
// cache; every write invalidates it.
package status

import (
	"context"

	"deskflow/internal/domain/status"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

// Cache holds the full directory. A miss returns (nil, nil).
type Cache interface {
	GetAll(ctx context.Context) ([]*status.Status, error)
	SetAll(ctx context.Context, statuses []*status.Status) error
	Invalidate(ctx context.Context) error
}

type Directory struct {
	repo   status.StatusRepository
	cache  Cache
	logger logger.Interface
}

func NewDirectory(repo status.StatusRepository, cache Cache, logger logger.Interface) *Directory {
	return &Directory{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListAll returns the directory in ascending sort order, preferring the
// cache when available.
func (d *Directory) ListAll(ctx context.Context) ([]*status.Status, error) {
	if d.cache != nil {
		cached, err := d.cache.GetAll(ctx)
		if err != nil {
			d.logger.Warnw("status cache read failed, falling back to database", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	statuses, err := d.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.SetAll(ctx, statuses); err != nil {
			d.logger.Warnw("status cache write failed", "error", err)
		}
	}
	return statuses, nil
}

// Resolve maps a desired status name to a directory entry, preferring
// matches scoped to the given company. An unresolved name is not an error:
// the caller falls back to carrying the free-text label.
func (d *Directory) Resolve(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error) {
	statuses, err := d.ListAll(ctx)
	if err != nil {
		return status.Resolution{}, err
	}

	res := status.Resolve(statuses, desiredName, companyID)
	if !res.Resolved {
		d.logger.Warnw("status name not found in directory, keeping free-text label",
			"desired_name", desiredName)
	}
	return res, nil
}

func (d *Directory) Create(ctx context.Context, name string, sortOrder int, companyID *uint) (*status.Status, error) {
	st, err := status.NewStatus(name, sortOrder, companyID)
	if err != nil {
		return nil, err
	}
	if err := d.repo.Save(ctx, st); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("status already exists: " + name)
		}
		return nil, err
	}
	d.invalidate(ctx)
	return st, nil
}

func (d *Directory) Update(ctx context.Context, id uint, name string, sortOrder int) (*status.Status, error) {
	st, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("status not found")
	}

	if err := st.Rename(name, sortOrder); err != nil {
		return nil, err
	}
	if err := d.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	d.invalidate(ctx)
	return st, nil
}

func (d *Directory) Delete(ctx context.Context, id uint) error {
	st, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if st == nil {
		return errors.NewNotFoundError("status not found")
	}

	if err := d.repo.Delete(ctx, id); err != nil {
		return err
	}
	d.invalidate(ctx)
	return nil
}

func (d *Directory) invalidate(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Invalidate(ctx); err != nil {
		d.logger.Warnw("status cache invalidation failed", "error", err)
	}
}
