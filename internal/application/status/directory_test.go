package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/domain/status"
	"deskflow/internal/shared/logger"
)

type mockStatusRepository struct {
	SaveFunc    func(ctx context.Context, st *status.Status) error
	UpdateFunc  func(ctx context.Context, st *status.Status) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*status.Status, error)
	ListAllFunc func(ctx context.Context) ([]*status.Status, error)
}

func (m *mockStatusRepository) Save(ctx context.Context, st *status.Status) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, st)
	}
	return nil
}

func (m *mockStatusRepository) Update(ctx context.Context, st *status.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, st)
	}
	return nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, id uint) (*status.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStatusRepository) ListAll(ctx context.Context) ([]*status.Status, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockCache struct {
	GetAllFunc     func(ctx context.Context) ([]*status.Status, error)
	SetAllFunc     func(ctx context.Context, statuses []*status.Status) error
	InvalidateFunc func(ctx context.Context) error
	invalidations  int
}

func (m *mockCache) GetAll(ctx context.Context) ([]*status.Status, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCache) SetAll(ctx context.Context, statuses []*status.Status) error {
	if m.SetAllFunc != nil {
		return m.SetAllFunc(ctx, statuses)
	}
	return nil
}

func (m *mockCache) Invalidate(ctx context.Context) error {
	m.invalidations++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

func mustStatus(t *testing.T, id uint, name string, sortOrder int, companyID *uint) *status.Status {
	t.Helper()
	st, err := status.ReconstructStatus(id, name, sortOrder, companyID, time.Now(), time.Now())
	require.NoError(t, err)
	return st
}

func testStatuses(t *testing.T) []*status.Status {
	return []*status.Status{
		mustStatus(t, 1, "Raised", 1, nil),
		mustStatus(t, 2, "Material Request", 2, nil),
		mustStatus(t, 3, "Work Completed", 5, nil),
	}
}

func TestDirectory_ListAll_CacheHit(t *testing.T) {
	repoCalled := false
	repo := &mockStatusRepository{
		ListAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			repoCalled = true
			return nil, nil
		},
	}
	cache := &mockCache{
		GetAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			return testStatuses(t), nil
		},
	}

	dir := NewDirectory(repo, cache, logger.NewNop())
	statuses, err := dir.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, statuses, 3)
	assert.False(t, repoCalled)
}

func TestDirectory_ListAll_CacheMissFillsCache(t *testing.T) {
	var stored []*status.Status
	repo := &mockStatusRepository{
		ListAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			return testStatuses(t), nil
		},
	}
	cache := &mockCache{
		SetAllFunc: func(ctx context.Context, statuses []*status.Status) error {
			stored = statuses
			return nil
		},
	}

	dir := NewDirectory(repo, cache, logger.NewNop())
	statuses, err := dir.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, statuses, 3)
	assert.Len(t, stored, 3)
}

func TestDirectory_ListAll_CacheFailureFallsBack(t *testing.T) {
	repo := &mockStatusRepository{
		ListAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			return testStatuses(t), nil
		},
	}
	cache := &mockCache{
		GetAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			return nil, errors.New("redis down")
		},
	}

	dir := NewDirectory(repo, cache, logger.NewNop())
	statuses, err := dir.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, statuses, 3)
}

func TestDirectory_Resolve(t *testing.T) {
	repo := &mockStatusRepository{
		ListAllFunc: func(ctx context.Context) ([]*status.Status, error) {
			return testStatuses(t), nil
		},
	}

	dir := NewDirectory(repo, nil, logger.NewNop())

	res, err := dir.Resolve(context.Background(), "material request", nil)
	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, uint(2), res.StatusID)

	res, err = dir.Resolve(context.Background(), "Escalated", nil)
	require.NoError(t, err)
	assert.False(t, res.Resolved)
}

func TestDirectory_WritesInvalidateCache(t *testing.T) {
	repo := &mockStatusRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*status.Status, error) {
			return mustStatus(t, id, "Raised", 1, nil), nil
		},
	}
	cache := &mockCache{}

	dir := NewDirectory(repo, cache, logger.NewNop())

	_, err := dir.Create(context.Background(), "On Hold", 9, nil)
	require.NoError(t, err)

	_, err = dir.Update(context.Background(), 1, "Reopened", 1)
	require.NoError(t, err)

	require.NoError(t, dir.Delete(context.Background(), 1))
	assert.Equal(t, 3, cache.invalidations)
}
