package mappers

import (
	"time"

	"deskflow/internal/domain/status"
	"deskflow/internal/infrastructure/persistence/models"
)

type StatusMapper interface {
	ToModel(st *status.Status) *models.StatusModel
	ToDomain(model *models.StatusModel) (*status.Status, error)
}

type StatusMapperImpl struct{}

func NewStatusMapper() StatusMapper {
	return &StatusMapperImpl{}
}

func (m *StatusMapperImpl) ToModel(st *status.Status) *models.StatusModel {
	return &models.StatusModel{
		ID:        st.ID(),
		Name:      st.Name(),
		SortOrder: st.SortOrder(),
		CompanyID: st.CompanyID(),
		CreatedAt: st.CreatedAt().UnixMilli(),
		UpdatedAt: st.UpdatedAt().UnixMilli(),
	}
}

func (m *StatusMapperImpl) ToDomain(model *models.StatusModel) (*status.Status, error) {
	return status.ReconstructStatus(
		model.ID,
		model.Name,
		model.SortOrder,
		model.CompanyID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
