package migration

import (
	"deskflow/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
		&models.DepartmentModel{},
		&models.DesignationModel{},
		&models.PriorityModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.WorkAnalysisModel{},
		&models.WorkLogModel{},
		&models.ApprovalModel{},
		&models.KVEntryModel{},
	}
}
