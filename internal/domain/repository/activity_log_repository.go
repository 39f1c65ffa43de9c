package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// ActivityLogRepository puerto de la bitácora de actividad. Deliberadamente
// append-only: no expone Update ni Delete (invariante de auditoría).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.ActivityLog, error)
}
