package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// MaintenanceRepository define el puerto de persistencia para MaintenanceRecord (DIP).
type MaintenanceRepository interface {
	Create(record *entity.MaintenanceRecord) error
	GetByID(id, companyID string) (*entity.MaintenanceRecord, error)
	ListByCompany(companyID string) ([]*entity.MaintenanceRecord, error)
	ListByAsset(assetID, companyID string) ([]*entity.MaintenanceRecord, error)
	Update(record *entity.MaintenanceRecord) error
	Delete(id, companyID string) error
}
