package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset (DIP).
// Toda consulta de lectura está acotada por companyID: el aislamiento de
// tenant se refuerza también en la capa SQL, no solo en la autorización.
type AssetRepository interface {
	Create(asset *entity.Asset) error
	// GetByID devuelve el activo solo si pertenece a la empresa indicada.
	GetByID(id, companyID string) (*entity.Asset, error)
	ListByCompany(companyID string) ([]*entity.Asset, error)
	CountByCompany(companyID string) (int, error)
	Update(asset *entity.Asset) error
	Delete(id, companyID string) error
}
