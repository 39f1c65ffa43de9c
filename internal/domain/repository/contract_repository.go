package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract (DIP).
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id, companyID string) (*entity.Contract, error)
	ListByCompany(companyID string) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	Delete(id, companyID string) error
}
