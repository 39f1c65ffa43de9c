package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	Update(company *entity.Company) error
	// List devuelve todas las empresas (solo rutas de administración).
	List(limit, offset int) ([]*entity.Company, error)
}

// UserCompanyRepository puerto para las membresías usuario-empresa.
type UserCompanyRepository interface {
	Create(link *entity.UserCompany) error
	// GetRole devuelve el rol del usuario en la empresa, o "" si no es miembro.
	GetRole(userID, companyID string) (string, error)
	// ListMemberships devuelve las empresas del usuario con su rol en cada una.
	ListMemberships(userID string) ([]*entity.Membership, error)
	CountByCompany(companyID string) (int, error)
}
