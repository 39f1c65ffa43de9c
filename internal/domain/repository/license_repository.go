package repository

import "github.com/SocketStudioec/ITAssetManager/internal/domain/entity"

// LicenseRepository define el puerto de persistencia para License (DIP).
type LicenseRepository interface {
	Create(license *entity.License) error
	GetByID(id, companyID string) (*entity.License, error)
	ListByCompany(companyID string) ([]*entity.License, error)
	Update(license *entity.License) error
	Delete(id, companyID string) error
}
