package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// LicenseUseCase casos de uso CRUD para licencias de software.
type LicenseUseCase struct {
	repo    repository.LicenseRepository
	auditor *audit.Auditor
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(repo repository.LicenseRepository, auditor *audit.Auditor) *LicenseUseCase {
	return &LicenseUseCase{repo: repo, auditor: auditor}
}

// Create crea una licencia.
func (uc *LicenseUseCase) Create(companyID, actorID string, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.LicenseStatusActive
	}
	license := &entity.License{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Vendor:      in.Vendor,
		LicenseKey:  in.LicenseKey,
		Seats:       in.Seats,
		MonthlyCost: in.MonthlyCost,
		AnnualCost:  in.AnnualCost,
		ExpiryDate:  in.ExpiryDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(license); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionCreated, "license", license.ID, license.Name)
	return toLicenseResponse(license), nil
}

// GetByID obtiene una licencia de la empresa.
func (uc *LicenseUseCase) GetByID(id, companyID string) (*dto.LicenseResponse, error) {
	license, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	return toLicenseResponse(license), nil
}

// List lista las licencias de la empresa.
func (uc *LicenseUseCase) List(companyID string) ([]dto.LicenseResponse, error) {
	licenses, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LicenseResponse, 0, len(licenses))
	for _, l := range licenses {
		out = append(out, *toLicenseResponse(l))
	}
	return out, nil
}

// Update aplica una actualización parcial de la licencia.
func (uc *LicenseUseCase) Update(id, companyID, actorID string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	license, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		license.Name = *in.Name
	}
	if in.Vendor != nil {
		license.Vendor = *in.Vendor
	}
	if in.LicenseKey != nil {
		license.LicenseKey = *in.LicenseKey
	}
	if in.Seats != nil {
		license.Seats = *in.Seats
	}
	if in.MonthlyCost != nil {
		license.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		license.AnnualCost = *in.AnnualCost
	}
	if in.ExpiryDate != nil {
		license.ExpiryDate = in.ExpiryDate
	}
	if in.Status != nil {
		license.Status = *in.Status
	}
	license.UpdatedAt = time.Now()

	if err := uc.repo.Update(license); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionUpdated, "license", license.ID, license.Name)
	return toLicenseResponse(license), nil
}

// Delete elimina una licencia de la empresa.
func (uc *LicenseUseCase) Delete(id, companyID, actorID string) error {
	license, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if license == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id, companyID); err != nil {
		return err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionDeleted, "license", license.ID, license.Name)
	return nil
}

func toLicenseResponse(l *entity.License) *dto.LicenseResponse {
	return &dto.LicenseResponse{
		ID:          l.ID,
		CompanyID:   l.CompanyID,
		Name:        l.Name,
		Vendor:      l.Vendor,
		LicenseKey:  l.LicenseKey,
		Seats:       l.Seats,
		MonthlyCost: l.MonthlyCost,
		AnnualCost:  l.AnnualCost,
		ExpiryDate:  l.ExpiryDate,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
