package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// AssetUseCase casos de uso CRUD para activos de TI. Toda operación llega aquí
// ya autorizada para companyID; este caso de uso añade las reglas de negocio
// (límite del plan, empresa activa) y la auditoría post-commit.
type AssetUseCase struct {
	repo        repository.AssetRepository
	companyRepo repository.CompanyRepository
	auditor     *audit.Auditor
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, companyRepo repository.CompanyRepository, auditor *audit.Auditor) *AssetUseCase {
	return &AssetUseCase{repo: repo, companyRepo: companyRepo, auditor: auditor}
}

// Create crea un activo. Respeta MaxAssets del plan de la empresa.
func (uc *AssetUseCase) Create(companyID, actorID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if !entity.IsValidAssetType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de activo desconocido", domain.ErrInvalidInput)
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !company.IsActive {
		return nil, domain.ErrCompanyInactive
	}
	count, err := uc.repo.CountByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if company.MaxAssets > 0 && count >= company.MaxAssets {
		return nil, domain.ErrAssetLimitReached
	}

	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.AssetStatusActive
	}
	asset := &entity.Asset{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Type:        in.Type,
		Status:      status,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,

		SerialNumber:   in.SerialNumber,
		Model:          in.Model,
		Brand:          in.Brand,
		Location:       in.Location,
		PurchaseDate:   in.PurchaseDate,
		WarrantyExpiry: in.WarrantyExpiry,

		URL:     in.URL,
		Version: in.Version,

		MonthlyCost: in.MonthlyCost,
		AnnualCost:  in.AnnualCost,

		DomainCost:    in.DomainCost,
		DomainExpiry:  in.DomainExpiry,
		SSLCost:       in.SSLCost,
		SSLExpiry:     in.SSLExpiry,
		HostingCost:   in.HostingCost,
		HostingExpiry: in.HostingExpiry,
		ServerCost:    in.ServerCost,
		ServerExpiry:  in.ServerExpiry,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionCreated, "asset", asset.ID, asset.Name)
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo de la empresa.
func (uc *AssetUseCase) GetByID(id, companyID string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return toAssetResponse(asset), nil
}

// List lista los activos de la empresa.
func (uc *AssetUseCase) List(companyID string) ([]dto.AssetResponse, error) {
	assets, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, *toAssetResponse(a))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
func (uc *AssetUseCase) Update(id, companyID, actorID string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		asset.Name = *in.Name
	}
	if in.Status != nil {
		asset.Status = *in.Status
	}
	if in.Description != nil {
		asset.Description = *in.Description
	}
	if in.AssignedTo != nil {
		asset.AssignedTo = *in.AssignedTo
	}
	if in.SerialNumber != nil {
		asset.SerialNumber = *in.SerialNumber
	}
	if in.Model != nil {
		asset.Model = *in.Model
	}
	if in.Brand != nil {
		asset.Brand = *in.Brand
	}
	if in.Location != nil {
		asset.Location = *in.Location
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = in.PurchaseDate
	}
	if in.WarrantyExpiry != nil {
		asset.WarrantyExpiry = in.WarrantyExpiry
	}
	if in.URL != nil {
		asset.URL = *in.URL
	}
	if in.Version != nil {
		asset.Version = *in.Version
	}
	if in.MonthlyCost != nil {
		asset.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		asset.AnnualCost = *in.AnnualCost
	}
	if in.DomainCost != nil {
		asset.DomainCost = *in.DomainCost
	}
	if in.DomainExpiry != nil {
		asset.DomainExpiry = in.DomainExpiry
	}
	if in.SSLCost != nil {
		asset.SSLCost = *in.SSLCost
	}
	if in.SSLExpiry != nil {
		asset.SSLExpiry = in.SSLExpiry
	}
	if in.HostingCost != nil {
		asset.HostingCost = *in.HostingCost
	}
	if in.HostingExpiry != nil {
		asset.HostingExpiry = in.HostingExpiry
	}
	if in.ServerCost != nil {
		asset.ServerCost = *in.ServerCost
	}
	if in.ServerExpiry != nil {
		asset.ServerExpiry = in.ServerExpiry
	}
	asset.UpdatedAt = time.Now()

	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionUpdated, "asset", asset.ID, asset.Name)
	return toAssetResponse(asset), nil
}

// Delete elimina un activo de la empresa.
func (uc *AssetUseCase) Delete(id, companyID, actorID string) error {
	asset, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id, companyID); err != nil {
		return err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionDeleted, "asset", asset.ID, asset.Name)
	return nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Name:        a.Name,
		Type:        a.Type,
		Status:      a.Status,
		Description: a.Description,
		AssignedTo:  a.AssignedTo,

		SerialNumber:   a.SerialNumber,
		Model:          a.Model,
		Brand:          a.Brand,
		Location:       a.Location,
		PurchaseDate:   a.PurchaseDate,
		WarrantyExpiry: a.WarrantyExpiry,

		URL:     a.URL,
		Version: a.Version,

		MonthlyCost: a.MonthlyCost,
		AnnualCost:  a.AnnualCost,

		DomainCost:    a.DomainCost,
		DomainExpiry:  a.DomainExpiry,
		SSLCost:       a.SSLCost,
		SSLExpiry:     a.SSLExpiry,
		HostingCost:   a.HostingCost,
		HostingExpiry: a.HostingExpiry,
		ServerCost:    a.ServerCost,
		ServerExpiry:  a.ServerExpiry,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
