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

// MaintenanceUseCase casos de uso CRUD para registros de mantenimiento.
type MaintenanceUseCase struct {
	repo      repository.MaintenanceRepository
	assetRepo repository.AssetRepository
	auditor   *audit.Auditor
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, assetRepo repository.AssetRepository, auditor *audit.Auditor) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, assetRepo: assetRepo, auditor: auditor}
}

// Create crea un registro de mantenimiento. El activo referenciado debe
// existir y pertenecer a la misma empresa.
func (uc *MaintenanceUseCase) Create(companyID, actorID string, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	asset, err := uc.assetRepo.GetByID(in.AssetID, companyID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: el activo no existe en esta empresa", domain.ErrInvalidInput)
	}

	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.MaintenanceStatusScheduled
	}
	record := &entity.MaintenanceRecord{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		AssetID:      in.AssetID,
		Description:  in.Description,
		Technician:   in.Technician,
		Cost:         in.Cost,
		ScheduledFor: in.ScheduledFor,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionCreated, "maintenance_record", record.ID, record.Description)
	return toMaintenanceResponse(record), nil
}

// GetByID obtiene un registro de mantenimiento de la empresa.
func (uc *MaintenanceUseCase) GetByID(id, companyID string) (*dto.MaintenanceResponse, error) {
	record, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(record), nil
}

// List lista los registros de mantenimiento de la empresa.
func (uc *MaintenanceUseCase) List(companyID string) ([]dto.MaintenanceResponse, error) {
	records, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaintenanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toMaintenanceResponse(r))
	}
	return out, nil
}

// Update aplica una actualización parcial del registro.
func (uc *MaintenanceUseCase) Update(id, companyID, actorID string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	record, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		record.Description = *in.Description
	}
	if in.Technician != nil {
		record.Technician = *in.Technician
	}
	if in.Cost != nil {
		record.Cost = *in.Cost
	}
	if in.ScheduledFor != nil {
		record.ScheduledFor = in.ScheduledFor
	}
	if in.CompletedAt != nil {
		record.CompletedAt = in.CompletedAt
	}
	if in.Status != nil {
		record.Status = *in.Status
	}
	record.UpdatedAt = time.Now()

	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionUpdated, "maintenance_record", record.ID, record.Description)
	return toMaintenanceResponse(record), nil
}

// Delete elimina un registro de mantenimiento de la empresa.
func (uc *MaintenanceUseCase) Delete(id, companyID, actorID string) error {
	record, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id, companyID); err != nil {
		return err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionDeleted, "maintenance_record", record.ID, record.Description)
	return nil
}

func toMaintenanceResponse(r *entity.MaintenanceRecord) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		AssetID:      r.AssetID,
		Description:  r.Description,
		Technician:   r.Technician,
		Cost:         r.Cost,
		ScheduledFor: r.ScheduledFor,
		CompletedAt:  r.CompletedAt,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
