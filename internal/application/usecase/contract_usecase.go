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

// ContractUseCase casos de uso CRUD para contratos de servicio.
type ContractUseCase struct {
	repo    repository.ContractRepository
	auditor *audit.Auditor
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository, auditor *audit.Auditor) *ContractUseCase {
	return &ContractUseCase{repo: repo, auditor: auditor}
}

// Create crea un contrato.
func (uc *ContractUseCase) Create(companyID, actorID string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.ContractStatusActive
	}
	contract := &entity.Contract{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Provider:    in.Provider,
		Description: in.Description,
		MonthlyCost: in.MonthlyCost,
		AnnualCost:  in.AnnualCost,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(contract); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionCreated, "contract", contract.ID, contract.Name)
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato de la empresa.
func (uc *ContractUseCase) GetByID(id, companyID string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	return toContractResponse(contract), nil
}

// List lista los contratos de la empresa.
func (uc *ContractUseCase) List(companyID string) ([]dto.ContractResponse, error) {
	contracts, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, *toContractResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial del contrato.
func (uc *ContractUseCase) Update(id, companyID, actorID string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		contract.Name = *in.Name
	}
	if in.Provider != nil {
		contract.Provider = *in.Provider
	}
	if in.Description != nil {
		contract.Description = *in.Description
	}
	if in.MonthlyCost != nil {
		contract.MonthlyCost = *in.MonthlyCost
	}
	if in.AnnualCost != nil {
		contract.AnnualCost = *in.AnnualCost
	}
	if in.StartDate != nil {
		contract.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		contract.EndDate = in.EndDate
	}
	if in.Status != nil {
		contract.Status = *in.Status
	}
	contract.UpdatedAt = time.Now()

	if err := uc.repo.Update(contract); err != nil {
		return nil, err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionUpdated, "contract", contract.ID, contract.Name)
	return toContractResponse(contract), nil
}

// Delete elimina un contrato de la empresa.
func (uc *ContractUseCase) Delete(id, companyID, actorID string) error {
	contract, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if contract == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id, companyID); err != nil {
		return err
	}
	uc.auditor.Record(companyID, actorID, entity.ActionDeleted, "contract", contract.ID, contract.Name)
	return nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Provider:    c.Provider,
		Description: c.Description,
		MonthlyCost: c.MonthlyCost,
		AnnualCost:  c.AnnualCost,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
