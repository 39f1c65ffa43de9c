package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest alta de contrato (companyId inyectado por el handler).
type CreateContractRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=120"`
	Provider    string          `json:"provider" validate:"omitempty,max=120"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Status      string          `json:"status" validate:"omitempty,oneof=active expired cancelled"`
}

// UpdateContractRequest actualización parcial de contrato.
type UpdateContractRequest struct {
	Name        *string          `json:"name,omitempty"`
	Provider    *string          `json:"provider,omitempty"`
	Description *string          `json:"description,omitempty"`
	MonthlyCost *decimal.Decimal `json:"monthlyCost,omitempty"`
	AnnualCost  *decimal.Decimal `json:"annualCost,omitempty"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// ContractResponse contrato expuesto por la API.
type ContractResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Name        string          `json:"name"`
	Provider    string          `json:"provider,omitempty"`
	Description string          `json:"description,omitempty"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
