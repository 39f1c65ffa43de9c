package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLicenseRequest alta de licencia (companyId inyectado por el handler).
type CreateLicenseRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=120"`
	Vendor      string          `json:"vendor" validate:"omitempty,max=120"`
	LicenseKey  string          `json:"licenseKey" validate:"omitempty,max=200"`
	Seats       int             `json:"seats" validate:"omitempty,min=0"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	Status      string          `json:"status" validate:"omitempty,oneof=active expired cancelled"`
}

// UpdateLicenseRequest actualización parcial de licencia.
type UpdateLicenseRequest struct {
	Name        *string          `json:"name,omitempty"`
	Vendor      *string          `json:"vendor,omitempty"`
	LicenseKey  *string          `json:"licenseKey,omitempty"`
	Seats       *int             `json:"seats,omitempty"`
	MonthlyCost *decimal.Decimal `json:"monthlyCost,omitempty"`
	AnnualCost  *decimal.Decimal `json:"annualCost,omitempty"`
	ExpiryDate  *time.Time       `json:"expiryDate,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// LicenseResponse licencia expuesta por la API.
type LicenseResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Name        string          `json:"name"`
	Vendor      string          `json:"vendor,omitempty"`
	LicenseKey  string          `json:"licenseKey,omitempty"`
	Seats       int             `json:"seats"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
