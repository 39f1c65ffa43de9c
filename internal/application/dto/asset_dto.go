package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest alta de un activo. El companyId NO viene del cliente:
// lo inyecta el handler desde la membresía del llamador.
type CreateAssetRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Type        string `json:"type" validate:"required,oneof=physical application license contract"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive maintenance retired"`
	Description string `json:"description" validate:"omitempty,max=500"`
	AssignedTo  string `json:"assignedTo" validate:"omitempty,max=120"`

	// Activo físico
	SerialNumber   string     `json:"serialNumber,omitempty"`
	Model          string     `json:"model,omitempty"`
	Brand          string     `json:"brand,omitempty"`
	Location       string     `json:"location,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`

	// Aplicación
	URL     string `json:"url,omitempty" validate:"omitempty,url"`
	Version string `json:"version,omitempty"`

	// Costos: ausentes = 0
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`

	DomainCost    decimal.Decimal `json:"domainCost"`
	DomainExpiry  *time.Time      `json:"domainExpiry,omitempty"`
	SSLCost       decimal.Decimal `json:"sslCost"`
	SSLExpiry     *time.Time      `json:"sslExpiry,omitempty"`
	HostingCost   decimal.Decimal `json:"hostingCost"`
	HostingExpiry *time.Time      `json:"hostingExpiry,omitempty"`
	ServerCost    decimal.Decimal `json:"serverCost"`
	ServerExpiry  *time.Time      `json:"serverExpiry,omitempty"`
}

// UpdateAssetRequest actualización parcial: solo los campos presentes se tocan.
type UpdateAssetRequest struct {
	Name        *string `json:"name,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`

	SerialNumber   *string    `json:"serialNumber,omitempty"`
	Model          *string    `json:"model,omitempty"`
	Brand          *string    `json:"brand,omitempty"`
	Location       *string    `json:"location,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`

	URL     *string `json:"url,omitempty"`
	Version *string `json:"version,omitempty"`

	MonthlyCost *decimal.Decimal `json:"monthlyCost,omitempty"`
	AnnualCost  *decimal.Decimal `json:"annualCost,omitempty"`

	DomainCost    *decimal.Decimal `json:"domainCost,omitempty"`
	DomainExpiry  *time.Time       `json:"domainExpiry,omitempty"`
	SSLCost       *decimal.Decimal `json:"sslCost,omitempty"`
	SSLExpiry     *time.Time       `json:"sslExpiry,omitempty"`
	HostingCost   *decimal.Decimal `json:"hostingCost,omitempty"`
	HostingExpiry *time.Time       `json:"hostingExpiry,omitempty"`
	ServerCost    *decimal.Decimal `json:"serverCost,omitempty"`
	ServerExpiry  *time.Time       `json:"serverExpiry,omitempty"`
}

// AssetResponse activo expuesto por la API.
type AssetResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`

	SerialNumber   string     `json:"serialNumber,omitempty"`
	Model          string     `json:"model,omitempty"`
	Brand          string     `json:"brand,omitempty"`
	Location       string     `json:"location,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`

	URL     string `json:"url,omitempty"`
	Version string `json:"version,omitempty"`

	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	AnnualCost  decimal.Decimal `json:"annualCost"`

	DomainCost    decimal.Decimal `json:"domainCost"`
	DomainExpiry  *time.Time      `json:"domainExpiry,omitempty"`
	SSLCost       decimal.Decimal `json:"sslCost"`
	SSLExpiry     *time.Time      `json:"sslExpiry,omitempty"`
	HostingCost   decimal.Decimal `json:"hostingCost"`
	HostingExpiry *time.Time      `json:"hostingExpiry,omitempty"`
	ServerCost    decimal.Decimal `json:"serverCost"`
	ServerExpiry  *time.Time      `json:"serverExpiry,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
