package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest alta de un registro de mantenimiento sobre un activo.
type CreateMaintenanceRequest struct {
	AssetID      string          `json:"assetId" validate:"required,uuid4"`
	Description  string          `json:"description" validate:"required,max=500"`
	Technician   string          `json:"technician" validate:"omitempty,max=120"`
	Cost         decimal.Decimal `json:"cost"`
	ScheduledFor *time.Time      `json:"scheduledFor,omitempty"`
	Status       string          `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

// UpdateMaintenanceRequest actualización parcial de un registro de mantenimiento.
type UpdateMaintenanceRequest struct {
	Description  *string          `json:"description,omitempty"`
	Technician   *string          `json:"technician,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	ScheduledFor *time.Time       `json:"scheduledFor,omitempty"`
	CompletedAt  *time.Time       `json:"completedAt,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

// MaintenanceResponse registro de mantenimiento expuesto por la API.
type MaintenanceResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"companyId"`
	AssetID      string          `json:"assetId"`
	Description  string          `json:"description"`
	Technician   string          `json:"technician,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	ScheduledFor *time.Time      `json:"scheduledFor,omitempty"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
