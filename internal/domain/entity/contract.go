package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un contrato.
const (
	ContractStatusActive    = "active"
	ContractStatusExpired   = "expired"
	ContractStatusCancelled = "cancelled"
)

// Contract contrato de servicio con un proveedor (soporte, conectividad,
// mantenimiento tercerizado). Tenant-scoped.
type Contract struct {
	ID          string
	CompanyID   string
	Name        string
	Provider    string
	Description string
	MonthlyCost decimal.Decimal
	AnnualCost  decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string // active | expired | cancelled
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
