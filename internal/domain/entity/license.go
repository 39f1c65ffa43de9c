package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una licencia.
const (
	LicenseStatusActive    = "active"
	LicenseStatusExpired   = "expired"
	LicenseStatusCancelled = "cancelled"
)

// License licencia de software con asientos y vencimiento. Tenant-scoped.
type License struct {
	ID          string
	CompanyID   string
	Name        string
	Vendor      string
	LicenseKey  string
	Seats       int
	MonthlyCost decimal.Decimal
	AnnualCost  decimal.Decimal
	ExpiryDate  *time.Time
	Status      string // active | expired | cancelled
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
