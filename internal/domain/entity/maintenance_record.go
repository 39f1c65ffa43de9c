package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro de mantenimiento.
const (
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

// MaintenanceRecord intervención de mantenimiento sobre un Asset concreto.
// Tenant-scoped; el costo es un gasto puntual.
type MaintenanceRecord struct {
	ID           string
	CompanyID    string
	AssetID      string
	Description  string
	Technician   string
	Cost         decimal.Decimal
	ScheduledFor *time.Time
	CompletedAt  *time.Time
	Status       string // scheduled | in_progress | completed | cancelled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
