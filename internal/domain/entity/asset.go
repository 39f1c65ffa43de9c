package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de activo. El tipo decide qué subcampos aplican: los físicos llevan
// serial/modelo/ubicación y los de aplicación llevan url/versión más los
// cuatro pares de costo+vencimiento de infraestructura.
const (
	AssetTypePhysical    = "physical"
	AssetTypeApplication = "application"
	AssetTypeLicense     = "license"
	AssetTypeContract    = "contract"
)

// Estados de un activo.
const (
	AssetStatusActive      = "active"
	AssetStatusInactive    = "inactive"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

// IsValidAssetType indica si el tipo pertenece al conjunto conocido.
func IsValidAssetType(t string) bool {
	switch t {
	case AssetTypePhysical, AssetTypeApplication, AssetTypeLicense, AssetTypeContract:
		return true
	}
	return false
}

// Asset representa un activo de TI de la empresa. Los costos ausentes se
// persisten como 0; las fechas ausentes como NULL.
type Asset struct {
	ID          string
	CompanyID   string
	Name        string
	Type        string // physical | application | license | contract
	Status      string // active | inactive | maintenance | retired
	Description string
	AssignedTo  string

	// Subcampos de activo físico
	SerialNumber   string
	Model          string
	Brand          string
	Location       string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time

	// Subcampos de aplicación
	URL     string
	Version string

	// Costos directos
	MonthlyCost decimal.Decimal
	AnnualCost  decimal.Decimal

	// Pares costo+vencimiento de infraestructura (aplicaciones web):
	// dominio, certificado SSL, hosting y servidor. Independientes entre sí.
	DomainCost    decimal.Decimal
	DomainExpiry  *time.Time
	SSLCost       decimal.Decimal
	SSLExpiry     *time.Time
	HostingCost   decimal.Decimal
	HostingExpiry *time.Time
	ServerCost    decimal.Decimal
	ServerExpiry  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InfraCost suma de los cuatro costos de infraestructura.
func (a *Asset) InfraCost() decimal.Decimal {
	return a.DomainCost.Add(a.SSLCost).Add(a.HostingCost).Add(a.ServerCost)
}

// TrackedExpiry fecha de vencimiento con su etiqueta, para el agregador de
// vencimientos del dashboard.
type TrackedExpiry struct {
	Field string // warranty | domain | ssl | hosting | server
	Date  *time.Time
}

// TrackedExpiries devuelve las fechas de vencimiento que el dashboard vigila,
// incluidas las que están en NULL (el agregador las ignora).
func (a *Asset) TrackedExpiries() []TrackedExpiry {
	return []TrackedExpiry{
		{Field: "warranty", Date: a.WarrantyExpiry},
		{Field: "domain", Date: a.DomainExpiry},
		{Field: "ssl", Date: a.SSLExpiry},
		{Field: "hosting", Date: a.HostingExpiry},
		{Field: "server", Date: a.ServerExpiry},
	}
}
