package entity

import "time"

// Planes disponibles y sus límites de uso por defecto.
const (
	PlanPyme         = "pyme"
	PlanProfessional = "professional"
)

// Límites por plan. MaxUsers/MaxAssets se fijan al crear la empresa y pueden
// ajustarse después por un super_admin.
const (
	PymeMaxUsers          = 5
	PymeMaxAssets         = 50
	ProfessionalMaxUsers  = 25
	ProfessionalMaxAssets = 500
)

// Company representa una organización: la frontera del tenant. Toda entidad
// con CompanyID queda aislada dentro de su empresa; ninguna consulta puede
// devolver filas de una empresa que el llamador no tenga autorizada.
type Company struct {
	ID        string
	Name      string
	Plan      string // pyme | professional
	TaxID     string // RUC (13 dígitos, plan pyme) o cédula (10 dígitos, plan professional); único
	Email     string
	Phone     string
	Address   string
	MaxUsers  int
	MaxAssets int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultLimits devuelve los límites de uso del plan.
func DefaultLimits(plan string) (maxUsers, maxAssets int) {
	if plan == PlanProfessional {
		return ProfessionalMaxUsers, ProfessionalMaxAssets
	}
	return PymeMaxUsers, PymeMaxAssets
}

// UserCompany membresía usuario-empresa con rol propio por membresía.
type UserCompany struct {
	ID        string
	UserID    string
	CompanyID string
	Role      string // rol dentro de esta empresa
	CreatedAt time.Time
}

// Membership vista de una membresía con la empresa ya resuelta
// (respuesta de GET /companies).
type Membership struct {
	Company Company
	Role    string
}
