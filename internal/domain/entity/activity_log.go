package entity

import "time"

// Acciones registradas en la bitácora de actividad.
const (
	ActionCreated        = "created"
	ActionUpdated        = "updated"
	ActionDeleted        = "deleted"
	ActionRegistered     = "registered"
	ActionSupportEntered = "support_mode_entered"
	ActionSupportExited  = "support_mode_exited"
)

// ActivityLog entrada inmutable de la bitácora. Solo se inserta y se lista:
// nunca se actualiza ni se borra (invariante de auditoría). Cada mutación
// exitosa del negocio produce exactamente una entrada, después del commit.
type ActivityLog struct {
	ID         string
	CompanyID  string
	UserID     string
	Action     string // created | updated | deleted | registered | support_mode_*
	EntityType string // asset | contract | license | maintenance_record | company | user
	EntityID   string
	EntityName string
	CreatedAt  time.Time
}
