package entity

import "time"

// Roles válidos. El rol del token es un filtro grueso; las operaciones
// sensibles revalidan el rol contra la base antes de autorizar.
const (
	RoleSuperAdmin     = "super_admin"
	RoleTechnicalAdmin = "technical_admin"
	RoleManagerOwner   = "manager_owner"
)

// IsValidRole indica si el rol pertenece al conjunto conocido.
func IsValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleTechnicalAdmin, RoleManagerOwner:
		return true
	}
	return false
}

// User representa un usuario del sistema. La pertenencia a empresas se modela
// aparte en UserCompany (un usuario puede tener roles distintos por empresa).
type User struct {
	ID           string
	Email        string // único en todo el sistema
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt, nunca viaja en respuestas
	Role         string // rol global: super_admin | technical_admin | manager_owner
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar en el registro de actividad.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
