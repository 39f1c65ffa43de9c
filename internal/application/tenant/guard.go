// Package tenant resuelve el tenant efectivo de cada petición y refuerza el
// aislamiento entre empresas: ninguna operación tenant-scoped procede sin una
// membresía del llamador en la empresa o un modo soporte activo sobre ella.
package tenant

import (
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// Guard decide si unos claims pueden operar sobre una empresa.
type Guard struct {
	memberships repository.UserCompanyRepository
}

// NewGuard construye el guard.
func NewGuard(memberships repository.UserCompanyRepository) *Guard {
	return &Guard{memberships: memberships}
}

// Authorize devuelve nil si el llamador puede operar sobre companyID.
//
// Con modo soporte activo, la empresa impersonada reemplaza a las membresías
// propias como tenant efectivo (solo para super_admin). Sin modo soporte, se
// exige una membresía en user_companies; un super_admin sin membresía ni modo
// soporte NO accede. El acceso cruzado es ErrForbidden, nunca un 404.
func (g *Guard) Authorize(claims *jwt.Claims, companyID string) error {
	if companyID == "" {
		return domain.ErrInvalidInput
	}
	if claims.InSupportMode() {
		if claims.Role == entity.RoleSuperAdmin && claims.SupportMode.CompanyID == companyID {
			return nil
		}
		return domain.ErrForbidden
	}
	role, err := g.memberships.GetRole(claims.UserID, companyID)
	if err != nil {
		return err
	}
	if role == "" {
		return domain.ErrForbidden
	}
	return nil
}

// EffectiveCompany devuelve el tenant efectivo cuando la petición no trae
// companyId explícito: la empresa del modo soporte si está activo, o la única
// membresía del usuario. Con cero o varias membresías devuelve ErrInvalidInput
// (el cliente debe indicar la empresa).
func (g *Guard) EffectiveCompany(claims *jwt.Claims) (string, error) {
	if claims.InSupportMode() {
		return claims.SupportMode.CompanyID, nil
	}
	memberships, err := g.memberships.ListMemberships(claims.UserID)
	if err != nil {
		return "", err
	}
	if len(memberships) != 1 {
		return "", domain.ErrInvalidInput
	}
	return memberships[0].Company.ID, nil
}
