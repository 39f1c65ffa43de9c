package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
)

// resolveCompany determina y autoriza la empresa sobre la que opera la
// petición. El cliente puede indicarla con ?companyId=; si no lo hace se
// resuelve la empresa efectiva del token (modo soporte o membresía única).
// En ambos casos se pasa por el guard: sin membresía ni modo soporte no hay
// acceso.
func resolveCompany(c *fiber.Ctx, guard *tenant.Guard) (string, error) {
	claims := GetClaims(c)
	if claims == nil {
		return "", domain.ErrUnauthorized
	}
	companyID := c.Query("companyId")
	if companyID == "" {
		var err error
		companyID, err = guard.EffectiveCompany(claims)
		if err != nil {
			return "", err
		}
	}
	if err := guard.Authorize(claims, companyID); err != nil {
		return "", err
	}
	return companyID, nil
}
