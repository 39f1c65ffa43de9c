package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// SessionCookie nombre de la cookie HTTP-only donde viaja el token de sesión.
const SessionCookie = "itam_session"

// LocalClaims clave de c.Locals donde el middleware deja los claims verificados.
const LocalClaims = "claims"

// AuthMiddleware valida el token de sesión y deja los claims en c.Locals.
// El token se busca primero en la cookie de sesión y, como respaldo para
// clientes de API, en el header Authorization con esquema Bearer.
func AuthMiddleware(tokens *jwt.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = strings.TrimSpace(parts[1])
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después de AuthMiddleware).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// GetUserID devuelve el UserID del contexto (después de AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// RequireSuperAdmin protege las rutas de administración de plataforma.
// El rol se reconfirma contra la base, no solo contra el claim: un token de
// 7 días puede sobrevivir a un cambio de rol.
func RequireSuperAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
		}
		user, err := users.GetByID(claims.UserID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil || user.Role != entity.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol super_admin"})
		}
		return c.Next()
	}
}

// RequireCompanyAccess verifica la membresía (o el modo soporte) del llamador
// sobre la empresa del parámetro :companyId. Debe usarse después de
// AuthMiddleware. El acceso cruzado responde 403, nunca 404.
func RequireCompanyAccess(guard *tenant.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
		}
		companyID := c.Params("companyId")
		if err := guard.Authorize(claims, companyID); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}
