package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// setSessionCookie escribe el token de sesión en la cookie HTTP-only. Con
// secure en true la cookie solo viaja por HTTPS (producción).
func setSessionCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(jwt.TokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie invalida la cookie de sesión en el cliente.
func clearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
