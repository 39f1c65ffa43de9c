package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
)

// AuthHandler maneja registro, login, logout y el usuario actual. El token de
// sesión viaja en una cookie HTTP-only; el cuerpo JSON nunca lo incluye.
type AuthHandler struct {
	uc            *auth.AuthUseCase
	secureCookies bool
}

// NewAuthHandler construye el handler de auth. secureCookies debe ser true en
// producción (la cookie solo viaja por HTTPS).
func NewAuthHandler(uc *auth.AuthUseCase, secureCookies bool) *AuthHandler {
	return &AuthHandler{uc: uc, secureCookies: secureCookies}
}

// Register godoc
// @Summary      Registrar empresa y primer administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos de la empresa y del administrador"
// @Success      200   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	setSessionCookie(c, out.Token, h.secureCookies)
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y contraseña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	setSessionCookie(c, out.Token, h.secureCookies)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  "sesión cerrada"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// El logout es del lado del cliente: se borra la cookie y el token queda
	// huérfano hasta su expiración (no hay lista de revocación).
	clearSessionCookie(c, h.secureCookies)
	return c.SendStatus(fiber.StatusOK)
}

// CurrentUser godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	claims := GetClaims(c)
	out, err := h.uc.CurrentUser(claims)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
