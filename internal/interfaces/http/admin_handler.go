package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// AdminHandler rutas de administración de plataforma (solo super_admin):
// listado global de empresas y entrada/salida del modo soporte.
type AdminHandler struct {
	authUC        *auth.AuthUseCase
	companyUC     *usecase.CompanyUseCase
	tokens        *jwt.Service
	secureCookies bool
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(authUC *auth.AuthUseCase, companyUC *usecase.CompanyUseCase, tokens *jwt.Service, secureCookies bool) *AdminHandler {
	return &AdminHandler{authUC: authUC, companyUC: companyUC, tokens: tokens, secureCookies: secureCookies}
}

// ListCompanies godoc
// @Summary      Listar todas las empresas de la plataforma
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "máximo de empresas (default 20, máx 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/companies [get]
func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.companyUC.ListAll(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// respondReissued rota la cookie de sesión con el token reemitido y responde
// con el usuario según los claims nuevos.
func (h *AdminHandler) respondReissued(c *fiber.Ctx, token string) error {
	setSessionCookie(c, token, h.secureCookies)
	claims, err := h.tokens.Verify(token)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.authUC.CurrentUser(claims)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EnterSupportMode godoc
// @Summary      Entrar en modo soporte sobre una empresa
// @Tags         admin
// @Produce      json
// @Param        companyId  path  string  true  "empresa a impersonar"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/support-access/{companyId} [post]
func (h *AdminHandler) EnterSupportMode(c *fiber.Ctx) error {
	token, err := h.authUC.EnterSupportMode(GetClaims(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return h.respondReissued(c, token)
}

// ExitSupportMode godoc
// @Summary      Salir del modo soporte
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/exit-support [post]
func (h *AdminHandler) ExitSupportMode(c *fiber.Ctx) error {
	token, err := h.authUC.ExitSupportMode(GetClaims(c))
	if err != nil {
		return respondError(c, err)
	}
	return h.respondReissued(c, token)
}
