package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
)

// CompanyHandler expone las empresas del usuario autenticado.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Memberships godoc
// @Summary      Empresas del usuario autenticado con su rol en cada una
// @Tags         companies
// @Produce      json
// @Success      200  {array}   dto.MembershipResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) Memberships(c *fiber.Ctx) error {
	out, err := h.uc.Memberships(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
