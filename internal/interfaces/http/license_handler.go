package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
)

// LicenseHandler CRUD de licencias de software (tenant-scoped).
type LicenseHandler struct {
	uc    *usecase.LicenseUseCase
	guard *tenant.Guard
}

// NewLicenseHandler construye el handler de licencias.
func NewLicenseHandler(uc *usecase.LicenseUseCase, guard *tenant.Guard) *LicenseHandler {
	return &LicenseHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Crear licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLicenseRequest  true  "datos de la licencia"
// @Success      201   {object}  dto.LicenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.uc.Create(companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar licencias de la empresa
// @Tags         licenses
// @Produce      json
// @Success      200  {array}  dto.LicenseResponse
// @Router       /api/licenses [get]
func (h *LicenseHandler) List(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una licencia
// @Tags         licenses
// @Produce      json
// @Param        id  path  string  true  "ID de la licencia"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [get]
func (h *LicenseHandler) GetByID(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Params("id"), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una licencia (parcial)
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la licencia"
// @Param        body  body  dto.UpdateLicenseRequest  true  "campos a modificar"
// @Success      200   {object}  dto.LicenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [put]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una licencia
// @Tags         licenses
// @Param        id  path  string  true  "ID de la licencia"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Params("id"), companyID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
