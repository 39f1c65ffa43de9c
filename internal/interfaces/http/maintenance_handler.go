package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
)

// MaintenanceHandler CRUD de registros de mantenimiento (tenant-scoped).
type MaintenanceHandler struct {
	uc    *usecase.MaintenanceUseCase
	guard *tenant.Guard
}

// NewMaintenanceHandler construye el handler de mantenimientos.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase, guard *tenant.Guard) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Registrar mantenimiento
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "datos del mantenimiento"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateMaintenanceRequest
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
// @Summary      Listar mantenimientos de la empresa
// @Tags         maintenance
// @Produce      json
// @Success      200  {array}  dto.MaintenanceResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener un mantenimiento
// @Tags         maintenance
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar un mantenimiento (parcial)
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateMaintenanceRequest  true  "campos a modificar"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateMaintenanceRequest
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
// @Summary      Eliminar un mantenimiento
// @Tags         maintenance
// @Param        id  path  string  true  "ID del registro"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Params("id"), companyID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
