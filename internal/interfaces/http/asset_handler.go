package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
)

// AssetHandler CRUD de activos de TI (tenant-scoped).
type AssetHandler struct {
	uc    *usecase.AssetUseCase
	guard *tenant.Guard
}

// NewAssetHandler construye el handler de activos.
func NewAssetHandler(uc *usecase.AssetUseCase, guard *tenant.Guard) *AssetHandler {
	return &AssetHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Crear activo
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        companyId  query  string  false  "empresa destino (por defecto, la efectiva del token)"
// @Param        body  body  dto.CreateAssetRequest  true  "datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateAssetRequest
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
// @Summary      Listar activos de la empresa
// @Tags         assets
// @Produce      json
// @Param        companyId  query  string  false  "empresa (por defecto, la efectiva del token)"
// @Success      200  {array}   dto.AssetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener un activo
// @Tags         assets
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar un activo (parcial)
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "campos a modificar"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAssetRequest
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
// @Summary      Eliminar un activo
// @Tags         assets
// @Param        id  path  string  true  "ID del activo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Params("id"), companyID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
