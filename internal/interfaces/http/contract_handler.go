package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
)

// ContractHandler CRUD de contratos de servicio (tenant-scoped).
type ContractHandler struct {
	uc    *usecase.ContractUseCase
	guard *tenant.Guard
}

// NewContractHandler construye el handler de contratos.
func NewContractHandler(uc *usecase.ContractUseCase, guard *tenant.Guard) *ContractHandler {
	return &ContractHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateContractRequest
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
// @Summary      Listar contratos de la empresa
// @Tags         contracts
// @Produce      json
// @Success      200  {array}  dto.ContractResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener un contrato
// @Tags         contracts
// @Produce      json
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar un contrato (parcial)
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ContractResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateContractRequest
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
// @Summary      Eliminar un contrato
// @Tags         contracts
// @Param        id  path  string  true  "ID del contrato"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	companyID, err := resolveCompany(c, h.guard)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Params("id"), companyID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
