package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
)

// respondError traduce los errores de dominio al contrato HTTP. Los mensajes
// de credenciales y de duplicados son deliberadamente genéricos: la respuesta
// no distingue "email inexistente" de "contraseña incorrecta" ni revela qué
// campo chocó con el único.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos sobre este recurso"})
	case errors.Is(err, domain.ErrCompanyInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_INACTIVE", Message: "la empresa está inactiva"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	case errors.Is(err, domain.ErrAssetLimitReached):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ASSET_LIMIT", Message: "límite de activos del plan alcanzado"})
	case errors.Is(err, domain.ErrUserLimitReached):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_LIMIT", Message: "límite de usuarios del plan alcanzado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
