package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
)

// ActivityHandler lectura de la bitácora de actividad de una empresa.
type ActivityHandler struct {
	auditor *audit.Auditor
}

// NewActivityHandler construye el handler de la bitácora.
func NewActivityHandler(auditor *audit.Auditor) *ActivityHandler {
	return &ActivityHandler{auditor: auditor}
}

// List godoc
// @Summary      Bitácora de actividad de la empresa (más reciente primero)
// @Tags         activity
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "máximo de entradas (default 20, máx 100)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {array}   dto.ActivityLogResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/activity/{companyId} [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()

	logs, err := h.auditor.List(c.Params("companyId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ActivityLogResponse{
			ID:         l.ID,
			CompanyID:  l.CompanyID,
			UserID:     l.UserID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			CreatedAt:  l.CreatedAt,
		})
	}
	return c.JSON(out)
}
