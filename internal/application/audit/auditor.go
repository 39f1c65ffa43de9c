// Package audit implementa la bitácora de actividad: cada mutación exitosa del
// negocio (create/update/delete e impersonación) produce exactamente una
// entrada inmutable, registrada DESPUÉS de que la mutación confirma.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/logger"
)

// Auditor registra entradas de actividad en modo best-effort: si la escritura
// de la bitácora falla, la mutación de negocio ya confirmada NO se revierte;
// el fallo se reporta por el logger y la petición continúa.
type Auditor struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewAuditor construye el auditor.
func NewAuditor(repo repository.ActivityLogRepository, log *logger.Logger) *Auditor {
	return &Auditor{repo: repo, log: log.Component("audit")}
}

// Record añade una entrada a la bitácora. Llamar una sola vez por mutación
// exitosa, siempre después del commit.
func (a *Auditor) Record(companyID, userID, action, entityType, entityID, entityName string) {
	entry := &entity.ActivityLog{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		CreatedAt:  time.Now(),
	}
	if err := a.repo.Create(entry); err != nil {
		a.log.Error().Err(err).
			Str("company_id", companyID).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("no se pudo registrar la actividad")
	}
}

// List devuelve la bitácora de una empresa, más reciente primero.
func (a *Auditor) List(companyID string, limit, offset int) ([]*entity.ActivityLog, error) {
	return a.repo.ListByCompany(companyID, limit, offset)
}
