// Package assets contiene la lógica de dominio pura para el estado de
// vencimiento de los activos (servicio de dominio, sin dependencias de
// infraestructura).
package assets

import (
	"time"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
)

// ExpiringSoonWindow ventana de aviso previo al vencimiento.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// ExpirationStatus estado de vencimiento de una fecha vigilada.
type ExpirationStatus string

const (
	StatusNone         ExpirationStatus = "none"
	StatusExpiringSoon ExpirationStatus = "expiring_soon"
	StatusExpired      ExpirationStatus = "expired"
)

// FieldStatus estado de vencimiento de un campo concreto de un activo.
type FieldStatus struct {
	Field  string
	Date   time.Time
	Status ExpirationStatus
}

// Evaluate clasifica una fecha contra un instante de referencia:
//   - expired       cuando date < ref (aunque sea por 1 ms)
//   - expiring_soon cuando ref <= date <= ref + 30 días
//   - none          en cualquier otro caso
func Evaluate(date, ref time.Time) ExpirationStatus {
	if date.Before(ref) {
		return StatusExpired
	}
	if !date.After(ref.Add(ExpiringSoonWindow)) {
		return StatusExpiringSoon
	}
	return StatusNone
}

// EvaluateAsset evalúa todas las fechas vigiladas del activo y devuelve el
// estado agregado más los campos que lo causan. Prioridad del agregado:
// expired > expiring_soon > none; las fechas en NULL se ignoran.
func EvaluateAsset(a *entity.Asset, ref time.Time) (ExpirationStatus, []FieldStatus) {
	aggregate := StatusNone
	var flagged []FieldStatus
	for _, te := range a.TrackedExpiries() {
		if te.Date == nil {
			continue
		}
		st := Evaluate(*te.Date, ref)
		if st == StatusNone {
			continue
		}
		flagged = append(flagged, FieldStatus{Field: te.Field, Date: *te.Date, Status: st})
		if st == StatusExpired {
			aggregate = StatusExpired
		} else if aggregate != StatusExpired {
			aggregate = StatusExpiringSoon
		}
	}
	return aggregate, flagged
}
