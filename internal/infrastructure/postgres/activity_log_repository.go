package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre
// PostgreSQL. La tabla es append-only: este adaptador solo inserta y lista.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de la bitácora de actividad.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta una entrada en la bitácora.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, company_id, user_id, action, entity_type, entity_id, entity_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.CompanyID, log.UserID, log.Action,
		log.EntityType, log.EntityID, log.EntityName, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListByCompany devuelve la bitácora de la empresa, de la más reciente a la
// más antigua.
func (r *ActivityLogRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, company_id, user_id, action, entity_type, entity_id, entity_name, created_at
		FROM activity_logs
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.UserID, &l.Action,
			&l.EntityType, &l.EntityID, &l.EntityName, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
