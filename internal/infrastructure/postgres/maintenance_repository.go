package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimientos.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

const maintenanceColumns = `id, company_id, asset_id, description, technician,
	cost, scheduled_for, completed_at, status, created_at, updated_at`

// Create persiste un nuevo registro de mantenimiento.
func (r *MaintenanceRepo) Create(record *entity.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.CompanyID, record.AssetID, record.Description,
		record.Technician, record.Cost, record.ScheduledFor, record.CompletedAt,
		record.Status, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert maintenance record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID solo si pertenece a la empresa indicada.
func (r *MaintenanceRepo) GetByID(id, companyID string) (*entity.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE id = $1 AND company_id = $2`
	var m entity.MaintenanceRecord
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(scanMaintenanceDest(&m)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance record: %w", err)
	}
	return &m, nil
}

// ListByCompany devuelve los mantenimientos de la empresa.
func (r *MaintenanceRepo) ListByCompany(companyID string) ([]*entity.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE company_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, companyID)
}

// ListByAsset devuelve los mantenimientos de un activo concreto de la empresa.
func (r *MaintenanceRepo) ListByAsset(assetID, companyID string) ([]*entity.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE asset_id = $1 AND company_id = $2 ORDER BY created_at DESC`
	return r.scanMany(query, assetID, companyID)
}

func (r *MaintenanceRepo) scanMany(query string, args ...any) ([]*entity.MaintenanceRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceRecord
	for rows.Next() {
		var m entity.MaintenanceRecord
		if err := rows.Scan(scanMaintenanceDest(&m)...); err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un registro de mantenimiento de la empresa indicada.
func (r *MaintenanceRepo) Update(record *entity.MaintenanceRecord) error {
	query := `
		UPDATE maintenance_records SET description = $3, technician = $4, cost = $5,
			scheduled_for = $6, completed_at = $7, status = $8, updated_at = $9
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.CompanyID, record.Description, record.Technician,
		record.Cost, record.ScheduledFor, record.CompletedAt, record.Status,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance record: %w", err)
	}
	return nil
}

// Delete elimina un registro de mantenimiento de la empresa indicada.
func (r *MaintenanceRepo) Delete(id, companyID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM maintenance_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete maintenance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMaintenanceDest(m *entity.MaintenanceRecord) []any {
	return []any{
		&m.ID, &m.CompanyID, &m.AssetID, &m.Description, &m.Technician,
		&m.Cost, &m.ScheduledFor, &m.CompletedAt, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	}
}
