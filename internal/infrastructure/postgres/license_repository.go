package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

const licenseColumns = `id, company_id, name, vendor, license_key, seats,
	monthly_cost, annual_cost, expiry_date, status, created_at, updated_at`

// Create persiste una nueva licencia.
func (r *LicenseRepo) Create(license *entity.License) error {
	query := `
		INSERT INTO licenses (` + licenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.CompanyID, license.Name, license.Vendor,
		license.LicenseKey, license.Seats, license.MonthlyCost, license.AnnualCost,
		license.ExpiryDate, license.Status, license.CreatedAt, license.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia por ID solo si pertenece a la empresa indicada.
func (r *LicenseRepo) GetByID(id, companyID string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE id = $1 AND company_id = $2`
	var l entity.License
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(scanLicenseDest(&l)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// ListByCompany devuelve las licencias de la empresa.
func (r *LicenseRepo) ListByCompany(companyID string) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.License
	for rows.Next() {
		var l entity.License
		if err := rows.Scan(scanLicenseDest(&l)...); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una licencia de la empresa indicada.
func (r *LicenseRepo) Update(license *entity.License) error {
	query := `
		UPDATE licenses SET name = $3, vendor = $4, license_key = $5, seats = $6,
			monthly_cost = $7, annual_cost = $8, expiry_date = $9, status = $10, updated_at = $11
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.CompanyID, license.Name, license.Vendor,
		license.LicenseKey, license.Seats, license.MonthlyCost, license.AnnualCost,
		license.ExpiryDate, license.Status, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// Delete elimina una licencia de la empresa indicada.
func (r *LicenseRepo) Delete(id, companyID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM licenses WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLicenseDest(l *entity.License) []any {
	return []any{
		&l.ID, &l.CompanyID, &l.Name, &l.Vendor, &l.LicenseKey, &l.Seats,
		&l.MonthlyCost, &l.AnnualCost, &l.ExpiryDate, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	}
}
