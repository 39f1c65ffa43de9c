package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL.
// Toda lectura y todo borrado llevan company_id en el WHERE: el aislamiento
// de tenant se aplica también en SQL.
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, company_id, name, type, status, description, assigned_to,
	serial_number, model, brand, location, purchase_date, warranty_expiry,
	url, version, monthly_cost, annual_cost,
	domain_cost, domain_expiry, ssl_cost, ssl_expiry,
	hosting_cost, hosting_expiry, server_cost, server_expiry,
	created_at, updated_at`

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.CompanyID, asset.Name, asset.Type, asset.Status,
		asset.Description, asset.AssignedTo,
		asset.SerialNumber, asset.Model, asset.Brand, asset.Location,
		asset.PurchaseDate, asset.WarrantyExpiry,
		asset.URL, asset.Version, asset.MonthlyCost, asset.AnnualCost,
		asset.DomainCost, asset.DomainExpiry, asset.SSLCost, asset.SSLExpiry,
		asset.HostingCost, asset.HostingExpiry, asset.ServerCost, asset.ServerExpiry,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID solo si pertenece a la empresa indicada.
func (r *AssetRepo) GetByID(id, companyID string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND company_id = $2`
	var a entity.Asset
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(scanAssetDest(&a)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// ListByCompany devuelve los activos de la empresa.
func (r *AssetRepo) ListByCompany(companyID string) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(scanAssetDest(&a)...); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los activos de la empresa (límite MaxAssets del plan).
func (r *AssetRepo) CountByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM assets WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return count, nil
}

// Update actualiza un activo. El WHERE incluye company_id para que un update
// con tenant equivocado no toque nada.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets SET name = $3, type = $4, status = $5, description = $6, assigned_to = $7,
			serial_number = $8, model = $9, brand = $10, location = $11,
			purchase_date = $12, warranty_expiry = $13,
			url = $14, version = $15, monthly_cost = $16, annual_cost = $17,
			domain_cost = $18, domain_expiry = $19, ssl_cost = $20, ssl_expiry = $21,
			hosting_cost = $22, hosting_expiry = $23, server_cost = $24, server_expiry = $25,
			updated_at = $26
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.CompanyID, asset.Name, asset.Type, asset.Status,
		asset.Description, asset.AssignedTo,
		asset.SerialNumber, asset.Model, asset.Brand, asset.Location,
		asset.PurchaseDate, asset.WarrantyExpiry,
		asset.URL, asset.Version, asset.MonthlyCost, asset.AnnualCost,
		asset.DomainCost, asset.DomainExpiry, asset.SSLCost, asset.SSLExpiry,
		asset.HostingCost, asset.HostingExpiry, asset.ServerCost, asset.ServerExpiry,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// Delete elimina un activo de la empresa indicada.
func (r *AssetRepo) Delete(id, companyID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM assets WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAssetDest(a *entity.Asset) []any {
	return []any{
		&a.ID, &a.CompanyID, &a.Name, &a.Type, &a.Status, &a.Description, &a.AssignedTo,
		&a.SerialNumber, &a.Model, &a.Brand, &a.Location, &a.PurchaseDate, &a.WarrantyExpiry,
		&a.URL, &a.Version, &a.MonthlyCost, &a.AnnualCost,
		&a.DomainCost, &a.DomainExpiry, &a.SSLCost, &a.SSLExpiry,
		&a.HostingCost, &a.HostingExpiry, &a.ServerCost, &a.ServerExpiry,
		&a.CreatedAt, &a.UpdatedAt,
	}
}
