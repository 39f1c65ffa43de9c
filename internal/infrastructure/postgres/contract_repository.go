package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, company_id, name, provider, description,
	monthly_cost, annual_cost, start_date, end_date, status, created_at, updated_at`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.CompanyID, contract.Name, contract.Provider,
		contract.Description, contract.MonthlyCost, contract.AnnualCost,
		contract.StartDate, contract.EndDate, contract.Status,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID solo si pertenece a la empresa indicada.
func (r *ContractRepo) GetByID(id, companyID string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 AND company_id = $2`
	var c entity.Contract
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(scanContractDest(&c)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// ListByCompany devuelve los contratos de la empresa.
func (r *ContractRepo) ListByCompany(companyID string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(scanContractDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contrato de la empresa indicada.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET name = $3, provider = $4, description = $5,
			monthly_cost = $6, annual_cost = $7, start_date = $8, end_date = $9,
			status = $10, updated_at = $11
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.CompanyID, contract.Name, contract.Provider,
		contract.Description, contract.MonthlyCost, contract.AnnualCost,
		contract.StartDate, contract.EndDate, contract.Status, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// Delete elimina un contrato de la empresa indicada.
func (r *ContractRepo) Delete(id, companyID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM contracts WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContractDest(c *entity.Contract) []any {
	return []any{
		&c.ID, &c.CompanyID, &c.Name, &c.Provider, &c.Description,
		&c.MonthlyCost, &c.AnnualCost, &c.StartDate, &c.EndDate, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	}
}
