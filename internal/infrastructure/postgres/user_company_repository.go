package postgres

import (
	"context"
	"fmt"

	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ repository.UserCompanyRepository = (*UserCompanyRepo)(nil)

// UserCompanyRepo implementación del puerto UserCompanyRepository sobre PostgreSQL (usable con pool o tx).
type UserCompanyRepo struct {
	q Querier
}

// NewUserCompanyRepository construye el adaptador de membresías usuario-empresa.
func NewUserCompanyRepository(q Querier) *UserCompanyRepo {
	return &UserCompanyRepo{q: q}
}

// Create persiste una membresía.
func (r *UserCompanyRepo) Create(link *entity.UserCompany) error {
	query := `
		INSERT INTO user_companies (id, user_id, company_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.UserID, link.CompanyID, link.Role, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user_company: %w", err)
	}
	return nil
}

// GetRole devuelve el rol del usuario en la empresa, o "" si no es miembro.
func (r *UserCompanyRepo) GetRole(userID, companyID string) (string, error) {
	query := `SELECT role FROM user_companies WHERE user_id = $1 AND company_id = $2`
	var role string
	err := r.q.QueryRow(context.Background(), query, userID, companyID).Scan(&role)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get membership role: %w", err)
	}
	return role, nil
}

// ListMemberships devuelve las empresas del usuario con su rol en cada una.
func (r *UserCompanyRepo) ListMemberships(userID string) ([]*entity.Membership, error) {
	query := `
		SELECT c.id, c.name, c.plan, c.tax_id, c.email, c.phone, c.address,
		       c.max_users, c.max_assets, c.is_active, c.created_at, c.updated_at,
		       uc.role
		FROM user_companies uc
		JOIN companies c ON c.id = uc.company_id
		WHERE uc.user_id = $1
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(
			&m.Company.ID, &m.Company.Name, &m.Company.Plan, &m.Company.TaxID,
			&m.Company.Email, &m.Company.Phone, &m.Company.Address,
			&m.Company.MaxUsers, &m.Company.MaxAssets, &m.Company.IsActive,
			&m.Company.CreatedAt, &m.Company.UpdatedAt,
			&m.Role,
		); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los miembros de una empresa (límite MaxUsers del plan).
func (r *UserCompanyRepo) CountByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM user_companies WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return count, nil
}
