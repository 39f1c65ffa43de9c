package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistration inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Es la frontera transaccional del registro: empresa,
// usuario y membresía se crean las tres o ninguna.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	linkRepo repository.UserCompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)
	linkRepo := NewUserCompanyRepository(tx)

	if err := fn(companyRepo, userRepo, linkRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
