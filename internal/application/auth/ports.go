package auth

import (
	"context"

	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// RegistrationTxRunner ejecuta el alta de empresa dentro de una transacción:
// Company + User + UserCompany se crean juntas o ninguna (sin filas huérfanas
// ante un fallo parcial, p. ej. email duplicado).
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		linkRepo repository.UserCompanyRepository,
	) error) error
}
