package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/identificacion"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro de empresa, login y
// modo soporte (impersonación de super_admin).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	linkRepo    repository.UserCompanyRepository
	txRunner    RegistrationTxRunner
	tokens      *jwt.Service
	auditor     *audit.Auditor
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	linkRepo repository.UserCompanyRepository,
	txRunner RegistrationTxRunner,
	tokens *jwt.Service,
	auditor *audit.Auditor,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		linkRepo:    linkRepo,
		txRunner:    txRunner,
		tokens:      tokens,
		auditor:     auditor,
	}
}

// Register da de alta una empresa con su primer administrador (manager_owner).
// Las tres filas (Company, User, UserCompany) se crean en una sola transacción:
// un fallo parcial no deja nada persistido. Devuelve ErrDuplicate si el email
// o el identificador tributario ya existen.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	switch in.Plan {
	case entity.PlanPyme:
		if err := identificacion.ValidateRUC(in.TaxID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	case entity.PlanProfessional:
		if err := identificacion.ValidateCedula(in.TaxID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: plan desconocido", domain.ErrInvalidInput)
	}

	// Prechequeo de duplicados para responder rápido; la garantía real la dan
	// los constraints únicos dentro de la transacción.
	if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.companyRepo.GetByTaxID(in.TaxID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	now := time.Now()
	maxUsers, maxAssets := entity.DefaultLimits(in.Plan)
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Plan:      in.Plan,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		MaxUsers:  maxUsers,
		MaxAssets: maxAssets,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Role:         entity.RoleManagerOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	link := &entity.UserCompany{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CompanyID: company.ID,
		Role:      entity.RoleManagerOwner,
		CreatedAt: now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		linkRepo repository.UserCompanyRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return linkRepo.Create(link)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(identityOf(user, nil))
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	uc.auditor.Record(company.ID, user.ID, entity.ActionRegistered, "company", company.ID, company.Name)

	return &dto.RegisterResponse{
		Company: ToCompanyResponse(company),
		User:    toUserResponse(user, nil),
		Token:   token,
	}, nil
}

// Login verifica email/contraseña y emite un token de sesión. El error es el
// mismo (ErrInvalidCredentials) tanto para email desconocido como para
// contraseña incorrecta: la respuesta no permite enumerar cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Issue(identityOf(user, nil))
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{User: toUserResponse(user, nil), Token: token}, nil
}

// CurrentUser devuelve el usuario actual refrescado desde la base (el token
// solo aporta la identidad; los datos se releen de la fuente de verdad).
func (uc *AuthUseCase) CurrentUser(claims *jwt.Claims) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := toUserResponse(user, claims.SupportMode)
	return &out, nil
}

// EnterSupportMode emite un token nuevo con el contexto de impersonación de la
// empresa destino. Solo super_admin; el rol se revalida contra la base, no se
// confía únicamente en el claim. El token anterior se descarta en el cliente.
func (uc *AuthUseCase) EnterSupportMode(claims *jwt.Claims, companyID string) (string, error) {
	user, err := uc.requireSuperAdmin(claims)
	if err != nil {
		return "", err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", domain.ErrNotFound
	}
	if !company.IsActive {
		return "", domain.ErrCompanyInactive
	}

	sm := &jwt.SupportMode{
		CompanyID: company.ID,
		AdminID:   user.ID,
		StartedAt: time.Now(),
	}
	token, err := uc.tokens.Issue(identityOf(user, sm))
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}

	uc.auditor.Record(company.ID, user.ID, entity.ActionSupportEntered, "company", company.ID, company.Name)
	return token, nil
}

// ExitSupportMode emite un token nuevo sin el contexto de impersonación.
func (uc *AuthUseCase) ExitSupportMode(claims *jwt.Claims) (string, error) {
	user, err := uc.requireSuperAdmin(claims)
	if err != nil {
		return "", err
	}
	token, err := uc.tokens.Issue(identityOf(user, nil))
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}
	if claims.InSupportMode() {
		uc.auditor.Record(claims.SupportMode.CompanyID, user.ID, entity.ActionSupportExited,
			"company", claims.SupportMode.CompanyID, "")
	}
	return token, nil
}

// requireSuperAdmin relee el usuario y exige rol super_admin vigente en la
// base: el rol del token puede estar desactualizado.
func (uc *AuthUseCase) requireSuperAdmin(claims *jwt.Claims) (*entity.User, error) {
	if claims.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func identityOf(u *entity.User, sm *jwt.SupportMode) jwt.Identity {
	return jwt.Identity{
		UserID:      u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		SupportMode: sm,
	}
}

func toUserResponse(u *entity.User, sm *jwt.SupportMode) dto.UserResponse {
	out := dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if sm != nil {
		out.SupportMode = &dto.SupportModeResponse{
			CompanyID: sm.CompanyID,
			AdminID:   sm.AdminID,
			StartedAt: sm.StartedAt,
		}
	}
	return out
}

// ToCompanyResponse mapea la entidad al DTO de la API.
func ToCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Plan:      c.Plan,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		MaxUsers:  c.MaxUsers,
		MaxAssets: c.MaxAssets,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}
