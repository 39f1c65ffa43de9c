package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
	"github.com/SocketStudioec/ITAssetManager/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users     map[string]*entity.User // por ID
	companies map[string]*entity.Company
	links     []*entity.UserCompany
	logs      []*entity.ActivityLog

	failLinkCreate bool // fuerza el fallo del tercer insert del registro
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*entity.User{},
		companies: map[string]*entity.Company{},
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.s.users[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, existing := range r.s.companies {
		if existing.TaxID == c.TaxID {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.s.companies[id], nil }
func (r *memCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}
func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	return out, nil
}

type memLinkRepo struct{ s *memStore }

func (r *memLinkRepo) Create(l *entity.UserCompany) error {
	if r.s.failLinkCreate {
		return errors.New("insert user_company: conexión perdida")
	}
	cp := *l
	r.s.links = append(r.s.links, &cp)
	return nil
}
func (r *memLinkRepo) GetRole(userID, companyID string) (string, error) {
	for _, l := range r.s.links {
		if l.UserID == userID && l.CompanyID == companyID {
			return l.Role, nil
		}
	}
	return "", nil
}
func (r *memLinkRepo) ListMemberships(userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, l := range r.s.links {
		if l.UserID == userID {
			c := r.s.companies[l.CompanyID]
			out = append(out, &entity.Membership{Company: *c, Role: l.Role})
		}
	}
	return out, nil
}
func (r *memLinkRepo) CountByCompany(companyID string) (int, error) {
	n := 0
	for _, l := range r.s.links {
		if l.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

type memLogRepo struct{ s *memStore }

func (r *memLogRepo) Create(l *entity.ActivityLog) error {
	cp := *l
	r.s.logs = append(r.s.logs, &cp)
	return nil
}
func (r *memLogRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for _, l := range r.s.logs {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

// memTxRunner simula la transacción del registro: ejecuta fn sobre copias del
// store y solo integra los cambios si fn no falla.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunRegistration(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	linkRepo repository.UserCompanyRepository,
) error) error {
	staging := &memStore{
		users:          map[string]*entity.User{},
		companies:      map[string]*entity.Company{},
		failLinkCreate: r.s.failLinkCreate,
	}
	for k, v := range r.s.users {
		staging.users[k] = v
	}
	for k, v := range r.s.companies {
		staging.companies[k] = v
	}
	staging.links = append(staging.links, r.s.links...)

	if err := fn(&memCompanyRepo{staging}, &memUserRepo{staging}, &memLinkRepo{staging}); err != nil {
		return err // rollback: el store real queda intacto
	}
	r.s.users = staging.users
	r.s.companies = staging.companies
	r.s.links = staging.links
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

func newTestUseCase(s *memStore) (*auth.AuthUseCase, *jwt.Service) {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	tokens := jwt.NewService(testSecret, "itasset-manager-test")
	auditor := audit.NewAuditor(&memLogRepo{s}, log)
	uc := auth.NewAuthUseCase(
		&memUserRepo{s}, &memCompanyRepo{s}, &memLinkRepo{s},
		&memTxRunner{s}, tokens, auditor,
	)
	return uc, tokens
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		CompanyName:     "Tecnosoluciones Cía. Ltda.",
		Plan:            entity.PlanPyme,
		TaxID:           "1790012345001",
		Email:           "gerente@tecnosoluciones.ec",
		FirstName:       "María",
		LastName:        "Paredes",
		Password:        "contraseña-segura",
		ConfirmPassword: "contraseña-segura",
	}
}

func seedSuperAdmin(s *memStore) *entity.User {
	u := &entity.User{
		ID:        "sa-1",
		Email:     "soporte@plataforma.ec",
		FirstName: "Soporte",
		LastName:  "Plataforma",
		Role:      entity.RoleSuperAdmin,
	}
	s.users[u.ID] = u
	return u
}

func claimsFor(u *entity.User, sm *jwt.SupportMode) *jwt.Claims {
	return &jwt.Claims{
		UserID:      u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		SupportMode: sm,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEmpresaUsuarioYMembresia(t *testing.T) {
	s := newMemStore()
	uc, tokens := newTestUseCase(s)

	out, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Len(t, s.companies, 1)
	assert.Len(t, s.users, 1)
	assert.Len(t, s.links, 1)

	assert.Equal(t, entity.PlanPyme, out.Company.Plan)
	assert.Equal(t, entity.PymeMaxUsers, out.Company.MaxUsers)
	assert.Equal(t, entity.PymeMaxAssets, out.Company.MaxAssets)
	assert.True(t, out.Company.IsActive)
	assert.Equal(t, entity.RoleManagerOwner, out.User.Role)

	// El token emitido debe verificar y no llevar modo soporte.
	claims, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.False(t, claims.InSupportMode())

	// La contraseña nunca se guarda en claro.
	u := s.users[out.User.ID]
	require.NotNil(t, u)
	assert.NotEqual(t, "contraseña-segura", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)

	// Exactamente una entrada de bitácora por el registro.
	require.Len(t, s.logs, 1)
	assert.Equal(t, entity.ActionRegistered, s.logs[0].Action)
	assert.Equal(t, out.Company.ID, s.logs[0].CompanyID)
}

func TestRegister_ContrasenasNoCoinciden(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	in := validRegister()
	in.ConfirmPassword = "otra-cosa"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.users)
}

func TestRegister_PlanPymeExigeRUCde13(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	in := validRegister()
	in.TaxID = "1712345678" // cédula de 10 no vale para pyme

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PlanProfessionalExigeCedulaDe10(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	in := validRegister()
	in.Plan = entity.PlanProfessional
	in.TaxID = "1790012345001" // RUC de 13 no vale para professional

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.TaxID = "1712345678"
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfessionalMaxAssets, out.Company.MaxAssets)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	in := validRegister()
	in.TaxID = "1790099999001" // otro RUC, mismo email
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_FalloParcialNoDejaFilasHuerfanas(t *testing.T) {
	s := newMemStore()
	s.failLinkCreate = true
	uc, _ := newTestUseCase(s)

	_, err := uc.Register(context.Background(), validRegister())
	require.Error(t, err)

	// La transacción revierte: ni empresa ni usuario persistidos.
	assert.Empty(t, s.companies)
	assert.Empty(t, s.users)
	assert.Empty(t, s.links)
	assert.Empty(t, s.logs, "sin commit no debe haber bitácora")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Correcto(t *testing.T) {
	s := newMemStore()
	uc, tokens := newTestUseCase(s)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{
		Email:    "gerente@tecnosoluciones.ec",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	claims, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

func TestLogin_MismoErrorParaEmailYContrasenaIncorrectos(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@nada.ec", Password: "lo-que-sea"})
	_, errPass := uc.Login(dto.LoginRequest{Email: "gerente@tecnosoluciones.ec", Password: "incorrecta"})

	require.Error(t, errEmail)
	require.Error(t, errPass)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
	// Indistinguibles: ni el tipo ni el mensaje revelan cuál falló.
	assert.Equal(t, errEmail.Error(), errPass.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo soporte
// ──────────────────────────────────────────────────────────────────────────────

func TestEnterSupportMode_SuperAdmin(t *testing.T) {
	s := newMemStore()
	uc, tokens := newTestUseCase(s)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	admin := seedSuperAdmin(s)

	tok, err := uc.EnterSupportMode(claimsFor(admin, nil), reg.Company.ID)
	require.NoError(t, err)

	claims, err := tokens.Verify(tok)
	require.NoError(t, err)
	require.True(t, claims.InSupportMode())
	assert.Equal(t, reg.Company.ID, claims.SupportMode.CompanyID)
	assert.Equal(t, admin.ID, claims.SupportMode.AdminID)
	assert.False(t, claims.SupportMode.StartedAt.IsZero())

	// La entrada en modo soporte queda en la bitácora de la empresa.
	last := s.logs[len(s.logs)-1]
	assert.Equal(t, entity.ActionSupportEntered, last.Action)
	assert.Equal(t, reg.Company.ID, last.CompanyID)
}

func TestEnterSupportMode_RechazaRolesNoSuperAdmin(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	owner := s.users[reg.User.ID]
	_, err = uc.EnterSupportMode(claimsFor(owner, nil), reg.Company.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnterSupportMode_RevalidaRolContraLaBase(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	// El token dice super_admin pero el rol en la base ya cambió.
	admin := seedSuperAdmin(s)
	claims := claimsFor(admin, nil)
	s.users[admin.ID].Role = entity.RoleTechnicalAdmin

	_, err = uc.EnterSupportMode(claims, reg.Company.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnterSupportMode_EmpresaInexistenteEInactiva(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s)
	admin := seedSuperAdmin(s)

	_, err := uc.EnterSupportMode(claimsFor(admin, nil), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	s.companies[reg.Company.ID].IsActive = false

	_, err = uc.EnterSupportMode(claimsFor(admin, nil), reg.Company.ID)
	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
}

func TestExitSupportMode_EmiteTokenLimpioYAudita(t *testing.T) {
	s := newMemStore()
	uc, tokens := newTestUseCase(s)

	reg, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	admin := seedSuperAdmin(s)

	sm := &jwt.SupportMode{CompanyID: reg.Company.ID, AdminID: admin.ID}
	tok, err := uc.ExitSupportMode(claimsFor(admin, sm))
	require.NoError(t, err)

	claims, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.False(t, claims.InSupportMode(), "el token reemitido no debe llevar support_mode")

	last := s.logs[len(s.logs)-1]
	assert.Equal(t, entity.ActionSupportExited, last.Action)
	assert.Equal(t, reg.Company.ID, last.CompanyID)
}
