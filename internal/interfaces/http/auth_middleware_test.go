package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/entity"
	apphttp "github.com/SocketStudioec/ITAssetManager/internal/interfaces/http"
	pkgjwt "github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "itasset-manager-test"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyA  = "00000000-0000-0000-0000-00000000000a"
	testCompanyB  = "00000000-0000-0000-0000-00000000000b"
	testAdminID   = "00000000-0000-0000-0000-0000000000sa"
)

var testTokens = pkgjwt.NewService(testJWTSecret, testIssuer)

// fakeMemberships membresías en memoria para el guard de tenant.
type fakeMemberships struct{ links []*entity.UserCompany }

func (f *fakeMemberships) Create(l *entity.UserCompany) error { f.links = append(f.links, l); return nil }
func (f *fakeMemberships) GetRole(userID, companyID string) (string, error) {
	for _, l := range f.links {
		if l.UserID == userID && l.CompanyID == companyID {
			return l.Role, nil
		}
	}
	return "", nil
}
func (f *fakeMemberships) ListMemberships(userID string) ([]*entity.Membership, error) {
	return nil, nil
}
func (f *fakeMemberships) CountByCompany(companyID string) (int, error) { return 0, nil }

// fakeUsers usuarios en memoria para RequireSuperAdmin.
type fakeUsers struct{ users map[string]*entity.User }

func (f *fakeUsers) Create(u *entity.User) error            { f.users[u.ID] = u; return nil }
func (f *fakeUsers) GetByID(id string) (*entity.User, error) { return f.users[id], nil }
func (f *fakeUsers) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsers) Update(u *entity.User) error { f.users[u.ID] = u; return nil }

// buildTenantApp app Fiber con AuthMiddleware + RequireCompanyAccess sobre
// /companies/:companyId/data, igual que las rutas de dashboard y activity.
func buildTenantApp(memberships *fakeMemberships) *fiber.App {
	app := fiber.New()
	guard := tenant.NewGuard(memberships)
	app.Get("/companies/:companyId/data",
		apphttp.AuthMiddleware(testTokens),
		apphttp.RequireCompanyAccess(guard),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "userId": apphttp.GetUserID(c)})
		},
	)
	return app
}

func issueToken(t *testing.T, userID, role string, sm *pkgjwt.SupportMode) string {
	t.Helper()
	tok, err := testTokens.Issue(pkgjwt.Identity{
		UserID:      userID,
		Email:       "test@empresa.ec",
		Role:        role,
		SupportMode: sm,
	})
	require.NoError(t, err)
	return tok
}

func getWithCookie(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — cookie y Bearer
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinCredenciales_Retorna401(t *testing.T) {
	app := buildTenantApp(&fakeMemberships{})
	resp := getWithCookie(t, app, "/companies/"+testCompanyA+"/data", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenCorrupto_Retorna401(t *testing.T) {
	app := buildTenantApp(&fakeMemberships{})
	resp := getWithCookie(t, app, "/companies/"+testCompanyA+"/data", "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_AceptaCookieDeSesion(t *testing.T) {
	memberships := &fakeMemberships{links: []*entity.UserCompany{
		{UserID: testUserID, CompanyID: testCompanyA, Role: entity.RoleManagerOwner},
	}}
	app := buildTenantApp(memberships)

	tok := issueToken(t, testUserID, entity.RoleManagerOwner, nil)
	resp := getWithCookie(t, app, "/companies/"+testCompanyA+"/data", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_AceptaBearerComoRespaldo(t *testing.T) {
	memberships := &fakeMemberships{links: []*entity.UserCompany{
		{UserID: testUserID, CompanyID: testCompanyA, Role: entity.RoleManagerOwner},
	}}
	app := buildTenantApp(memberships)

	tok := issueToken(t, testUserID, entity.RoleManagerOwner, nil)
	req := httptest.NewRequest(http.MethodGet, "/companies/"+testCompanyA+"/data", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireCompanyAccess — aislamiento de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCompanyAccess_AccesoCruzado_Retorna403(t *testing.T) {
	memberships := &fakeMemberships{links: []*entity.UserCompany{
		{UserID: testUserID, CompanyID: testCompanyA, Role: entity.RoleManagerOwner},
	}}
	app := buildTenantApp(memberships)

	// Miembro de A pidiendo datos de B: 403, nunca 404.
	tok := issueToken(t, testUserID, entity.RoleManagerOwner, nil)
	resp := getWithCookie(t, app, "/companies/"+testCompanyB+"/data", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireCompanyAccess_ModoSoporteAbreLaEmpresaImpersonada(t *testing.T) {
	// Sin membresía alguna: el acceso viene solo del modo soporte.
	app := buildTenantApp(&fakeMemberships{})

	sm := &pkgjwt.SupportMode{CompanyID: testCompanyB, AdminID: testAdminID}
	tok := issueToken(t, testAdminID, entity.RoleSuperAdmin, sm)

	resp := getWithCookie(t, app, "/companies/"+testCompanyB+"/data", tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Pero NO abre otras empresas.
	resp2 := getWithCookie(t, app, "/companies/"+testCompanyA+"/data", tok)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestRequireCompanyAccess_SuperAdminSinSoporteNiMembresia_Retorna403(t *testing.T) {
	app := buildTenantApp(&fakeMemberships{})

	tok := issueToken(t, testAdminID, entity.RoleSuperAdmin, nil)
	resp := getWithCookie(t, app, "/companies/"+testCompanyA+"/data", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireSuperAdmin — reconfirmación contra la base
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp(users *fakeUsers) *fiber.App {
	app := fiber.New()
	app.Get("/admin/ping",
		apphttp.AuthMiddleware(testTokens),
		apphttp.RequireSuperAdmin(users),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

func TestRequireSuperAdmin_Acceso(t *testing.T) {
	users := &fakeUsers{users: map[string]*entity.User{
		testAdminID: {ID: testAdminID, Role: entity.RoleSuperAdmin},
	}}
	app := buildAdminApp(users)

	tok := issueToken(t, testAdminID, entity.RoleSuperAdmin, nil)
	resp := getWithCookie(t, app, "/admin/ping", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSuperAdmin_RolNormal_Retorna403(t *testing.T) {
	users := &fakeUsers{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Role: entity.RoleManagerOwner},
	}}
	app := buildAdminApp(users)

	tok := issueToken(t, testUserID, entity.RoleManagerOwner, nil)
	resp := getWithCookie(t, app, "/admin/ping", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireSuperAdmin_TokenViejoConRolRevocado_Retorna403(t *testing.T) {
	// El claim dice super_admin, pero en la base el rol ya fue degradado.
	users := &fakeUsers{users: map[string]*entity.User{
		testAdminID: {ID: testAdminID, Role: entity.RoleTechnicalAdmin},
	}}
	app := buildAdminApp(users)

	tok := issueToken(t, testAdminID, entity.RoleSuperAdmin, nil)
	resp := getWithCookie(t, app, "/admin/ping", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
