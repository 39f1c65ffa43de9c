package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SocketStudioec/ITAssetManager/internal/application/analytics"
	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/reports"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	AssetUC       *usecase.AssetUseCase
	ContractUC    *usecase.ContractUseCase
	LicenseUC     *usecase.LicenseUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportPDFUC   *reports.PDFUseCase
	Auditor       *audit.Auditor
	Guard         *tenant.Guard
	Tokens        *jwt.Service
	UserRepo      repository.UserRepository
	SecureCookies bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register y login públicos; el resto requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookies)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/user", AuthMiddleware(deps.Tokens), authHandler.CurrentUser)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	// Companies: empresas del usuario autenticado
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/companies", companyHandler.Memberships)

	// Assets
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.Guard)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC, deps.Guard)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Delete("/:id", contractHandler.Delete)

	// Licenses
	licenses := protected.Group("/licenses")
	licenseHandler := NewLicenseHandler(deps.LicenseUC, deps.Guard)
	licenses.Post("/", licenseHandler.Create)
	licenses.Get("/", licenseHandler.List)
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Delete("/:id", licenseHandler.Delete)

	// Maintenance
	maintenance := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC, deps.Guard)
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Get("/:id", maintenanceHandler.GetByID)
	maintenance.Put("/:id", maintenanceHandler.Update)
	maintenance.Delete("/:id", maintenanceHandler.Delete)

	// Dashboard (membresía o modo soporte sobre :companyId)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportPDFUC)
	dashboard := protected.Group("/dashboard/:companyId", RequireCompanyAccess(deps.Guard))
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/report.pdf", dashboardHandler.CostReportPDF)

	// Activity (bitácora, misma regla de acceso que el dashboard)
	activityHandler := NewActivityHandler(deps.Auditor)
	protected.Get("/activity/:companyId", RequireCompanyAccess(deps.Guard), activityHandler.List)

	// Admin (solo super_admin, reconfirmado contra la base)
	admin := protected.Group("/admin", RequireSuperAdmin(deps.UserRepo))
	adminHandler := NewAdminHandler(deps.AuthUC, deps.CompanyUC, deps.Tokens, deps.SecureCookies)
	admin.Get("/companies", adminHandler.ListCompanies)
	admin.Post("/support-access/:companyId", adminHandler.EnterSupportMode)
	admin.Post("/exit-support", adminHandler.ExitSupportMode)
}
