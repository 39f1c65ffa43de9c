package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SocketStudioec/ITAssetManager/internal/application/analytics"
	"github.com/SocketStudioec/ITAssetManager/internal/application/audit"
	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/reports"
	"github.com/SocketStudioec/ITAssetManager/internal/application/tenant"
	"github.com/SocketStudioec/ITAssetManager/internal/application/usecase"
	infrapdf "github.com/SocketStudioec/ITAssetManager/internal/infrastructure/pdf"
	"github.com/SocketStudioec/ITAssetManager/internal/infrastructure/postgres"
	httpRouter "github.com/SocketStudioec/ITAssetManager/internal/interfaces/http"
	"github.com/SocketStudioec/ITAssetManager/pkg/config"
	"github.com/SocketStudioec/ITAssetManager/pkg/jwt"
	"github.com/SocketStudioec/ITAssetManager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	if cfg.JWT.UsesDevKey {
		log.Warn().Msg("JWT_SECRET no configurado: usando el secreto de desarrollo, NO apto para producción")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	linkRepo := postgres.NewUserCompanyRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	auditor := audit.NewAuditor(activityRepo, log)
	guard := tenant.NewGuard(linkRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, linkRepo, txRunner, tokens, auditor)
	companyUC := usecase.NewCompanyUseCase(companyRepo, linkRepo)
	assetUC := usecase.NewAssetUseCase(assetRepo, companyRepo, auditor)
	contractUC := usecase.NewContractUseCase(contractRepo, auditor)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, auditor)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, assetRepo, auditor)
	dashboardUC := analytics.NewDashboardUseCase(assetRepo, contractRepo, licenseRepo, maintenanceRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := reports.NewPDFUseCase(companyRepo, dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ITAsset Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		AssetUC:       assetUC,
		ContractUC:    contractUC,
		LicenseUC:     licenseUC,
		MaintenanceUC: maintenanceUC,
		DashboardUC:   dashboardUC,
		ReportPDFUC:   reportPDFUC,
		Auditor:       auditor,
		Guard:         guard,
		Tokens:        tokens,
		UserRepo:      userRepo,
		SecureCookies: cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
