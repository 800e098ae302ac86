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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/auth"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/payments"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/reports"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/usecase"
	infraexport "github.com/tu-usuario/ventas-plazos-api/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/ventas-plazos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-plazos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-plazos-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-plazos-api/pkg/config"
	"github.com/tu-usuario/ventas-plazos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	guarantorRepo := postgres.NewGuarantorRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	defaultRate, err := decimal.NewFromString(cfg.Credit.DefaultCommissionRate)
	if err != nil {
		log.Fatal().Err(err).Msg("CREDIT_DEFAULT_COMMISSION_RATE inválido")
	}

	branchUC := usecase.NewBranchUseCase(branchRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	guarantorUC := usecase.NewGuarantorUseCase(guarantorRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	createContractUC := contracts.NewCreateContractUseCase(
		txRunner, customerRepo, guarantorRepo, employeeRepo, productRepo, contractRepo,
		defaultRate, cfg.Credit.DefaultCollectionDay,
	)
	contractUC := contracts.NewContractUseCase(
		contractRepo, customerRepo, productRepo, employeeRepo, paymentRepo,
	)

	// Estado de cuenta: PDF por Maroto, XML por etree
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	xmlBuilder := infraexport.NewStatementXMLService()
	statementUC := contracts.NewStatementUseCase(
		contractRepo, customerRepo, guarantorRepo, productRepo, paymentRepo,
		pdfGenerator, xmlBuilder,
	)

	registerPaymentUC := payments.NewRegisterPaymentUseCase(txRunner, contractRepo, employeeRepo)
	scheduleUC := payments.NewScheduleUseCase(contractRepo, paymentRepo, employeeRepo)
	reportUC := reports.NewReportUseCase(reportRepo, contractRepo, employeeRepo)

	authUC := auth.NewAuthUseCase(userRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Ventas a Plazos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:        branchUC,
		CustomerUC:      customerUC,
		GuarantorUC:     guarantorUC,
		EmployeeUC:      employeeUC,
		ProductUC:       productUC,
		CreateContract:  createContractUC,
		ContractUC:      contractUC,
		StatementUC:     statementUC,
		RegisterPayment: registerPaymentUC,
		ScheduleUC:      scheduleUC,
		ReportUC:        reportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
