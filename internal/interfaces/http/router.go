package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/auth"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/payments"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/reports"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC        *usecase.BranchUseCase
	CustomerUC      *usecase.CustomerUseCase
	GuarantorUC     *usecase.GuarantorUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	ProductUC       *usecase.ProductUseCase
	CreateContract  *contracts.CreateContractUseCase
	ContractUC      *contracts.ContractUseCase
	StatementUC     *contracts.StatementUseCase
	RegisterPayment *payments.RegisterPaymentUseCase
	ScheduleUC      *payments.ScheduleUseCase
	ReportUC        *reports.ReportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	sales := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	collection := RequireRole(entity.RoleAdmin, entity.RoleCobrador)
	reporting := RequireRole(entity.RoleAdmin, entity.RoleInspector)

	// Branches (solo admin escribe)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ContractUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/contracts", customerHandler.Contracts)
	customers.Post("/", sales, customerHandler.Create)
	customers.Put("/:id", sales, customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Guarantors
	guarantors := protected.Group("/guarantors")
	guarantorHandler := NewGuarantorHandler(deps.GuarantorUC)
	guarantors.Get("/", guarantorHandler.List)
	guarantors.Get("/:id", guarantorHandler.GetByID)
	guarantors.Post("/", sales, guarantorHandler.Create)
	guarantors.Put("/:id", sales, guarantorHandler.Update)
	guarantors.Delete("/:id", adminOnly, guarantorHandler.Delete)

	// Employees (solo admin escribe)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Put("/:id", adminOnly, employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Products (solo admin escribe)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Contracts
	contractsGroup := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.CreateContract, deps.ContractUC, deps.StatementUC)
	contractsGroup.Get("/", contractHandler.List)
	contractsGroup.Get("/:id", contractHandler.GetByID)
	contractsGroup.Get("/:id/statement.pdf", contractHandler.StatementPDF)
	contractsGroup.Get("/:id/statement.xml", contractHandler.StatementXML)
	contractsGroup.Post("/", sales, contractHandler.Create)
	contractsGroup.Put("/:id", adminOnly, contractHandler.Update)
	contractsGroup.Put("/:id/commission-rate", adminOnly, contractHandler.UpdateCommissionRate)
	contractsGroup.Delete("/:id", adminOnly, contractHandler.Cancel)

	// Payments (el cobro en ruta es de cobradores; las correcciones, de admin)
	paymentHandler := NewPaymentHandler(deps.RegisterPayment, deps.ScheduleUC)
	contractsGroup.Get("/:id/schedule", paymentHandler.Schedule)
	contractsGroup.Post("/:id/payments", collection, paymentHandler.Register)
	paymentsGroup := protected.Group("/payments")
	paymentsGroup.Put("/:id", adminOnly, paymentHandler.Update)
	paymentsGroup.Put("/:id/collector", adminOnly, paymentHandler.AssignCollector)
	paymentsGroup.Delete("/:id", adminOnly, paymentHandler.Delete)

	// Reports
	reportsGroup := protected.Group("/reports", reporting)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/sales/export.csv", reportHandler.SalesCSV)
	reportsGroup.Get("/collections", reportHandler.Collections)
	reportsGroup.Get("/inspectors/:id/contracts", reportHandler.InspectorContracts)
}
