package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/serviceorder"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CompanyUC      *usecase.CompanyUseCase
	UserUC         *usecase.UserUseCase
	CustomerUC     *usecase.CustomerUseCase
	ProductUC      *usecase.ProductUseCase
	ServiceUC      *usecase.ServiceUseCase
	ServiceOrderUC *serviceorder.UseCase
	PrintoutUC     *serviceorder.PrintoutUseCase
	ReportUC       *usecase.ReportUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Grupos:
//   - /api/auth     público (login, registro, recuperación de contraseña)
//   - /api/admin    Bearer + rol general_admin (empresas, usuarios, órdenes globales)
//   - /api/manager  Bearer + rol manager (clientes, catálogo, órdenes, tablero)
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/password/recover", authHandler.RecoverPassword)

	// Panel del administrador general
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(deps.UserRepo, entity.RoleGeneralAdmin),
	)

	companies := admin.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.Get)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	adminOrders := admin.Group("/service-orders")
	adminOrderHandler := NewAdminServiceOrderHandler(deps.ServiceOrderUC)
	adminOrders.Get("/", adminOrderHandler.List)
	adminOrders.Get("/:id", adminOrderHandler.Get)

	// Panel del gerente (acotado a su empresa)
	manager := api.Group("/manager",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(deps.UserRepo, entity.RoleManager),
	)

	customers := manager.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	products := manager.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	services := manager.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.Get)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	orders := manager.Group("/service-orders")
	orderHandler := NewServiceOrderHandler(deps.ServiceOrderUC, deps.PrintoutUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Get("/:id/pdf", orderHandler.Printout)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC)
	manager.Get("/statistics", reportHandler.Statistics)
}
