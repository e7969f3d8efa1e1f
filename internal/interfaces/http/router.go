package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pronostico-api/internal/application/auth"
	appfc "github.com/jhoicas/Pronostico-api/internal/application/forecast"
	"github.com/jhoicas/Pronostico-api/internal/application/usecase"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ProductUC  *usecase.ProductUseCase
	SalesUC    *usecase.SalesUseCase
	ForecastUC *appfc.ForecastUseCase
	ReportUC   *appfc.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido). Retirar un producto es solo para admins.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/restock", productHandler.Restock)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Retire)

	// Sales (protegido)
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Register)
	sales.Get("/:productId", salesHandler.History)

	// Forecast + reporte de reposición (protegido). La ruta fija /report se
	// registra antes que /:productId para que Fiber no la capture como ID.
	forecastGroup := protected.Group("/forecast")
	forecastHandler := NewForecastHandler(deps.ForecastUC, deps.ReportUC)
	forecastGroup.Get("/report", forecastHandler.GetReport)
	forecastGroup.Get("/:productId", forecastHandler.GetForecast)
}
