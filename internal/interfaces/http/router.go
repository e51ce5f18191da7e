package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC           *usecase.ProductUseCase
	StockUC             *usecase.StockUseCase
	AuthUC              *auth.AuthUseCase
	ReportUC            *report.UseCase // nil = sin /stock/report
	ExpiringDefaultDays int
}

// Router registra las rutas de la API. Lectura: rol user o admin; escritura: admin.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.AuthUC)
	readers := RequireRole(entity.RoleUser, entity.RoleAdmin)
	admins := RequireRole(entity.RoleAdmin)

	// Tokens (solo si hay JWT_SECRET)
	if deps.AuthUC.TokensEnabled() {
		authHandler := NewAuthHandler(deps.AuthUC)
		app.Post("/auth/token", authMW, authHandler.Token)
	}

	app.Get("/categories", authMW, readers, ListCategories)

	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC, deps.ExpiringDefaultDays)

	// Products
	products := app.Group("/products", authMW)
	products.Get("/", readers, productHandler.List)
	products.Post("/", admins, productHandler.Create)
	products.Get("/:id", readers, productHandler.GetByID)
	products.Put("/:id", admins, productHandler.Update)
	products.Delete("/:id", admins, productHandler.Delete)
	products.Get("/:id/stock", readers, stockHandler.ListByProduct)
	products.Post("/:id/stock", admins, stockHandler.Create)

	// Stock (las rutas fijas antes que /:id)
	stockGroup := app.Group("/stock", authMW)
	stockGroup.Get("/expired", readers, stockHandler.Expired)
	stockGroup.Get("/expiring", readers, stockHandler.Expiring)
	stockGroup.Get("/low", readers, productHandler.LowStock)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		stockGroup.Get("/report", readers, reportHandler.StockReport)
	}
	stockGroup.Patch("/:id", admins, stockHandler.Patch)
	stockGroup.Put("/:id", admins, stockHandler.Replace)
	stockGroup.Delete("/:id", admins, stockHandler.Delete)
}
