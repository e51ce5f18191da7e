// @title        Despensa API
// @version      1.0
// @description  API de inventario de despensa: productos, lotes con vencimiento y stock bajo.
// @BasePath     /
// @securityDefinitions.basic  BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	_ "github.com/jhoicas/Despensa-api/docs"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
	infrapdf "github.com/jhoicas/Despensa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Despensa-api/internal/interfaces/http"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	}
	store, closeStore, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer closeStore()

	authUC := auth.NewAuthUseCase(store, auth.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
	})
	if err := authUC.SeedUsers(ctx, cfg.Auth.AdminPassword, cfg.Auth.UserPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}

	policy := stock.NewExpiryPolicy(cfg.Stock.ApproachingDays)
	productUC := usecase.NewProductUseCase(store)
	stockUC := usecase.NewStockUseCase(store, policy)

	// PDF: informe de existencias
	reportUC := report.NewUseCase(store, policy, infrapdf.NewMarotoPDFGenerator(), "Despensa")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Despensa API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.File).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:           productUC,
		StockUC:             stockUC,
		AuthUC:              authUC,
		ReportUC:            reportUC,
		ExpiringDefaultDays: cfg.Stock.ExpiringDefaultDays,
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
