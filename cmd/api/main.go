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

	"github.com/jhoicas/Rentabilidad-api/docs"
	"github.com/jhoicas/Rentabilidad-api/internal/application/auth"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	infrapdf "github.com/jhoicas/Rentabilidad-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Rentabilidad-api/internal/interfaces/http"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
	"github.com/jhoicas/Rentabilidad-api/pkg/money"
)

// @title                       Rentabilidad API
// @version                     1.0
// @description                 Rentabilidad neta de un producto por canal de venta.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	// Tabla de canales embebida: un error aquí es un defecto de build.
	registry := channel.MustLoadDefault()
	engine := profitability.NewEngine(registry)

	formatter, err := money.New(cfg.Report.Locale, cfg.Report.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda del reporte")
	}

	productRepo := postgres.NewProductRepository(pool)
	channelRepo := postgres.NewSalesChannelRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, txRunner, registry)
	salesChannelUC := usecase.NewSalesChannelUseCase(productRepo, channelRepo, registry)
	profitabilityUC := usecase.NewProfitabilityUseCase(
		productRepo, channelRepo, registry, engine,
		infrapdf.NewMarotoPDFGenerator(formatter),
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		SalesChannelUC:  salesChannelUC,
		ProfitabilityUC: profitabilityUC,
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
