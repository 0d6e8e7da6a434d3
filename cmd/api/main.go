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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Cartera-api/docs"
	"github.com/jhoicas/Cartera-api/internal/application/auth"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/application/ports"
	"github.com/jhoicas/Cartera-api/internal/application/reminder"
	"github.com/jhoicas/Cartera-api/internal/application/report"
	"github.com/jhoicas/Cartera-api/internal/domain/repository"
	infraai "github.com/jhoicas/Cartera-api/internal/infrastructure/ai"
	infrabolt "github.com/jhoicas/Cartera-api/internal/infrastructure/bolt"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/memory"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Cartera-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Cartera-api/internal/infrastructure/redis"
	"github.com/jhoicas/Cartera-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Cartera-api/internal/interfaces/http"
	"github.com/jhoicas/Cartera-api/pkg/config"
	"github.com/jhoicas/Cartera-api/pkg/logger"
	"github.com/jhoicas/Cartera-api/pkg/money"
)

// @title        Cartera API
// @version      1.0
// @description  Cuaderno de cuentas por cobrar: clientes, créditos, pagos, saldos y recordatorios.
// @BasePath     /
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
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openBlobStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	m := metrics.New(prometheus.DefaultRegisterer)
	formatter := money.NewFormatter(cfg.Ledger.Currency)

	// Proveedor de texto solo si hay credencial; sin ella se usa la plantilla local.
	var llm ports.LLMService
	if cfg.AI.Enabled() {
		switch cfg.AI.Provider {
		case config.AIProviderAnthropic:
			llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		default:
			llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
		log.Info().Str("provider", cfg.AI.Provider).Msg("recordatorios vía proveedor de IA")
	}
	drafter := reminder.NewDrafter(llm, formatter, log.Component("reminder"))

	ledgerStorage := storage.NewLedgerStorage(store, log.Component("storage"), m)
	ledgerSvc := ledger.NewService(ledgerStorage, drafter, log.Component("ledger"), ledger.WithMetrics(m))
	if err := ledgerSvc.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar cuaderno")
	}

	reportUC := report.NewUseCase(ledgerSvc, infrapdf.NewMarotoPDFGenerator(formatter), cfg.App.Name)
	authUC := auth.NewAuthUseCase(
		auth.Owner{Email: cfg.Owner.Email, PasswordHash: cfg.Owner.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	if cfg.Owner.Email == "" || cfg.Owner.PasswordHash == "" {
		log.Warn().Msg("OWNER_EMAIL/OWNER_PASSWORD_HASH sin configurar: el login siempre fallará")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cartera API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    ledgerSvc,
		Reports:   reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
		Gatherer:  prometheus.DefaultGatherer,
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

// openBlobStore abre el backend elegido por STORAGE_DRIVER.
func openBlobStore(ctx context.Context, cfg *config.Config) (repository.BlobStore, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return postgres.OpenBlobStore(ctx, cfg.DB)
	case config.StorageRedis:
		return infraredis.Open(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
	case config.StorageMemory:
		return memory.NewBlobStore(), nil
	default:
		return infrabolt.Open(cfg.Storage.BoltPath)
	}
}
