package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/application/notes"
	"github.com/invorya/stockroom-api/internal/application/seed"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
	"github.com/invorya/stockroom-api/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/stockroom-api/internal/interfaces/http"
	"github.com/invorya/stockroom-api/pkg/config"
	"github.com/invorya/stockroom-api/pkg/logger"
	"github.com/invorya/stockroom-api/pkg/session"
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
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén: la fábrica de conexiones y los repositorios se construyen aquí
	// y se inyectan; ningún componente toca un handle global.
	var (
		userRepo     repository.UserRepository
		locationRepo repository.LocationRepository
		stockRepo    repository.StockRepository
		noteRepo     repository.NoteRepository
		txRunner     inventory.TxRunner
	)
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		userRepo = store.Users()
		locationRepo = store.Locations()
		stockRepo = store.Stock()
		noteRepo = store.Notes()
		txRunner = store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		userRepo = postgres.NewUserRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		stockRepo = postgres.NewStockRepository(pool)
		noteRepo = postgres.NewNoteRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	// La línea base se siembra antes de aceptar peticiones.
	if err := seed.New(txRunner, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.Expiration)
	authUC := auth.NewAuthUseCase(userRepo, sessions)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, userRepo, locationRepo, stockRepo, log)
	notesUC := notes.NewNoteUseCase(txRunner, noteRepo, log)

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		NotesUC:     notesUC,
		Sessions:    sessions,
		Log:         log,
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
