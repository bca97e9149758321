package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appforecast "github.com/jhoicas/swiftstock-api/internal/application/forecast"
	"github.com/jhoicas/swiftstock-api/internal/application/usecase"
	"github.com/jhoicas/swiftstock-api/internal/domain/repository"
	"github.com/jhoicas/swiftstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/swiftstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/swiftstock-api/internal/interfaces/http"
	"github.com/jhoicas/swiftstock-api/pkg/config"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
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
		Str("driver", cfg.Forecast.StorageDriver).
		Dur("refresh", cfg.Forecast.RefreshInterval).
		Dur("target_lag", cfg.Forecast.AlertTargetLag).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		snapshotRepo  repository.SnapshotRepository
		predictedRepo repository.PredictedRepository
		facilityRepo  repository.FacilityRepository
		transferRepo  repository.TransferLogRepository
		detector      appforecast.ChangeDetector
	)

	switch cfg.Forecast.StorageDriver {
	case "memory":
		// Driver de desarrollo: todo en proceso, sin PostgreSQL.
		memDetector := memory.NewChangeDetector()
		snapshotRepo = memory.NewSnapshotRepository(memDetector)
		predictedRepo = memory.NewPredictedRepository()
		facilityRepo = memory.NewFacilityRepository()
		transferRepo = memory.NewTransferLogRepository()
		detector = memDetector
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		snapshotRepo = postgres.NewSnapshotRepository(pool)
		predictedRepo = postgres.NewPredictedRepository(pool)
		facilityRepo = postgres.NewFacilityRepository(pool)
		transferRepo = postgres.NewTransferLogRepository(pool)
		detector = postgres.NewChangeDetector(pool)
	}

	forecastUC := appforecast.NewUseCase(snapshotRepo, predictedRepo, log)
	scheduler := appforecast.NewScheduler(forecastUC, detector, cfg.Forecast.RefreshInterval, log)
	alertView := appforecast.NewAlertView(predictedRepo, cfg.Forecast.AlertTargetLag, log)

	snapshotUC := usecase.NewSnapshotUseCase(snapshotRepo)
	facilityUC := usecase.NewFacilityUseCase(facilityRepo)
	transferUC := usecase.NewTransferUseCase(transferRepo, facilityRepo)

	// Corrida manual inicial antes de habilitar el schedule: el dataset
	// predicho nunca arranca vacío aunque no haya cambios pendientes.
	if msg, err := forecastUC.PredictDemand(ctx); err != nil {
		log.Warn().Err(err).Str("status", msg).Msg("corrida inicial fallida, el scheduler reintenta")
	} else {
		log.Info().Str("status", msg).Msg("corrida inicial completada")
	}

	scheduler.Start(ctx)
	alertView.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ForecastUC: forecastUC,
		Detector:   detector,
		AlertView:  alertView,
		SnapshotUC: snapshotUC,
		FacilityUC: facilityUC,
		TransferUC: transferUC,
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
	stop() // detiene scheduler y refresher de alertas

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
