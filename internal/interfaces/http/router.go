package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
	"github.com/jhoicas/swiftstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ForecastUC *forecast.UseCase
	Detector   forecast.ChangeDetector
	AlertView  *forecast.AlertView
	SnapshotUC *usecase.SnapshotUseCase
	FacilityUC *usecase.FacilityUseCase
	TransferUC *usecase.TransferUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Motor de pronóstico y vista de alertas
	forecastGroup := api.Group("/forecast")
	forecastHandler := NewForecastHandler(deps.ForecastUC, deps.Detector, deps.AlertView)
	forecastGroup.Post("/run", forecastHandler.Run)
	forecastGroup.Get("/changes", forecastHandler.PendingChanges)
	api.Get("/alerts", forecastHandler.Alerts)

	// Ingesta y consulta de inventario + centros
	inventoryHandler := NewInventoryHandler(deps.SnapshotUC, deps.FacilityUC)
	inventory := api.Group("/inventory")
	inventory.Post("/snapshots", inventoryHandler.IngestSnapshot)
	inventory.Get("/snapshots", inventoryHandler.ListSnapshots)

	facilities := api.Group("/facilities")
	facilities.Post("/", inventoryHandler.CreateFacility)
	facilities.Get("/", inventoryHandler.ListFacilities)

	// Ledger de traslados (auditoría)
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
}
