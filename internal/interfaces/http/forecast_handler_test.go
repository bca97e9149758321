package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/swiftstock-api/internal/application/dto"
	"github.com/jhoicas/swiftstock-api/internal/application/forecast"
	"github.com/jhoicas/swiftstock-api/internal/application/usecase"
	"github.com/jhoicas/swiftstock-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/swiftstock-api/internal/interfaces/http"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: aplicación Fiber completa sobre los adaptadores en memoria.
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	alertView *forecast.AlertView
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	detector := memory.NewChangeDetector()
	snapshots := memory.NewSnapshotRepository(detector)
	predicted := memory.NewPredictedRepository()
	facilities := memory.NewFacilityRepository()
	transfers := memory.NewTransferLogRepository()

	forecastUC := forecast.NewUseCase(snapshots, predicted, logger.Nop())
	alertView := forecast.NewAlertView(predicted, time.Minute, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ForecastUC: forecastUC,
		Detector:   detector,
		AlertView:  alertView,
		SnapshotUC: usecase.NewSnapshotUseCase(snapshots),
		FacilityUC: usecase.NewFacilityUseCase(facilities),
		TransferUC: usecase.NewTransferUseCase(transfers, facilities),
	})
	return &testEnv{app: app, alertView: alertView}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func ingestRow(t *testing.T, app *fiber.App, facility, item string, opening, closing int) {
	t.Helper()
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/inventory/snapshots", fiber.Map{
		"date":          "2026-08-31",
		"facility_id":   facility,
		"item_name":     item,
		"opening_stock": opening,
		"closing_stock": closing,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestIngestSnapshot_Validacion(t *testing.T) {
	env := buildTestApp(t)

	resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/inventory/snapshots", fiber.Map{
		"date":        "31/08/2026", // formato inválido
		"facility_id": "HF-001",
		"item_name":   "Epinephrine",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, env.app, fiber.MethodPost, "/api/inventory/snapshots", fiber.Map{
		"date":      "2026-08-31",
		"item_name": "Epinephrine", // sin centro
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestForecastFlow_IngestaCorridaAlertas: flujo completo por la API —
// ingesta → cambios pendientes → corrida manual → vista de alertas.
func TestForecastFlow_IngestaCorridaAlertas(t *testing.T) {
	env := buildTestApp(t)

	// Sin datos aún: sin cambios pendientes y sin alertas.
	resp, raw := doJSON(t, env.app, fiber.MethodGet, "/api/forecast/changes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pending dto.PendingChangesResponse
	require.NoError(t, json.Unmarshal(raw, &pending))
	assert.False(t, pending.Pending)

	// Ingesta: crisis en HF-001; HF-002 con cobertura amplia tras recibir stock
	// (uso 15, horizonte 20 días → OK, fuera de la lista).
	ingestRow(t, env.app, "HF-001", "Oxytocin Injection", 10, 0)
	resp2, _ := doJSON(t, env.app, fiber.MethodPost, "/api/inventory/snapshots", fiber.Map{
		"date":          "2026-08-31",
		"facility_id":   "HF-002",
		"item_name":     "Oxytocin Injection",
		"opening_stock": 100,
		"received_qty":  250,
		"issued_qty":    50,
		"closing_stock": 300,
	})
	require.Equal(t, fiber.StatusCreated, resp2.StatusCode)

	resp, raw = doJSON(t, env.app, fiber.MethodGet, "/api/forecast/changes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &pending))
	assert.True(t, pending.Pending, "la ingesta queda capturada por el detector")

	// Corrida manual del motor.
	resp, raw = doJSON(t, env.app, fiber.MethodPost, "/api/forecast/run", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var run dto.ForecastRunResponse
	require.NoError(t, json.Unmarshal(raw, &run))
	assert.Contains(t, run.Message, "2 filas")

	// La vista refresca en su propia cadencia; acá se fuerza el refresco.
	env.alertView.Refresh(context.Background())

	resp, raw = doJSON(t, env.app, fiber.MethodGet, "/api/alerts", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var alerts dto.AlertListResponse
	require.NoError(t, json.Unmarshal(raw, &alerts))
	require.Equal(t, 1, alerts.Count, "solo la fila en crisis entra a la superficie de alertas")
	assert.Equal(t, "HF-001", alerts.Data[0].FacilityID)
	assert.Equal(t, "URGENT_REORDER", alerts.Data[0].Status)
	assert.Equal(t, int64(0), alerts.Data[0].PredictedStockoutDays)
	assert.False(t, alerts.RefreshedAt.IsZero())
}

func TestFacilities_CreateYList(t *testing.T) {
	env := buildTestApp(t)

	resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/facilities", fiber.Map{
		"facility_id": "HF-001",
		"name":        "Hospital Central de Bogotá",
		"city":        "Bogotá",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicado
	resp, _ = doJSON(t, env.app, fiber.MethodPost, "/api/facilities", fiber.Map{
		"facility_id": "HF-001",
		"name":        "Otro nombre",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, raw := doJSON(t, env.app, fiber.MethodGet, "/api/facilities/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Count int               `json:"count"`
		Data  []dto.FacilityDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Hospital Central de Bogotá", out.Data[0].Name)
}

func TestTransfers_LedgerInerte(t *testing.T) {
	env := buildTestApp(t)

	for _, f := range []fiber.Map{
		{"facility_id": "HF-001", "name": "Hospital Central"},
		{"facility_id": "HF-002", "name": "Clínica del Norte"},
	} {
		resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/facilities", f)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	// Centro inexistente: 404.
	resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/transfers", fiber.Map{
		"item_name":        "Oxytocin Injection",
		"from_facility_id": "HF-404",
		"to_facility_id":   "HF-001",
		"quantity":         50,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, raw := doJSON(t, env.app, fiber.MethodPost, "/api/transfers", fiber.Map{
		"item_name":        "Oxytocin Injection",
		"from_facility_id": "HF-002",
		"to_facility_id":   "HF-001",
		"quantity":         50,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.TransferDTO
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEmpty(t, created.TransferID)
	assert.Equal(t, "PENDING", created.Status)

	resp, raw = doJSON(t, env.app, fiber.MethodGet, "/api/transfers/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 1, out.Count)
}
