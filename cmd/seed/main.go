package main

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/swiftstock-api/internal/domain"
	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
	"github.com/jhoicas/swiftstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/swiftstock-api/pkg/config"
	"github.com/jhoicas/swiftstock-api/pkg/logger"
)

// Generador de datos de demo: centros de la red más el snapshot diario de
// hoy, con un escenario de crisis/superávit para el ítem de demo (Oxytocin)
// que hace visible la lista de reposición sin esperar datos reales.

type masterItem struct {
	name string
	cat  string
	crit string
}

var masterItems = []masterItem{
	{"Oxytocin Injection", "Maternal", entity.CriticalityHigh}, // ítem de demo
	{"Magnesium Sulfate", "Maternal", entity.CriticalityHigh},
	{"Amoxicillin 500mg", "Antibiotic", entity.CriticalityMedium},
	{"Azithromycin", "Antibiotic", entity.CriticalityMedium},
	{"Insulin Glargine", "Chronic", entity.CriticalityHigh},
	{"Metformin 500mg", "Chronic", entity.CriticalityMedium},
	{"Amlodipine 5mg", "Chronic", entity.CriticalityMedium},
	{"Ringer Lactate", "Fluids", entity.CriticalityHigh},
	{"Normal Saline 0.9%", "Fluids", entity.CriticalityMedium},
	{"Epinephrine", "Emergency", entity.CriticalityHigh},
	{"BCG Vaccine", "Vaccine", entity.CriticalityHigh},
	{"Polio Vaccine", "Vaccine", entity.CriticalityHigh},
	{"Surgical Masks", "Consumable", entity.CriticalityLow},
	{"Sterile Gloves", "Consumable", entity.CriticalityLow},
	{"Disposable Syringes 3ml", "Consumable", entity.CriticalityLow},
	{"IV Cannula", "Consumable", entity.CriticalityMedium},
	{"HIV Rapid Test Kit", "Diagnostic", entity.CriticalityHigh},
	{"Malaria RDT", "Diagnostic", entity.CriticalityHigh},
	{"Blood Glucose Strips", "Diagnostic", entity.CriticalityMedium},
	{"Paracetamol 500mg", "General", entity.CriticalityLow},
	{"Ibuprofen 400mg", "General", entity.CriticalityLow},
	{"Oral Rehydration Salts", "General", entity.CriticalityMedium},
	{"TB-Kit Adult", "Infectious", entity.CriticalityHigh},
	{"Artemether (Malaria)", "Infectious", entity.CriticalityHigh},
	{"Folic Acid", "Maternal", entity.CriticalityLow},
}

var demoFacilities = []entity.Facility{
	{FacilityID: "HF-001", Name: "Hospital Central de Bogotá", City: "Bogotá", Latitude: 4.6097, Longitude: -74.0817},
	{FacilityID: "HF-002", Name: "Clínica del Norte", City: "Bogotá", Latitude: 4.7110, Longitude: -74.0721},
	{FacilityID: "HF-003", Name: "Hospital General de Medellín", City: "Medellín", Latitude: 6.2442, Longitude: -75.5812},
	{FacilityID: "HF-004", Name: "Clínica Las Américas", City: "Medellín", Latitude: 6.2308, Longitude: -75.6046},
	{FacilityID: "HF-005", Name: "Hospital Universitario del Valle", City: "Cali", Latitude: 3.4516, Longitude: -76.5320},
	{FacilityID: "HF-006", Name: "Clínica Valle del Lili", City: "Cali", Latitude: 3.3724, Longitude: -76.5266},
	{FacilityID: "HF-007", Name: "Hospital Metropolitano", City: "Barranquilla", Latitude: 10.9685, Longitude: -74.7813},
	{FacilityID: "HF-008", Name: "Hospital de Bucaramanga", City: "Bucaramanga", Latitude: 7.1193, Longitude: -73.1227},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	facilityRepo := postgres.NewFacilityRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	for i := range demoFacilities {
		f := demoFacilities[i]
		if err := facilityRepo.Create(ctx, &f); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("facility", f.FacilityID).Msg("crear centro")
		}
	}

	// Primeros tres centros en crisis con el ítem de demo; el más cercano a
	// cada uno queda con superávit (candidato a traslado en el dashboard).
	victims := map[string]bool{"HF-001": true, "HF-002": true, "HF-003": true}
	saviors := map[string]bool{}
	for id := range victims {
		if nearest := nearestFacility(id); nearest != "" {
			saviors[nearest] = true
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var rowCount int
	for _, fac := range demoFacilities {
		// Al menos 20 ítems por centro
		selected := rng.Perm(len(masterItems))[:20+rng.Intn(len(masterItems)-19)]
		picked := map[int]bool{}
		for _, idx := range selected {
			picked[idx] = true
		}
		if victims[fac.FacilityID] || saviors[fac.FacilityID] {
			picked[0] = true // el ítem de demo siempre presente en el escenario
		}

		for idx := range picked {
			item := masterItems[idx]
			opening := int64(100 + rng.Intn(301))
			received := int64(rng.Intn(31))
			issued := int64(5 + rng.Intn(21))

			if item.name == masterItems[0].name {
				switch {
				case victims[fac.FacilityID]:
					opening, received, issued = 10, 0, 10 // crisis
				case saviors[fac.FacilityID]:
					opening, received, issued = 600, 0, 5 // superávit
				}
			}

			closing := opening + received - issued
			if closing < 0 {
				closing = 0
			}

			s := entity.InventorySnapshot{
				Date:             today,
				FacilityID:       fac.FacilityID,
				ItemName:         item.name,
				Category:         item.cat,
				OpeningStock:     decimal.NewFromInt(opening),
				ReceivedQty:      decimal.NewFromInt(received),
				IssuedQty:        decimal.NewFromInt(issued),
				ClosingStock:     decimal.NewFromInt(closing),
				LeadTimeDays:     2 + rng.Intn(5),
				CriticalityLevel: item.crit,
			}
			if err := snapshotRepo.Upsert(ctx, &s); err != nil {
				log.Fatal().Err(err).Str("facility", fac.FacilityID).Str("item", item.name).Msg("upsert snapshot")
			}
			rowCount++
		}
	}

	log.Info().Int("facilities", len(demoFacilities)).Int("rows", rowCount).Msg("datos de demo generados")
}

// nearestFacility devuelve el centro más cercano por distancia euclidiana
// sobre lat/lon. Suficiente para elegir el par crisis/superávit de la demo.
func nearestFacility(facilityID string) string {
	var src *entity.Facility
	for i := range demoFacilities {
		if demoFacilities[i].FacilityID == facilityID {
			src = &demoFacilities[i]
			break
		}
	}
	if src == nil {
		return ""
	}
	best, bestDist := "", math.MaxFloat64
	for _, f := range demoFacilities {
		if f.FacilityID == facilityID {
			continue
		}
		d := math.Hypot(f.Latitude-src.Latitude, f.Longitude-src.Longitude)
		if d < bestDist {
			best, bestDist = f.FacilityID, d
		}
	}
	return best
}
