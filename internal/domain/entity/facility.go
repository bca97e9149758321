package entity

import "time"

// Facility representa un centro de la red (hospital o bodega regional).
// Datos de referencia inmutables: se crean una vez y no se eliminan en
// operación normal. Las coordenadas son descriptivas (mapa del dashboard),
// el core no hace consultas geográficas sobre ellas.
type Facility struct {
	FacilityID string // identificador único de la red (ej: "HF-0042")
	Name       string
	City       string
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
}
