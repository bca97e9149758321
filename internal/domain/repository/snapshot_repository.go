package repository

import (
	"context"

	"github.com/jhoicas/swiftstock-api/internal/domain/entity"
)

// SnapshotRepository define el puerto de lectura/escritura del almacén de
// snapshots diarios (inventory_daily). La ingesta externa escribe vía Upsert;
// el motor de pronóstico solo usa ListAll (recomputa siempre desde el estado
// completo, nunca incremental).
type SnapshotRepository interface {
	// ListAll devuelve todas las filas del almacén. Es la única interfaz de
	// lectura del motor de pronóstico.
	ListAll(ctx context.Context) ([]entity.InventorySnapshot, error)

	// List devuelve filas filtradas por centro y/o ítem (vacío = sin filtro).
	List(ctx context.Context, facilityID, itemName string) ([]entity.InventorySnapshot, error)

	// Upsert inserta o actualiza la fila diaria (fecha, centro, ítem).
	Upsert(ctx context.Context, s *entity.InventorySnapshot) error
}

// PredictedRepository define el puerto del dataset predicho. El motor de
// pronóstico es su único escritor; la vista de alertas y las consultas ad-hoc
// son lectores.
type PredictedRepository interface {
	// ReplaceAll sustituye el dataset completo de forma atómica: o el
	// reemplazo entero queda publicado, o el dataset anterior queda intacto.
	// Los lectores nunca observan un estado intermedio.
	ReplaceAll(ctx context.Context, rows []entity.PredictedSnapshot) error

	// ListAll devuelve el dataset predicho vigente.
	ListAll(ctx context.Context) ([]entity.PredictedSnapshot, error)
}
