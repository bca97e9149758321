package forecast

import "context"

// ChangeDetector observa el almacén de snapshots y registra de forma durable
// las identidades de fila afectadas (inserts, updates y deletes) desde el
// último drenaje. Semántica at-least-once: no reporta dos veces lo drenado y
// no pierde cambios que lleguen entre la consulta y el drenaje. No garantiza
// orden entre deltas (el motor recomputa siempre desde el estado completo).
type ChangeDetector interface {
	// HasPendingChanges indica si hay cambios sin consumir.
	HasPendingChanges(ctx context.Context) (bool, error)

	// PendingChanges devuelve los IDs de los cambios visibles al momento de
	// la consulta. Solo un cambio ya confirmado (commit) entra al conjunto:
	// una escritura cuya transacción empezó antes de la consulta pero
	// confirma después no aparece, y por eso sobrevive al drenaje aunque su
	// marca de tiempo sea anterior. El conjunto es el contrato del ciclo: lo
	// que se drena es exactamente lo que se consultó, sin comparar relojes.
	PendingChanges(ctx context.Context) ([]int64, error)

	// Drain elimina exactamente los cambios identificados (el conjunto
	// devuelto por PendingChanges antes de la corrida) y devuelve cuántos
	// drenó. Todo cambio fuera del conjunto queda pendiente para el
	// siguiente ciclo.
	Drain(ctx context.Context, ids []int64) (int64, error)
}
