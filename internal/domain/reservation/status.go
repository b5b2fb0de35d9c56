package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid valida el valor del estado. No hay grafo de transiciones:
// cualquier cambio entre estados válidos se acepta.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Prioridad para el orden de agenda: pendientes primero, canceladas al final.
// Estados desconocidos van después de todo.
func (s Status) Priority() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusCompleted:
		return 2
	case StatusCancelled:
		return 3
	}
	return 4
}

func InitialStatus() Status {
	return StatusPending
}
