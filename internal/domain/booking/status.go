package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusPending existe no formato persistido, mas nenhuma
	// operação o produz hoje: reservado para confirmação em duas
	// etapas no futuro.
	StatusPending Status = "pending"

	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Cancelled é terminal: nenhuma transição sai dele. Um "reagendamento"
// é sempre cancelar + criar um registro novo.
func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}
