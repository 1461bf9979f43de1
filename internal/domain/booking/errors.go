package booking

import "fmt"

// ValidationError: o slot pedido fere uma regra de funcionamento
// (passado, domingo, fora do expediente). Reason é a mensagem
// exibível ao cliente.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConflictError: já existe agendamento não cancelado para o mesmo
// (data, hora, barbeiro).
type ConflictError struct {
	Date     string
	Time     string
	BarberID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s already taken for barber %d", e.Date, e.Time, e.BarberID)
}
