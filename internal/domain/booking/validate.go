package booking

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// Expediente fixo da barbearia. A regra olha apenas o campo
	// da hora: 19:59 passa, 20:00 não. Quirk herdado e preservado.
	OpeningHour = 9
	ClosingHour = 19

	ClosedWeekday = time.Weekday(0) // domingo
)

// ValidateSlot decide se (date, time) é agendável em relação a now.
// Puro: não toca no store. Retorna nil ou *ValidationError, na
// mesma ordem de checagens do fluxo original: passado → domingo →
// expediente.
func ValidateSlot(date, hm string, now time.Time) error {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hm, now.Location())
	if err != nil {
		return &ValidationError{Reason: "Data ou hora inválida."}
	}

	if !start.After(now) {
		return &ValidationError{Reason: "Não é possível agendar no passado."}
	}

	if start.Weekday() == ClosedWeekday {
		return &ValidationError{Reason: "Fechado aos domingos."}
	}

	if hour := start.Hour(); hour < OpeningHour || hour > ClosingHour {
		return &ValidationError{Reason: "Horário apenas entre 09:00 e 19:00."}
	}

	return nil
}
