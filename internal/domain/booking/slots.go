package booking

import "fmt"

// DaySlots enumera a grade de meia em meia hora de um dia de
// atendimento, 09:00 … 19:30. O limite superior acompanha a regra
// de hora do ValidateSlot (qualquer minuto da hora 19 é válido).
func DaySlots() []string {
	slots := make([]string, 0, 2*(ClosingHour-OpeningHour+1))
	for h := OpeningHour; h <= ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}
