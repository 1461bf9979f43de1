package booking

import "github.com/barbeariajosimar/booking-api/internal/models"

// FindConflict varre a coleção procurando agendamento não cancelado
// no mesmo slot do mesmo barbeiro. Varredura linear: a escala é uma
// barbearia, não precisa de índice.
func FindConflict(apps []models.Appointment, date, hm string, barberID int64) *models.Appointment {
	for i := range apps {
		ap := &apps[i]
		if ap.Date == date &&
			ap.Time == hm &&
			ap.BarberID == barberID &&
			!Status(ap.Status).IsCancelled() {
			return ap
		}
	}
	return nil
}

func HasConflict(apps []models.Appointment, date, hm string, barberID int64) bool {
	return FindConflict(apps, date, hm, barberID) != nil
}
