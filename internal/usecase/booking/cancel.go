package booking

import (
	"context"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	domain "github.com/barbeariajosimar/booking-api/internal/domain/booking"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

type CancelAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewCancelAppointment(st *store.Store, dispatcher *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{store: st, audit: dispatcher}
}

// Execute marca o agendamento como cancelado. ID desconhecido (ou
// já cancelado) é no-op silencioso, comportamento tolerante
// preservado do fluxo original.
func (uc *CancelAppointment) Execute(ctx context.Context, id string) error {
	changed := false

	err := uc.store.UpdateAppointments(ctx, func(apps []models.Appointment) ([]models.Appointment, error) {
		for i := range apps {
			if apps[i].ID == id && !domain.Status(apps[i].Status).IsCancelled() {
				apps[i].Status = string(domain.StatusCancelled)
				changed = true
			}
		}
		return apps, nil
	})
	if err != nil {
		return err
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: id,
		})
	}

	return nil
}
