package booking

import (
	"context"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

type HideAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewHideAppointment(st *store.Store, dispatcher *audit.Dispatcher) *HideAppointment {
	return &HideAppointment{store: st, audit: dispatcher}
}

// Execute baixa a flag visible_to_client. É um "dispensar da tela
// do cliente" de mão única: nunca volta a true e o registro nunca
// é apagado. Idempotente e tolerante a ID desconhecido.
func (uc *HideAppointment) Execute(ctx context.Context, id string) error {
	changed := false

	err := uc.store.UpdateAppointments(ctx, func(apps []models.Appointment) ([]models.Appointment, error) {
		for i := range apps {
			if apps[i].ID == id && apps[i].VisibleToClient {
				apps[i].VisibleToClient = false
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
			Action:   "appointment_hidden",
			Entity:   "appointment",
			EntityID: id,
		})
	}

	return nil
}
