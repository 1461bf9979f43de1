package staff

import (
	"context"
	"strconv"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

type RemoveBarber struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewRemoveBarber(st *store.Store, dispatcher *audit.Dispatcher) *RemoveBarber {
	return &RemoveBarber{store: st, audit: dispatcher}
}

// Execute tira o barbeiro da equipe. Agendamentos futuros que o
// referenciam ficam como estão, com barber_id/barber_name órfãos:
// equipe e agendamentos não têm integridade referencial entre si,
// comportamento aceito e preservado. ID desconhecido é no-op.
func (uc *RemoveBarber) Execute(ctx context.Context, id int64) error {
	removed := false

	err := uc.store.UpdateBarbers(ctx, func(barbers []models.Barber) ([]models.Barber, error) {
		out := barbers[:0]
		for _, b := range barbers {
			if b.ID == id {
				removed = true
				continue
			}
			out = append(out, b)
		}
		return out, nil
	})
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Dispatch(audit.Event{
			Action:   "barber_removed",
			Entity:   "barber",
			EntityID: strconv.FormatInt(id, 10),
		})
	}

	return nil
}
