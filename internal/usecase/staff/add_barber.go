package staff

import (
	"context"
	"strconv"
	"time"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
	"github.com/barbeariajosimar/booking-api/internal/timezone"
)

type AddBarber struct {
	store *store.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewAddBarber(st *store.Store, dispatcher *audit.Dispatcher) *AddBarber {
	return &AddBarber{store: st, audit: dispatcher, now: timezone.Now}
}

// Execute cadastra um barbeiro com ID derivado do timestamp.
// Se o milissegundo colidir com um ID existente (ou com os IDs
// pequenos do seed em relógios de teste), avança até ficar único.
func (uc *AddBarber) Execute(ctx context.Context, name string) (*models.Barber, error) {
	var created *models.Barber

	err := uc.store.UpdateBarbers(ctx, func(barbers []models.Barber) ([]models.Barber, error) {
		id := uc.now().UnixMilli()
		for _, b := range barbers {
			if b.ID >= id {
				id = b.ID + 1
			}
		}

		barber := models.Barber{ID: id, Name: name}
		created = &barber
		return append(barbers, barber), nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_added",
		Entity:   "barber",
		EntityID: strconv.FormatInt(created.ID, 10),
	})

	return created, nil
}
