package booking

import (
	"context"
	"time"

	domain "github.com/barbeariajosimar/booking-api/internal/domain/booking"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
	"github.com/barbeariajosimar/booking-api/internal/timezone"
)

type ListAppointments struct {
	store *store.Store
	now   func() time.Time
}

func NewListAppointments(st *store.Store) *ListAppointments {
	return &ListAppointments{store: st, now: timezone.Now}
}

// ForClient devolve os agendamentos do cliente que ele ainda pode
// ver (inclui cancelados; ocultos ficam de fora).
func (uc *ListAppointments) ForClient(ctx context.Context, email string) ([]models.Appointment, error) {
	apps, err := uc.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0)
	for _, ap := range apps {
		if ap.ClientEmail == email && ap.VisibleToClient {
			out = append(out, ap)
		}
	}
	return out, nil
}

// ActiveForClient é o filtro "meus agendamentos ativos": visíveis
// e não cancelados.
func (uc *ListAppointments) ActiveForClient(ctx context.Context, email string) ([]models.Appointment, error) {
	apps, err := uc.ForClient(ctx, email)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if !domain.Status(ap.Status).IsCancelled() {
			out = append(out, ap)
		}
	}
	return out, nil
}

// All é a visão do dono: tudo, inclusive cancelados e ocultos.
func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	apps, err := uc.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Appointment{}
	}
	return apps, nil
}

// Availability enumera os horários da grade do dia ainda livres
// para o barbeiro: passa no ValidateSlot e não conflita.
func (uc *ListAppointments) Availability(ctx context.Context, date string, barberID int64) ([]string, error) {
	apps, err := uc.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	free := make([]string, 0)

	for _, hm := range domain.DaySlots() {
		if domain.ValidateSlot(date, hm, now) != nil {
			continue
		}
		if domain.HasConflict(apps, date, hm, barberID) {
			continue
		}
		free = append(free, hm)
	}
	return free, nil
}
