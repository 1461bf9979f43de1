package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	domain "github.com/barbeariajosimar/booking-api/internal/domain/booking"
	"github.com/barbeariajosimar/booking-api/internal/httperr"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
	"github.com/barbeariajosimar/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID int
	BarberID  int64

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(st *store.Store, dispatcher *audit.Dispatcher) *CreateAppointment {
	return &CreateAppointment{
		store: st,
		audit: dispatcher,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Regras de funcionamento (puro, antes de qualquer escrita)
	if err := domain.ValidateSlot(in.Date, in.Time, uc.now()); err != nil {
		return nil, err
	}

	// 2. Resolve nomes a partir do catálogo e da equipe. Os IDs
	// ficam desnormalizados no registro, como no layout persistido.
	service, err := uc.findService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.findBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// 3. Conflito + append na mesma seção crítica: a checagem não
	// pode descolar da escrita com handlers concorrentes.
	var created *models.Appointment

	err = uc.store.UpdateAppointments(ctx, func(apps []models.Appointment) ([]models.Appointment, error) {
		if domain.HasConflict(apps, in.Date, in.Time, in.BarberID) {
			return nil, &domain.ConflictError{
				Date:     in.Date,
				Time:     in.Time,
				BarberID: in.BarberID,
			}
		}

		ap := models.Appointment{
			ID:              uuid.NewString(),
			ClientName:      in.ClientName,
			ClientEmail:     in.ClientEmail,
			ClientPhone:     in.ClientPhone,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			BarberID:        barber.ID,
			BarberName:      barber.Name,
			Date:            in.Date,
			Time:            in.Time,
			Status:          string(domain.StatusConfirmed),
			VisibleToClient: true,
			CreatedAt:       uc.now(),
		}

		created = &ap
		return append(apps, ap), nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.ClientEmail,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: created.ID,
	})

	return created, nil
}

func (uc *CreateAppointment) findService(ctx context.Context, id int) (*models.Service, error) {
	services, err := uc.store.Services(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (uc *CreateAppointment) findBarber(ctx context.Context, id int64) (*models.Barber, error) {
	barbers, err := uc.store.Barbers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range barbers {
		if barbers[i].ID == id {
			return &barbers[i], nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}
