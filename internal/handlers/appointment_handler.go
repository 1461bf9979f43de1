package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/barbeariajosimar/booking-api/internal/domain/booking"
	"github.com/barbeariajosimar/booking-api/internal/httperr"
	"github.com/barbeariajosimar/booking-api/internal/httpresp"
	"github.com/barbeariajosimar/booking-api/internal/middleware"
	ucBooking "github.com/barbeariajosimar/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucBooking.CreateAppointment
	cancel *ucBooking.CancelAppointment
	hide   *ucBooking.HideAppointment
	list   *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	create *ucBooking.CreateAppointment,
	cancel *ucBooking.CancelAppointment,
	hide *ucBooking.HideAppointment,
	list *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		cancel: cancel,
		hide:   hide,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   int    `json:"service_id" binding:"required"`
	BarberID    int64  `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: email,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (do cliente logado)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var (
		apps any
		err  error
	)
	if c.Query("active") == "true" {
		apps, err = h.list.ActiveForClient(c.Request.Context(), email)
	} else {
		apps, err = h.list.ForClient(c.Request.Context(), email)
	}
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, apps)
}

// ======================================================
// CANCEL / HIDE
// ======================================================

// O núcleo é tolerante a ID desconhecido; a camada HTTP só é
// estrita quanto a posse: cliente não toca agendamento alheio.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := h.ownedAppointmentID(c)
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) Hide(c *gin.Context) {
	id, ok := h.ownedAppointmentID(c)
	if !ok {
		return
	}

	if err := h.hide.Execute(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_hide", "Erro ao ocultar agendamento.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ownedAppointmentID(c *gin.Context) (string, bool) {
	email := c.MustGet(middleware.ContextUserEmail).(string)
	id := c.Param("id")

	apps, err := h.list.ForClient(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_load_appointments", "Erro ao carregar agendamentos.")
		return "", false
	}

	for _, ap := range apps {
		if ap.ID == id {
			return id, true
		}
	}

	httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	return "", false
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		httperr.BadRequest(c, "invalid_slot", vErr.Reason)
		return
	}

	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		httperr.Conflict(c, "slot_taken", "Este barbeiro já está ocupado neste horário!")
		return
	}

	if httperr.IsBusiness(err, "service_not_found") {
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	if httperr.IsBusiness(err, "barber_not_found") {
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
}
