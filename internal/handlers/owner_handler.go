package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbeariajosimar/booking-api/internal/httperr"
	"github.com/barbeariajosimar/booking-api/internal/httpresp"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
	ucBooking "github.com/barbeariajosimar/booking-api/internal/usecase/booking"
	ucStaff "github.com/barbeariajosimar/booking-api/internal/usecase/staff"
)

// Painel do dono: equipe, visão completa dos agendamentos e trilha
// de auditoria. Todas as rotas passam pelo RequireOwner.
type OwnerHandler struct {
	store        *store.Store
	addBarber    *ucStaff.AddBarber
	removeBarber *ucStaff.RemoveBarber
	cancel       *ucBooking.CancelAppointment
	hide         *ucBooking.HideAppointment
	list         *ucBooking.ListAppointments
}

func NewOwnerHandler(
	st *store.Store,
	addBarber *ucStaff.AddBarber,
	removeBarber *ucStaff.RemoveBarber,
	cancel *ucBooking.CancelAppointment,
	hide *ucBooking.HideAppointment,
	list *ucBooking.ListAppointments,
) *OwnerHandler {
	return &OwnerHandler{
		store:        st,
		addBarber:    addBarber,
		removeBarber: removeBarber,
		cancel:       cancel,
		hide:         hide,
		list:         list,
	}
}

// --------- Requests ---------

type AddBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Appointments ---------

// ListAppointments é a visão de tudo: cancelados e ocultos inclusos,
// é a trilha histórica que a exclusão física nunca apaga.
func (h *OwnerHandler) ListAppointments(c *gin.Context) {
	apps, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, apps)
}

func (h *OwnerHandler) CancelAppointment(c *gin.Context) {
	if err := h.cancel.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OwnerHandler) HideAppointment(c *gin.Context) {
	if err := h.hide.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "failed_to_hide", "Erro ao ocultar agendamento.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Staff ---------

func (h *OwnerHandler) AddBarber(c *gin.Context) {
	var req AddBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome obrigatório.")
		return
	}

	barber, err := h.addBarber.Execute(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Internal(c, "failed_to_add_barber", "Erro ao adicionar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *OwnerHandler) RemoveBarber(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	if err := h.removeBarber.Execute(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_remove_barber", "Erro ao remover barbeiro.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Audit trail ---------

func (h *OwnerHandler) ListAuditLogs(c *gin.Context) {
	logs, err := h.store.AuditLogs(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	httpresp.List(c, logs)
}
