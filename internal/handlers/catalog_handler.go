package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbeariajosimar/booking-api/internal/httperr"
	"github.com/barbeariajosimar/booking-api/internal/httpresp"
	"github.com/barbeariajosimar/booking-api/internal/store"
	ucBooking "github.com/barbeariajosimar/booking-api/internal/usecase/booking"
)

// Leituras públicas: catálogo, equipe e horários livres.
type CatalogHandler struct {
	store *store.Store
	list  *ucBooking.ListAppointments
}

func NewCatalogHandler(st *store.Store, list *ucBooking.ListAppointments) *CatalogHandler {
	return &CatalogHandler{store: st, list: list}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.store.Services(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.store.Barbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *CatalogHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	barberIDStr := c.Query("barber_id")
	if date == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e barbeiro obrigatórios.")
		return
	}

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	slots, err := h.list.Availability(c.Request.Context(), date, barberID)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(200, gin.H{
		"date":  date,
		"slots": slots,
	})
}
