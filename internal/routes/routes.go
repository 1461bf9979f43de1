package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	"github.com/barbeariajosimar/booking-api/internal/config"
	"github.com/barbeariajosimar/booking-api/internal/handlers"
	"github.com/barbeariajosimar/booking-api/internal/middleware"
	"github.com/barbeariajosimar/booking-api/internal/store"
	ucAuth "github.com/barbeariajosimar/booking-api/internal/usecase/auth"
	ucBooking "github.com/barbeariajosimar/booking-api/internal/usecase/booking"
	ucStaff "github.com/barbeariajosimar/booking-api/internal/usecase/staff"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	createUC := ucBooking.NewCreateAppointment(st, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(st, auditDispatcher)
	hideUC := ucBooking.NewHideAppointment(st, auditDispatcher)
	listUC := ucBooking.NewListAppointments(st)

	registerUC := ucAuth.NewRegisterUser(st, auditDispatcher)
	loginUC := ucAuth.NewLoginUser(st)

	addBarberUC := ucStaff.NewAddBarber(st, auditDispatcher)
	removeBarberUC := ucStaff.NewRemoveBarber(st, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, cfg)
	catalogHandler := handlers.NewCatalogHandler(st, listUC)
	appointmentHandler := handlers.NewAppointmentHandler(createUC, cancelUC, hideUC, listUC)
	ownerHandler := handlers.NewOwnerHandler(st, addBarberUC, removeBarberUC, cancelUC, hideUC, listUC)

	api := r.Group("/api")
	{
		// ------------------------------
		// Público
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/services", catalogHandler.ListServices)
			public.GET("/barbers", catalogHandler.ListBarbers)
			public.GET("/availability", catalogHandler.Availability)
		}

		// ------------------------------
		// Auth
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/owner", authHandler.OwnerLogin)

		// ------------------------------
		// Cliente logado
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.POST("/appointments", appointmentHandler.Create)
			me.GET("/appointments", appointmentHandler.ListMine)
			me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			me.PATCH("/appointments/:id/hide", appointmentHandler.Hide)
		}

		// ------------------------------
		// Dono
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthMiddleware(cfg), middleware.RequireOwner())
		{
			owner.GET("/appointments", ownerHandler.ListAppointments)
			owner.PATCH("/appointments/:id/cancel", ownerHandler.CancelAppointment)
			owner.PATCH("/appointments/:id/hide", ownerHandler.HideAppointment)

			owner.POST("/barbers", ownerHandler.AddBarber)
			owner.DELETE("/barbers/:id", ownerHandler.RemoveBarber)

			owner.GET("/audit-logs", ownerHandler.ListAuditLogs)
		}
	}
}
