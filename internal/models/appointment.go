package models

import "time"

// Registro imutável por ID: cancelamento e ocultação são flags,
// nunca há exclusão física (trilha para a visão do dono).
type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	ServiceID   int    `json:"service_id"`
	ServiceName string `json:"service_name"`

	BarberID   int64  `json:"barber_id"`
	BarberName string `json:"barber_name"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	Status          string `json:"status"`
	VisibleToClient bool   `json:"visible_to_client"`

	CreatedAt time.Time `json:"created_at"`
}
