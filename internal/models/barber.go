package models

// IDs do seed são fixos; barbeiros adicionados pelo dono
// recebem um ID derivado do timestamp.
type Barber struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
