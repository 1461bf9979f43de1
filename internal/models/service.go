package models

// Catálogo fixo, somente leitura (seed)
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
}
