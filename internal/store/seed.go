package store

import "github.com/barbeariajosimar/booking-api/internal/models"

// SeedServices devolve o catálogo inicial. Sempre uma cópia nova:
// quem chama pode mutar a fatia sem afetar o seed.
func SeedServices() []models.Service {
	return []models.Service{
		{ID: 1, Name: "Corte Clássico", Price: 50, DurationMin: 30, Description: "Corte tradicional."},
		{ID: 2, Name: "Barba Modelada", Price: 35, DurationMin: 20, Description: "Toalha quente e navalha."},
		{ID: 3, Name: "Corte + Barba", Price: 75, DurationMin: 50, Description: "Combo completo."},
	}
}

func SeedBarbers() []models.Barber {
	return []models.Barber{
		{ID: 1, Name: "Josimar (Dono)"},
		{ID: 2, Name: "Carlos (Equipe)"},
	}
}
