package models

// Password é comparada em texto puro, sem hash. Endurecer a
// autenticação está explicitamente fora do escopo atual; os
// handlers nunca devolvem o registro completo.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}
