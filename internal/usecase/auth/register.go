package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/barbeariajosimar/booking-api/internal/audit"
	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type RegisterUser struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewRegisterUser(st *store.Store, dispatcher *audit.Dispatcher) *RegisterUser {
	return &RegisterUser{store: st, audit: dispatcher}
}

// Execute cria a conta. A senha é guardada como veio: a comparação
// em texto puro é comportamento especificado, não um descuido.
func (uc *RegisterUser) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var created *models.User

	err := uc.store.UpdateUsers(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, ErrDuplicateEmail
			}
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     in.Name,
			Email:    email,
			Password: in.Password,
			Phone:    in.Phone,
		}

		created = &user
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    email,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: created.ID,
	})

	return created, nil
}
