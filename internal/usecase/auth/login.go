package auth

import (
	"context"
	"strings"

	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

type LoginUser struct {
	store *store.Store
}

func NewLoginUser(st *store.Store) *LoginUser {
	return &LoginUser{store: st}
}

func (uc *LoginUser) Execute(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := uc.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}

	return nil, ErrInvalidCredentials
}
