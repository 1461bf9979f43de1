package auth

import "errors"

var (
	// ErrDuplicateEmail: o e-mail é a chave natural de User.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials: nenhum usuário casa com e-mail e senha
	// exatos. Mensagem única de propósito, não vaza qual dos dois errou.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
