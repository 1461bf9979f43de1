package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que a coleção nunca foi gravada.
var ErrKeyNotFound = errors.New("store: key not found")

// KV é o contrato mínimo do armazenamento local: cada coleção
// inteira vive serializada sob uma única chave. Não existe
// escrita parcial nem merge — toda mutação regrava a coleção.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
