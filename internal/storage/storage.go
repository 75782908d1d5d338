package storage

import "context"

// Backend: armazenamento durável chave-valor. Cada coleção do estado é
// serializada em JSON sob uma chave fixa (ver store.Keys).
type Backend interface {
	// Load retorna nil (sem erro) quando a chave não existe.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
