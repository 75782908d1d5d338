package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	// chave ausente: nil, sem erro
	data, err := b.Load(ctx, "products")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, b.Save(ctx, "products", []byte(`[{"id":"1"}]`)))

	data, err = b.Load(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	original := []byte(`abc`)
	require.NoError(t, b.Save(ctx, "k", original))

	// mutar o slice de entrada não afeta o que foi guardado
	original[0] = 'x'
	data, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), data)

	// mutar o slice devolvido não afeta a próxima leitura
	data[0] = 'y'
	again, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
