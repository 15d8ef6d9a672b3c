package infra_test

import (
	"testing"

	"jumbox/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagenStoreGuardarYLeer(t *testing.T) {
	store := infra.NewImagenStore(t.TempDir())
	id := uuid.New()

	key, err := store.Guardar(id, "png", []byte("fake-png"))
	require.NoError(t, err)
	assert.Equal(t, id.String()+".png", key)

	data, err := store.Leer(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), data)

	// Re-uploading replaces the content under the same key.
	_, err = store.Guardar(id, "png", []byte("otro"))
	require.NoError(t, err)
	data, err = store.Leer(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("otro"), data)
}

func TestImagenStoreLeerInexistente(t *testing.T) {
	store := infra.NewImagenStore(t.TempDir())
	_, err := store.Leer("no-existe.png")
	assert.Error(t, err)
}
