package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends_LoadSave(t *testing.T) {
	fileBackend, err := NewFileBackend(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	backends := map[string]Backend{
		DriverMemory: NewMemoryBackend(),
		DriverFile:   fileBackend,
	}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			data, err := backend.Load(ctx, "booking-services")
			require.NoError(t, err)
			assert.Nil(t, data)

			require.NoError(t, backend.Save(ctx, "booking-services", []byte(`[{"id":"1"}]`)))
			require.NoError(t, backend.Save(ctx, "booking-services", []byte(`[{"id":"2"}]`)))

			data, err = backend.Load(ctx, "booking-services")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"2"}]`, string(data))

			_, err = backend.Load(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyKey)
			assert.ErrorIs(t, backend.Save(ctx, "", nil), ErrEmptyKey)

			require.NoError(t, backend.Close())
		})
	}
}

func TestFileBackend_WritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, backend.Save(context.Background(), "exams", []byte("[]\n")))

	content, err := os.ReadFile(filepath.Join(dir, "exams.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_RejectsPathKeys(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", ".."} {
		assert.Error(t, backend.Save(context.Background(), key, []byte("[]")), key)
	}
}

func TestMemoryBackend_ReturnsCopies(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	src := []byte(`[1]`)
	require.NoError(t, backend.Save(ctx, "k", src))
	src[1] = '9'

	data, err := backend.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(data))
}
