package identicon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grahamannett/identicon-take-home/utils/random"
	"github.com/grahamannett/identicon-take-home/utils/storage"
)

func TestWriter_GenerateAll(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(DefaultGeneratorConfig(), random.NewSeeded(3))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		fs := storage.NewInMemoryFileStorage()
		w, err := NewWriter(WriterConfig{ImageSize: 32, Symmetric: true}, fs, zap.NewNop())
		require.NoError(t, err)

		labels := []string{"alice", "bob", "carol", "dave", "eve"}
		require.NoError(t, w.GenerateAll(context.Background(), gen, labels, nil, true))
		assert.Equal(t, len(labels), fs.Len())
		for _, l := range labels {
			assert.Equal(t, []byte("\x89PNG"), readAll(t, fs, PNGKey(l))[:4])
		}
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()
		fs := storage.NewInMemoryFileStorage()
		w, err := NewWriter(WriterConfig{ImageSize: 32}, fs, zap.NewNop())
		require.NoError(t, err)

		key := func(label string) string { return "icons/" + label + ".jpg" }
		require.NoError(t, w.GenerateAll(context.Background(), gen, []string{"alice"}, key, false))
		assert.Equal(t, []byte{0xff, 0xd8}, readAll(t, fs, "icons/alice.jpg")[:2])
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		w, err := NewWriter(WriterConfig{ImageSize: 32}, storage.NewLocalFileStorage(dir), zap.NewNop())
		require.NoError(t, err)

		key := func(label string) string {
			if label == "bob" {
				return filepath.Join("missing", label+".png")
			}
			return label + ".png"
		}
		err = w.GenerateAll(context.Background(), gen, []string{"alice", "bob", "carol"}, key, true)
		assert.ErrorIs(t, err, ErrWriteImage)
		assert.FileExists(t, filepath.Join(dir, "alice.png"))
		assert.NoFileExists(t, filepath.Join(dir, "carol.png"))
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()
		fs := storage.NewInMemoryFileStorage()
		w, err := NewWriter(WriterConfig{ImageSize: 32}, fs, zap.NewNop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err = w.GenerateAll(ctx, gen, []string{"alice"}, nil, true)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, fs.Len())
	})
}
