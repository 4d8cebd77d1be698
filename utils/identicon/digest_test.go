package identicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abcDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("known digest", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, abcDigest, Hash("abc"))
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		for _, label := range []string{"graham", "Name Grid", "full example", "日本語"} {
			h := Hash(label)
			assert.Len(t, h, DigestLength)
			assert.Equal(t, h, Hash(label))
			assert.Equal(t, strings.ToLower(h), h)
		}
	})

	t.Run("avalanche", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, Hash("graham"), Hash("graham "))
	})
}

func TestBinaryDigest(t *testing.T) {
	t.Parallel()

	t.Run("graham", func(t *testing.T) {
		t.Parallel()
		bits, err := BinaryDigest(Hash("graham"))
		require.NoError(t, err)
		assert.Len(t, bits, GridSize*GridSize)
		assert.Empty(t, strings.Trim(bits, "01"))
	})

	t.Run("msb first", func(t *testing.T) {
		t.Parallel()
		bits, err := BinaryDigest(abcDigest)
		require.NoError(t, err)
		assert.Equal(t, "1011101001111000", bits[:16])
		assert.Equal(t, "0001011010111111", bits[16:32])
	})

	t.Run("upper case", func(t *testing.T) {
		t.Parallel()
		lower, err := BinaryDigest(abcDigest)
		require.NoError(t, err)
		upper, err := BinaryDigest(strings.ToUpper(abcDigest))
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := BinaryDigest("abc")
		assert.ErrorIs(t, err, ErrInvalidDigest)
		_, err = BinaryDigest(strings.Repeat("g", DigestLength))
		assert.ErrorIs(t, err, ErrInvalidDigest)
	})
}

func TestGridFromBits(t *testing.T) {
	t.Parallel()

	bits := strings.Repeat("0", GridSize*GridSize)
	bits = bits[:17] + "1" + bits[18:]
	g := GridFromBits(bits)
	assert.EqualValues(t, 1, g[1][1])
	assert.Equal(t, 1, g.Count())

	assert.Equal(t, 0, GridFromBits("").Count())
	assert.Equal(t, GridSize*GridSize, GridFromBits(strings.Repeat("1", 300)).Count())
}

func TestExpandToGrid(t *testing.T) {
	t.Parallel()

	t.Run("abc", func(t *testing.T) {
		t.Parallel()
		g, err := ExpandToGrid(abcDigest)
		require.NoError(t, err)
		assert.Equal(t, [GridSize]uint8{1, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 0}, g[0])
		assert.Equal(t, [GridSize]uint8{0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1}, g[1])
	})

	t.Run("cells are bits", func(t *testing.T) {
		t.Parallel()
		g, err := ExpandToGrid(Hash("Name Grid"))
		require.NoError(t, err)
		rows, cols := g.Size()
		assert.Equal(t, GridSize, rows)
		assert.Equal(t, GridSize, cols)
		cells := g.Cells()
		assert.Len(t, cells, GridSize*GridSize)
		assert.Contains(t, cells, uint8(0))
		assert.Contains(t, cells, uint8(1))
		for _, c := range cells {
			assert.LessOrEqual(t, c, uint8(1))
		}
	})

	t.Run("extremes", func(t *testing.T) {
		t.Parallel()
		g, err := ExpandToGrid(strings.Repeat("f", DigestLength))
		require.NoError(t, err)
		assert.Equal(t, GridSize*GridSize, g.Count())

		g, err = ExpandToGrid(strings.Repeat("0", DigestLength))
		require.NoError(t, err)
		assert.Equal(t, 0, g.Count())
	})

	t.Run("near duplicates differ", func(t *testing.T) {
		t.Parallel()
		a, err := ExpandToGrid(Hash("graham"))
		require.NoError(t, err)
		b, err := ExpandToGrid(Hash("graham "))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := ExpandToGrid("zz")
		assert.ErrorIs(t, err, ErrInvalidDigest)
	})
}
