package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEntropy(t *testing.T) {
	t.Parallel()

	assert.Len(t, LabelCharset, 63)

	tests := []struct {
		gridSize int
		ok       bool
	}{
		{GridSize, true},
		{8, true},
		{7, false},
		{4, false},
		{0, false},
		{-1, false},
	}
	for _, tt := range tests {
		err := CheckEntropy(tt.gridSize)
		if tt.ok {
			assert.NoError(t, err, "grid size %d", tt.gridSize)
		} else {
			assert.ErrorIs(t, err, ErrNotEnoughEntropy, "grid size %d", tt.gridSize)
		}
	}
}
