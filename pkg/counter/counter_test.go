package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	assert.Equal(t, uint8(255), Max[uint8]())
	assert.Equal(t, uint16(65535), Max[uint16]())
	assert.Equal(t, ^uint64(0), Max[uint64]())
}

// counter must stop at 255 and keep reporting saturation
func TestSaturatingUint8(t *testing.T) {
	var c Saturating[uint8]
	require.False(t, c.Saturated())

	for i := 0; i < 255; i++ {
		require.True(t, c.Inc(), "increment %d", i)
	}
	assert.Equal(t, uint8(255), c.Value())
	assert.True(t, c.Saturated())

	for i := 0; i < 3; i++ {
		assert.False(t, c.Inc())
		assert.Equal(t, uint8(255), c.Value())
	}
}

func TestZeroValue(t *testing.T) {
	var c Saturating[uint32]
	assert.Equal(t, uint32(0), c.Value())
	assert.True(t, c.Inc())
	assert.Equal(t, uint32(1), c.Value())
}
