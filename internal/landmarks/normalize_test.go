package landmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshInput(stride int) []float64 {
	raw := make([]float64, meshPoints*stride)
	for v := 0; v < meshPoints; v++ {
		raw[v*stride] = float64(v)
		raw[v*stride+1] = float64(v) + 0.5
		if stride == 3 {
			raw[v*stride+2] = -1
		}
	}
	return raw
}

func TestNormalize(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		raw := make([]float64, FlatSize)
		for i := range raw {
			raw[i] = float64(i)
		}

		out := Normalize(raw)

		require.Len(t, out, FlatSize)
		assert.Equal(t, raw, out)

		out[0] = 99
		assert.Equal(t, 0.0, raw[0], "output must not alias input")
	})
	t.Run("Mesh2D", func(t *testing.T) {
		out := Normalize(meshInput(2))

		require.Len(t, out, FlatSize)
		for i, v := range meshToCanonical {
			assert.Equal(t, float64(v), out[i*2])
			assert.Equal(t, float64(v)+0.5, out[i*2+1])
		}
	})
	t.Run("Mesh3D", func(t *testing.T) {
		out := Normalize(meshInput(3))

		require.Len(t, out, FlatSize)
		assert.Equal(t, 162.0, out[0])
		assert.Equal(t, 162.5, out[1])
		assert.Equal(t, 87.0, out[FlatSize-2])
		assert.NotContains(t, out, -1.0)
	})
	t.Run("Unrecognized", func(t *testing.T) {
		raw := make([]float64, 50)
		raw[3] = 7

		out := Normalize(raw)

		assert.Len(t, out, 50)
		assert.Equal(t, raw, out)
	})
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, Normalize(nil))
	})
}

func TestMeshTableInRange(t *testing.T) {
	seen := make(map[int]bool)
	for _, v := range meshToCanonical {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, meshPoints)
		assert.False(t, seen[v], "vertex %d mapped twice", v)
		seen[v] = true
	}
}

func TestFromFlat(t *testing.T) {
	_, ok := FromFlat(make([]float64, FlatSize-1))
	assert.False(t, ok)

	flat := make([]float64, FlatSize)
	flat[Chin*2] = 10
	flat[Chin*2+1] = 20
	c, ok := FromFlat(flat)
	require.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 20}, c[Chin])
	assert.Equal(t, flat, c.Flat())

	box := c.BoundingBox()
	assert.Equal(t, 10.0, box.Width())
	assert.Equal(t, 20.0, box.Height())
	assert.Equal(t, Point{X: 5, Y: 10}, box.Center())
}
