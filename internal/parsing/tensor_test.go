package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMask(t *testing.T) {
	t.Run("ClassScores", func(t *testing.T) {
		// 3 classes over a 2x1 map: pixel 0 -> class 2, pixel 1 -> class 1.
		tensor := Tensor{
			Shape:    []int64{1, 3, 1, 2},
			Type:     Float32,
			Float32s: []float32{0.1, 0.2, 0.3, 0.9, 0.8, 0.1},
		}

		m, layout, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, "class scores", layout)
		assert.Equal(t, []Region{LeftBrow, Skin}, m.Labels)
	})
	t.Run("ClassScoresTruncated", func(t *testing.T) {
		data := make([]float32, 21)
		data[20] = 5 // channel 20 is ignored
		data[18] = 1
		tensor := Tensor{Shape: []int64{1, 21, 1, 1}, Type: Float32, Float32s: data}

		m, _, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, Hat, m.At(0, 0))
	})
	t.Run("FloatLabels3D", func(t *testing.T) {
		tensor := Tensor{Shape: []int64{1, 2, 2}, Type: Float32, Float32s: []float32{0.4, 9.6, 25, -3}}

		m, layout, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, "float labels", layout)
		assert.Equal(t, 2, m.Width)
		assert.Equal(t, []Region{Background, Nose, Hat, Background}, m.Labels)
	})
	t.Run("FloatLabels4D", func(t *testing.T) {
		tensor := Tensor{Shape: []int64{1, 1, 1, 2}, Type: Float32, Float32s: []float32{12, 13}}

		m, layout, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, "float labels", layout)
		assert.Equal(t, []Region{UpperLip, LowerLip}, m.Labels)
	})
	t.Run("Int32", func(t *testing.T) {
		tensor := Tensor{Shape: []int64{1, 1, 2, 1}, Type: Int32, Int32s: []int32{17, 40}}

		m, layout, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, "int32 labels", layout)
		assert.Equal(t, []Region{Hair, Hat}, m.Labels)
	})
	t.Run("Int64", func(t *testing.T) {
		tensor := Tensor{Shape: []int64{1, 1, 2}, Type: Int64, Int64s: []int64{1, -2}}

		m, layout, ok := DecodeMask(tensor)

		require.True(t, ok)
		assert.Equal(t, "int64 labels", layout)
		assert.Equal(t, []Region{Skin, Background}, m.Labels)
	})
	t.Run("Unrecognized", func(t *testing.T) {
		cases := []Tensor{
			{Shape: []int64{2, 3}, Type: Float32, Float32s: make([]float32, 6)},
			{Shape: []int64{2, 1, 2, 2}, Type: Int64, Int64s: make([]int64, 8)},
			{Shape: []int64{1, 4, 4}, Type: Float32, Float32s: make([]float32, 3)},
			{},
		}
		for _, tensor := range cases {
			_, _, ok := DecodeMask(tensor)
			assert.False(t, ok, "shape %v", tensor.Shape)
		}
	})
}

func TestClampLabel(t *testing.T) {
	assert.Equal(t, Background, ClampLabel(-1))
	assert.Equal(t, Nose, ClampLabel(10))
	assert.Equal(t, Hat, ClampLabel(19))
	assert.Equal(t, "u_lip", UpperLip.String())
	assert.Equal(t, "unknown", Region(40).String())
}
