package commands

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudu/facescore/internal/config"
	"github.com/dudu/facescore/internal/pipeline"
	"github.com/dudu/facescore/internal/proportions"
	"github.com/dudu/facescore/internal/scoring"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))
	return fileName
}

func TestReadLandmarks(t *testing.T) {
	dir := t.TempDir()

	t.Run("Flat", func(t *testing.T) {
		lm, err := readLandmarks(writeFile(t, dir, "flat.json", "[1, 2, 3.5, 4]"))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3.5, 4}, lm)
	})
	t.Run("Points2D", func(t *testing.T) {
		lm, err := readLandmarks(writeFile(t, dir, "points.json", "[[1, 2], [3, 4]]"))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, lm)
	})
	t.Run("Points3D", func(t *testing.T) {
		lm, err := readLandmarks(writeFile(t, dir, "mesh.json", "[[1, 2, 0.1], [3, 4, 0.2]]"))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 0.1, 3, 4, 0.2}, lm)
	})
	t.Run("Ragged", func(t *testing.T) {
		_, err := readLandmarks(writeFile(t, dir, "ragged.json", "[[1, 2], [3]]"))
		assert.Error(t, err)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := readLandmarks(writeFile(t, dir, "bad.json", `{"x": 1}`))
		assert.Error(t, err)
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := readLandmarks(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "rank.yml", `
target:
  image: target.jpg
  landmarks: /abs/target.json
candidates:
  - name: first
    landmarks: a.json
  - landmarks: b.json
`)

	m, err := readManifest(fileName)

	require.NoError(t, err)
	assert.Equal(t, "target", m.Target.Name)
	assert.Equal(t, filepath.Join(dir, "target.jpg"), m.Target.Image)
	assert.Equal(t, "/abs/target.json", m.Target.Landmarks)
	require.Len(t, m.Candidates, 2)
	assert.Equal(t, "first", m.Candidates[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.json"), m.Candidates[0].Landmarks)
	assert.Equal(t, "candidate-2", m.Candidates[1].Name)
	assert.Empty(t, m.Candidates[1].Image)
}

func TestPrintComparison(t *testing.T) {
	result := scoring.NewScorer().Compare(proportions.Empty("none"), nil, nil, nil)
	c := &pipeline.Comparison{
		Name:   "candidate",
		Result: result,
		Hints:  &scoring.Hints{},
	}

	var buf bytes.Buffer
	printComparison(&buf, c, true, 0.6)

	out := buf.String()
	assert.Contains(t, out, "candidate: overall 0.450")
	assert.Contains(t, out, "nose     0.500 (missing)")
	assert.Contains(t, out, "hints: nothing below threshold")
}

func TestOpenPipelineFallback(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	cases := []struct {
		name    string
		model   string
		noModel bool
	}{
		{"Disabled", filepath.Join(dir, "face_parsing.onnx"), true},
		{"MissingModel", filepath.Join(dir, "face_parsing.onnx"), false},
		{"MissingRuntime", writeFile(t, dir, "present.onnx", "onnx"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := config.Default()
			conf.ModelPath = tc.model
			conf.LibraryPath = filepath.Join(dir, "libonnxruntime.so")

			p, err := openPipeline(conf, tc.noModel)

			require.NoError(t, err)
			require.NotNil(t, p)

			face := p.AnalyzeFace("face", img, make([]float64, 136))
			assert.Nil(t, face.Parsing)
			assert.Equal(t, proportions.SourceLandmarks, face.Proportions.Source)
			assert.Len(t, face.Landmarks, 136)
			assert.NoError(t, p.Close())
		})
	}
}
