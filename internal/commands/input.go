package commands

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
	"gopkg.in/yaml.v2"

	"github.com/dudu/facescore/internal/pipeline"
)

// readLandmarks reads a JSON landmark file. Both a flat [x0, y0, x1, ...]
// array and a list of [x, y] or [x, y, z] points are accepted.
func readLandmarks(fileName string) ([]float64, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read landmarks: %w", err)
	}

	var flat []float64
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var points [][]float64
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse landmarks %s: %w", fileName, err)
	}

	if len(points) == 0 {
		return nil, nil
	}

	stride := len(points[0])
	if stride < 2 || stride > 3 {
		return nil, fmt.Errorf("landmarks %s: points must have 2 or 3 coordinates, got %d", fileName, stride)
	}

	flat = make([]float64, 0, len(points)*stride)
	for i, p := range points {
		if len(p) != stride {
			return nil, fmt.Errorf("landmarks %s: point %d has %d coordinates, want %d", fileName, i, len(p), stride)
		}
		flat = append(flat, p...)
	}

	return flat, nil
}

// loadImage reads an image file with OpenCV and converts it for parsing.
// The returned Mat must be closed by the caller.
func loadImage(fileName string) (*gocv.Mat, image.Image, error) {
	mat := gocv.IMRead(fileName, gocv.IMReadColor)
	if mat.Empty() {
		_ = mat.Close()
		return nil, nil, fmt.Errorf("failed to load image: %s", fileName)
	}

	img, err := mat.ToImage()
	if err != nil {
		_ = mat.Close()
		return nil, nil, fmt.Errorf("failed to convert image %s: %w", fileName, err)
	}

	return &mat, img, nil
}

// analyzeInput loads optional image and landmark files and analyzes the face.
// The returned Mat is nil if no image was given.
func analyzeInput(p *pipeline.Pipeline, name, imageFile, landmarkFile string) (*pipeline.Face, *gocv.Mat, error) {
	if landmarkFile == "" {
		return nil, nil, fmt.Errorf("%s: landmarks file required", name)
	}

	lm, err := readLandmarks(landmarkFile)
	if err != nil {
		return nil, nil, err
	}

	var mat *gocv.Mat
	var img image.Image

	if imageFile != "" {
		if mat, img, err = loadImage(imageFile); err != nil {
			return nil, nil, err
		}
	}

	return p.AnalyzeFace(name, img, lm), mat, nil
}

// Manifest lists a target and candidates for ranking.
type Manifest struct {
	Target     ManifestEntry   `yaml:"target"`
	Candidates []ManifestEntry `yaml:"candidates"`
}

// ManifestEntry references the files of one face.
type ManifestEntry struct {
	Name      string `yaml:"name"`
	Image     string `yaml:"image"`
	Landmarks string `yaml:"landmarks"`
}

// readManifest parses a YAML manifest. Relative paths are resolved against
// the manifest directory.
func readManifest(fileName string) (*Manifest, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", fileName, err)
	}

	dir := filepath.Dir(fileName)
	resolve := func(e *ManifestEntry, fallback string) {
		if e.Name == "" {
			e.Name = fallback
		}
		if e.Image != "" && !filepath.IsAbs(e.Image) {
			e.Image = filepath.Join(dir, e.Image)
		}
		if e.Landmarks != "" && !filepath.IsAbs(e.Landmarks) {
			e.Landmarks = filepath.Join(dir, e.Landmarks)
		}
	}

	resolve(&m.Target, "target")
	for i := range m.Candidates {
		resolve(&m.Candidates[i], fmt.Sprintf("candidate-%d", i+1))
	}

	return m, nil
}

// loadCandidate reads the files of a manifest entry without analyzing them.
func loadCandidate(e ManifestEntry) (pipeline.Candidate, error) {
	c := pipeline.Candidate{Name: e.Name}

	lm, err := readLandmarks(e.Landmarks)
	if err != nil {
		return c, err
	}
	c.Landmarks = lm

	if e.Image != "" {
		mat, img, err := loadImage(e.Image)
		if err != nil {
			return c, err
		}
		_ = mat.Close()
		c.Image = img
	}

	return c, nil
}
