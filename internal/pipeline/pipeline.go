package pipeline

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/dudu/facescore/internal/config"
	"github.com/dudu/facescore/internal/inference"
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
	"github.com/dudu/facescore/internal/proportions"
	"github.com/dudu/facescore/internal/scoring"
)

// Config holds pipeline configuration
type Config struct {
	ReliableThreshold float64
	ProblemThreshold  float64
	Workers           int
}

// NewConfig extracts pipeline settings from the application config.
func NewConfig(c config.Config) Config {
	return Config{
		ReliableThreshold: c.ReliableThreshold,
		ProblemThreshold:  c.ProblemThreshold,
		Workers:           c.Workers,
	}
}

// Timing holds performance timing information
type Timing struct {
	Normalize time.Duration
	Parse     time.Duration
	Analyze   time.Duration
	Score     time.Duration
	Total     time.Duration
}

// Face is an analyzed face.
type Face struct {
	Name        string
	Landmarks   []float64 // canonical when the input layout was recognized
	Parsing     *parsing.Result
	Proportions *proportions.Result
	Timing      Timing
}

// Comparison is the outcome of scoring one candidate against a target.
type Comparison struct {
	Name     string
	Face     *Face
	Result   *scoring.Result
	Hints    *scoring.Hints
	Problems []proportions.Feature
	Timing   Timing
}

// Pipeline orchestrates parsing, analysis and scoring.
type Pipeline struct {
	config      Config
	parser      FaceParser
	analyzer    *proportions.Analyzer
	scorer      *scoring.Scorer
	ownsRuntime bool

	mu         sync.Mutex
	lastTiming Timing
}

// New creates a pipeline around a face parser. parser may be nil, in which
// case faces are analyzed from landmarks only.
func New(config Config, parser FaceParser, opts ...scoring.Option) *Pipeline {
	if config.Workers <= 0 {
		config.Workers = 1
	}

	return &Pipeline{
		config:   config,
		parser:   parser,
		analyzer: proportions.NewAnalyzer(config.ReliableThreshold),
		scorer:   scoring.NewScorer(opts...),
	}
}

// Open initializes ONNX Runtime, loads the face parsing model and returns a
// pipeline that releases both on Close. A missing model is reported as
// parsing.ErrModelNotFound before the runtime is touched.
func Open(c config.Config, opts ...scoring.Option) (*Pipeline, error) {
	if err := parsing.CheckModel(c.ModelPath); err != nil {
		return nil, err
	}

	if err := inference.Initialize(c.LibraryPath); err != nil {
		return nil, fmt.Errorf("failed to initialize inference: %w", err)
	}

	model, err := parsing.NewONNXSegmenter(c.ModelPath, c.ModelInput, c.ModelOutput, c.Threads)
	if err != nil {
		_ = inference.Shutdown()
		return nil, fmt.Errorf("failed to create face parser: %w", err)
	}

	p := New(NewConfig(c), parsing.New(model, c.InputSize), opts...)
	p.ownsRuntime = true

	log.Infof("pipeline: face parser loaded from %s", c.ModelPath)

	return p, nil
}

// AnalyzeFace normalizes landmarks, parses img if given and measures the face.
func (p *Pipeline) AnalyzeFace(name string, img image.Image, raw []float64) *Face {
	totalStart := time.Now()
	face := &Face{Name: name}

	start := time.Now()
	face.Landmarks = landmarks.Normalize(raw)
	face.Timing.Normalize = time.Since(start)

	if p.parser != nil && img != nil {
		start = time.Now()
		face.Parsing = p.parser.Detect(img)
		face.Timing.Parse = time.Since(start)
		log.Debugf("pipeline: %s parsing %s", name, face.Parsing.Summary())
	}

	start = time.Now()
	face.Proportions = p.analyzer.Analyze(face.Landmarks, face.Parsing)
	face.Timing.Analyze = time.Since(start)

	if !face.Proportions.IsValid() && raw != nil {
		log.Warnf("pipeline: %s has no measurements (%s)", name, face.Proportions.Reason)
	}

	face.Timing.Total = time.Since(totalStart)

	return face
}

// Compare scores candidate against target.
func (p *Pipeline) Compare(target, candidate *Face) *Comparison {
	start := time.Now()

	c := &Comparison{
		Name:   candidate.Name,
		Face:   candidate,
		Result: p.scorer.Compare(target.Proportions, candidate.Proportions, target.Landmarks, candidate.Landmarks),
		Hints:  p.scorer.Hints(target.Proportions, candidate.Proportions),
	}
	c.Problems = c.Result.ProblemFeatures(p.config.ProblemThreshold)

	c.Timing = candidate.Timing
	c.Timing.Score = time.Since(start)
	c.Timing.Total += c.Timing.Score

	p.mu.Lock()
	p.lastTiming = c.Timing
	p.mu.Unlock()

	return c
}

// LastTiming returns timing from the last Compare call
func (p *Pipeline) LastTiming() Timing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastTiming
}

// Close releases pipeline resources
func (p *Pipeline) Close() error {
	var errs []error

	if p.parser != nil {
		if err := p.parser.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if p.ownsRuntime {
		if err := inference.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}
	return nil
}
