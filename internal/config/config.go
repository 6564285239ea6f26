package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/dudu/facescore/internal/inference"
	"github.com/dudu/facescore/internal/parsing"
	"github.com/dudu/facescore/internal/proportions"
)

// EnvPrefix prefixes all environment overrides.
const EnvPrefix = "FACESCORE_"

// Config holds facescore settings.
type Config struct {
	ModelPath         string  `yaml:"model_path"`
	ModelInput        string  `yaml:"model_input"`
	ModelOutput       string  `yaml:"model_output"`
	LibraryPath       string  `yaml:"library_path"`
	InputSize         int     `yaml:"input_size"`
	Threads           int     `yaml:"threads"`
	ReliableThreshold float64 `yaml:"reliable_threshold"`
	ProblemThreshold  float64 `yaml:"problem_threshold"`
	Workers           int     `yaml:"workers"`
	LogLevel          string  `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ModelPath:         "models/face_parsing.onnx",
		ModelInput:        "input",
		ModelOutput:       "output",
		LibraryPath:       inference.DefaultLibraryPath(),
		InputSize:         parsing.DefaultInputSize,
		Threads:           4,
		ReliableThreshold: proportions.DefaultReliableThreshold,
		ProblemThreshold:  0.6,
		Workers:           runtime.NumCPU(),
		LogLevel:          "info",
	}
}

// Load reads an optional YAML file, then .env files and FACESCORE_*
// environment variables. Later sources win.
func Load(fileName string, envFiles ...string) (Config, error) {
	c := Default()

	if fileName != "" {
		if err := c.LoadFile(fileName); err != nil {
			return c, err
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := c.ApplyEnv(); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// LoadFile merges settings from a YAML file.
func (c *Config) LoadFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", fileName, err)
	}

	return nil
}

// ApplyEnv overrides settings from FACESCORE_* variables.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"MODEL_PATH":   &c.ModelPath,
		"MODEL_INPUT":  &c.ModelInput,
		"MODEL_OUTPUT": &c.ModelOutput,
		"LIBRARY_PATH": &c.LibraryPath,
		"LOG_LEVEL":    &c.LogLevel,
	}
	ints := map[string]*int{
		"INPUT_SIZE": &c.InputSize,
		"THREADS":    &c.Threads,
		"WORKERS":    &c.Workers,
	}
	floats := map[string]*float64{
		"RELIABLE_THRESHOLD": &c.ReliableThreshold,
		"PROBLEM_THRESHOLD":  &c.ProblemThreshold,
	}

	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	for name, dst := range ints {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	for name, dst := range floats {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
			}
			*dst = f
		}
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.InputSize <= 0:
		return fmt.Errorf("input size must be positive, got %d", c.InputSize)
	case c.Threads < 0:
		return fmt.Errorf("threads must not be negative, got %d", c.Threads)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.ReliableThreshold < 0 || c.ReliableThreshold > 1:
		return fmt.Errorf("reliable threshold must be in [0, 1], got %.2f", c.ReliableThreshold)
	case c.ProblemThreshold < 0 || c.ProblemThreshold > 1:
		return fmt.Errorf("problem threshold must be in [0, 1], got %.2f", c.ProblemThreshold)
	}
	return nil
}
