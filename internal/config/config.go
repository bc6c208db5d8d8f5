// SPDX-License-Identifier: MIT
// Package config loads and validates vec3conv job files.
//
// A job names the numeric precision, the worker count, the log level, the
// output format and the list of points to convert. Files are YAML or JSON;
// both use the same snake_case keys:
//
//	precision: float64
//	workers: 4
//	log_level: info
//	output: yaml
//	fail_fast: false
//	points:
//	  - cylindrical: {radius: 2, azimuth: 0, height: 5}
//	  - spherical: {radius: 1, azimuthal_angle: 0, polar_angle: 1.5707963}
//	  - cartesian: {x: 1, y: 2, z: 3}
//
// Points are always decoded at float64 and narrowed later when the job asks
// for float32.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/batch"
	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/numeric"
)

// Format is the encoding of a job file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Output formats for converted vectors.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
	OutputText = "text"
)

// Defaults applied to fields left empty.
const (
	DefaultPrecision = "float64"
	DefaultLogLevel  = "info"
	DefaultOutput    = OutputYAML
)

var (
	// ErrUnknownFormat is returned for a job file encoding other than yaml/json.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrBadPrecision is returned for a precision other than float32/float64.
	ErrBadPrecision = errors.New("config: unknown precision")

	// ErrBadOutput is returned for an output format other than yaml/json/text.
	ErrBadOutput = errors.New("config: unknown output format")

	// ErrNoPoints is returned for a job with an empty point list.
	ErrNoPoints = errors.New("config: job has no points")
)

// Job describes one conversion run.
type Job struct {
	Precision string                 `json:"precision" yaml:"precision"`
	Workers   int                    `json:"workers" yaml:"workers"`
	LogLevel  string                 `json:"log_level" yaml:"log_level"`
	Output    string                 `json:"output" yaml:"output"`
	FailFast  bool                   `json:"fail_fast" yaml:"fail_fast"`
	Points    []batch.Point[float64] `json:"points" yaml:"points"`
}

// Default returns a Job with every default applied and no points.
func Default() *Job {
	j := &Job{}
	j.applyDefaults()
	return j
}

// Option overrides a Job field after loading, e.g. from command-line flags.
// Empty string and zero values leave the field untouched.
type Option func(*Job)

// WithPrecision overrides the precision.
func WithPrecision(p string) Option {
	return func(j *Job) {
		if p != "" {
			j.Precision = p
		}
	}
}

// WithWorkers overrides the worker count.
func WithWorkers(n int) Option {
	return func(j *Job) {
		if n != 0 {
			j.Workers = n
		}
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) Option {
	return func(j *Job) {
		if level != "" {
			j.LogLevel = level
		}
	}
}

// WithOutput overrides the output format.
func WithOutput(out string) Option {
	return func(j *Job) {
		if out != "" {
			j.Output = out
		}
	}
}

// Apply runs opts against j, then re-applies defaults.
func (j *Job) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(j)
	}
	j.applyDefaults()
}

// Kind returns the numeric kind named by Precision.
func (j *Job) Kind() (numeric.Kind, error) {
	k, ok := numeric.ParseKind(j.Precision)
	if !ok {
		return 0, fmt.Errorf("%q: %w", j.Precision, ErrBadPrecision)
	}
	return k, nil
}

// Validate checks the job's settings. Point contents are checked later by
// batch.Convert so every bad record can be reported with its index.
func (j *Job) Validate() error {
	if _, err := j.Kind(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(j.LogLevel); err != nil {
		return err
	}
	switch j.Output {
	case OutputYAML, OutputJSON, OutputText:
	default:
		return fmt.Errorf("%q: %w", j.Output, ErrBadOutput)
	}
	if len(j.Points) == 0 {
		return ErrNoPoints
	}
	return nil
}

func (j *Job) applyDefaults() {
	if j.Precision == "" {
		j.Precision = DefaultPrecision
	}
	if j.LogLevel == "" {
		j.LogLevel = DefaultLogLevel
	}
	if j.Output == "" {
		j.Output = DefaultOutput
	}
	j.Output = strings.ToLower(j.Output)
}

// Load decodes a job from r and applies defaults. It does not validate.
func Load(r io.Reader, format Format) (*Job, error) {
	var j Job
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&j); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&j); err != nil {
			return nil, fmt.Errorf("config: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	j.applyDefaults()
	return &j, nil
}

// FormatFromPath picks the job format from the file extension; anything
// other than .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile opens path and decodes it with the format implied by its extension.
func LoadFile(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Load(f, FormatFromPath(path))
}
