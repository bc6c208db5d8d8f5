// SPDX-License-Identifier: MIT

// Command vec3conv converts a job file of cylindrical, spherical and
// Cartesian points into Cartesian vectors.
//
// Usage:
//
//	vec3conv -config job.yaml [-precision float32|float64] [-output yaml|json|text]
//	         [-workers N] [-log-level debug|info|warn|error]
//
// Flags override the corresponding job fields. Results go to stdout, logs
// to stderr. The exit status is 1 on any failure, including rejected points.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/batch"
	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector3"
)

// errUsage marks command-line errors; the flag package has already
// printed the details.
var errUsage = errors.New("vec3conv: usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		cancel()
		os.Exit(1)
	}
}

// run is main without the process globals. A nil logger means "build one
// from the job's log level".
func run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("vec3conv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path      = fs.String("config", "", "job file (.yaml or .json)")
		precision = fs.String("precision", "", "float32 or float64 (overrides job)")
		output    = fs.String("output", "", "yaml, json or text (overrides job)")
		workers   = fs.Int("workers", 0, "parallel conversions (overrides job)")
		logLevel  = fs.String("log-level", "", "debug, info, warn or error (overrides job)")
	)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *path == "" {
		fmt.Fprintln(stderr, "vec3conv: -config is required")
		fs.Usage()
		return errUsage
	}

	job, err := config.LoadFile(*path)
	if err != nil {
		return err
	}
	job.Apply(
		config.WithPrecision(*precision),
		config.WithOutput(*output),
		config.WithWorkers(*workers),
		config.WithLogLevel(*logLevel),
	)
	if err := job.Validate(); err != nil {
		return err
	}

	if logger == nil {
		if logger, err = logging.New(job.LogLevel); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}
	logger.Info("converting",
		zap.String("config", *path),
		zap.String("precision", job.Precision),
		zap.Int("points", len(job.Points)))

	kind, _ := job.Kind()
	if kind == numeric.Float32 {
		return convertAndWrite(ctx, job, batch.ConvertPoints[float32](job.Points), stdout, logger)
	}
	return convertAndWrite(ctx, job, job.Points, stdout, logger)
}

// convertAndWrite runs the batch at precision T and writes the vectors.
// When some points were rejected the valid results are still written and
// the joined record errors are returned.
func convertAndWrite[T numeric.Float](ctx context.Context, job *config.Job, points []batch.Point[T], w io.Writer, logger *zap.Logger) error {
	vectors, convErr := batch.Convert(ctx, points,
		batch.WithWorkers(job.Workers),
		batch.WithFailFast(job.FailFast),
		batch.WithLogger(logger))
	if vectors == nil && convErr != nil {
		return convErr
	}

	if err := writeVectors(w, job.Output, numeric.KindOf[T](), vectors); err != nil {
		return err
	}
	logger.Info("done", zap.Int("vectors", len(vectors)), zap.Bool("clean", convErr == nil))

	return convErr
}

// document is the yaml/json output layout.
type document[T numeric.Float] struct {
	Precision string               `json:"precision" yaml:"precision"`
	Vectors   []vector3.Vector3[T] `json:"vectors" yaml:"vectors"`
}

func writeVectors[T numeric.Float](w io.Writer, output string, kind numeric.Kind, vectors []vector3.Vector3[T]) error {
	doc := document[T]{Precision: kind.String(), Vectors: vectors}
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case config.OutputText:
		for _, v := range vectors {
			if _, err := fmt.Fprintln(w, v.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
}
