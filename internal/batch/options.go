// SPDX-License-Identifier: MIT

package batch

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Convert.
type Option func(*options)

type options struct {
	workers  int
	failFast bool
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{
		workers: runtime.NumCPU(),
		logger:  zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers bounds the number of concurrent conversions.
// n <= 0 keeps the default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithFailFast makes Convert abort on invalid input, reporting only the
// lowest-indexed invalid point.
func WithFailFast(on bool) Option {
	return func(o *options) { o.failFast = on }
}

// WithLogger sets the logger for per-record warnings and the summary line.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
