package linalg

import (
	"github.com/YuminosukeSato/godense/pkg/log"
)

// defaultPivotTolerance はピボットをゼロとみなす既定の許容誤差
const defaultPivotTolerance = 1e-12

type config struct {
	pivotTol float64
	logger   log.Logger
}

// Option is a function that configures a decomposition call
type Option func(*config)

// WithPivotTolerance sets the threshold below which a pivot |L[k][k]| is
// treated as zero and the matrix reported as singular
func WithPivotTolerance(eps float64) Option {
	return func(c *config) {
		c.pivotTol = eps
	}
}

// WithLogger sets the logger used by the decomposition instead of the
// library-wide default
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		pivotTol: defaultPivotTolerance,
		logger:   log.GetLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
