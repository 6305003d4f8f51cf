package geostore

import (
	"runtime"

	"golang.org/x/time/rate"

	"github.com/hupe1980/zerogeom"
)

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	logger      *zerogeom.Logger
	compression Compression
	parallelism int
	limiter     *rate.Limiter
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		logger:      zerogeom.NoopLogger(),
		compression: CompressionZSTD,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *zerogeom.Logger) Option {
	return func(o *storeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompression sets the snapshot compression algorithm.
// The default is CompressionZSTD.
func WithCompression(c Compression) Option {
	return func(o *storeOptions) {
		if c.valid() {
			o.compression = c
		}
	}
}

// WithParallelism sets the number of scan workers.
// The default is GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *storeOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithRateLimit throttles scans to limit records per second across all
// workers. Zero burst disables the limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *storeOptions) {
		if burst > 0 {
			o.limiter = rate.NewLimiter(limit, burst)
		}
	}
}
