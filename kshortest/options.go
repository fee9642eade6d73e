package kshortest

// Options configures a BestPaths call.
type Options struct {
	// SidetracksOnly suppresses BestEdge callbacks (the tree arcs that
	// stitch each path together); only sidetrack arcs are reported.
	SidetracksOnly bool
}

// Option is a functional option for BestPaths.
type Option func(*Options)

// WithSidetracksOnly suppresses reporting of the tree (non-sidetrack) arcs
// that stitch each emitted path together, leaving only the arcs that make
// that path different from the shortest one.
func WithSidetracksOnly() Option {
	return func(o *Options) { o.SidetracksOnly = true }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
