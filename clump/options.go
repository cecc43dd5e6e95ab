package clump

// Options configure a Detector.
type Options struct {
	bounds Bounds
}

type Option func(*Options)

// WithBounds selects the k-mer start convention used both for seeding and for
// sliding. The default is BoundsInclusive.
func WithBounds(b Bounds) Option {
	return func(opts *Options) {
		opts.bounds = b
	}
}
