package scan

// Options configure a Runner beyond its Config.
type Options struct {
	progress func(RecordReport)
}

type Option func(*Options)

// WithProgress registers fn to be called as each record completes. fn is
// called from worker goroutines, possibly concurrently, and not in record
// order.
func WithProgress(fn func(RecordReport)) Option {
	return func(opts *Options) {
		opts.progress = fn
	}
}
