package spanvec

// Option configures a Vector during creation.
//
// Example:
//
//	// Plain vector
//	v := spanvec.New(' ')
//
//	// Vector that re-validates itself after every Set (tests, debugging)
//	v := spanvec.New(' ', spanvec.WithConsistencyChecks())
type Option func(*vectorOptions)

// vectorOptions holds optional configuration for Vector creation.
type vectorOptions struct {
	capacity int
	checks   bool
}

// defaultOptions returns the default vector options.
func defaultOptions() vectorOptions {
	return vectorOptions{
		capacity: 0, // grown on first Set
		checks:   false,
	}
}

// WithCapacity preallocates room for n runs.
func WithCapacity(n int) Option {
	return func(o *vectorOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithConsistencyChecks enables the consistency mode: every Set
// re-validates the whole run list, and every Rider.At re-derives its cached
// cursor from scratch. A violation is logged and then panics with an
// [*InvariantError].
//
// The checks are O(runs) per call. Use them in tests, not in layout passes.
func WithConsistencyChecks() Option {
	return func(o *vectorOptions) {
		o.checks = true
	}
}
