package limits

// Options tunes limit sampling.
//
// Fields:
//   - Epsilon — initial distance of the geometric sample sequence from
//     the target point; must be positive. Each subsequent sample
//     halves the distance.
//
// A nil *Options or a non-positive Epsilon falls back to the defaults,
// keeping every analysis function total.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the standard sampling configuration.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-6}
}

func resolveEpsilon(opts *Options) float64 {
	if opts == nil || opts.Epsilon <= 0 {
		return DefaultOptions().Epsilon
	}
	return opts.Epsilon
}
