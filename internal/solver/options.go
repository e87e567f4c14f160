package solver

// Options configures solution enumeration.
type Options struct {
	// MaxSolutions caps the number of solutions collected; 0 enumerates
	// exhaustively. Near-empty grids have an enormous solution space, so
	// callers wanting bounded work set a cap.
	MaxSolutions int
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		MaxSolutions: 0,
	}
}
