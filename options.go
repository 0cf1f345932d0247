package quicksort

// Option configures a sort.
type Option func(*config)

type config struct {
	pivot     Pivot
	threshold int // minimum range size handed to another goroutine, 0 disables parallelism
}

// WithPivot selects the pivot policy. The default is PivotLast.
func WithPivot(p Pivot) Option {
	return func(c *config) {
		c.pivot = p
	}
}

// WithParallel sorts the two sides of a partition concurrently as long as a side holds more than
// threshold elements. Smaller ranges are sorted by the goroutine that produced them. A threshold
// <= 0 disables parallel sorting.
func WithParallel(threshold int) Option {
	return func(c *config) {
		c.threshold = max(threshold, 0)
	}
}

func fromOptions(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}
