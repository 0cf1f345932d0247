package server

import (
	"time"

	"znkr.io/quicksort/qsort/seq"
)

// Dataset is a sorted sequence together with where it came from.
type Dataset struct {
	Source string
	Sorted *seq.Sequence
	Loaded time.Time
}
