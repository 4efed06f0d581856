package bench

import (
	"runtime"
	"strconv"
	"time"

	"pqbench/internal/pq"
)

// LabelPrefix is prepended to the loop index to build synthetic labels.
const LabelPrefix = "element_"

// Result holds the timings of one measurement run.
type Result struct {
	Insert    time.Duration
	Extract   time.Duration
	Extracted int
	Missed    int
}

// Options tune how a run is measured.
type Options struct {
	// CollectGarbage forces a collection before each phase, outside the
	// timed window.
	CollectGarbage bool
}

// Measure performs n inserts of ("element_i", i) followed by n extractions
// on q and returns the wall clock duration of each phase. An empty
// extraction is counted in Result.Missed and the run carries on.
func Measure(q pq.Queue, n int, opts Options) Result {
	var res Result

	if opts.CollectGarbage {
		runtime.GC()
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		q.Insert(LabelPrefix+strconv.Itoa(i), i)
	}
	res.Insert = time.Since(start)

	if opts.CollectGarbage {
		runtime.GC()
	}
	start = time.Now()
	for i := 0; i < n; i++ {
		if _, ok := q.ExtractMax(); ok {
			res.Extracted++
		} else {
			res.Missed++
		}
	}
	res.Extract = time.Since(start)

	return res
}
