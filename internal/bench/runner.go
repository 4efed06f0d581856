package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"pqbench/internal/logger"
	"pqbench/internal/pq"
)

// ErrInvalidCount is returned for operation counts outside [1, MaxCount].
var ErrInvalidCount = errors.New("invalid operation count")

// MaxCount bounds an operation count so every generated priority fits in
// 32 bits.
const MaxCount = math.MaxInt32

// DefaultCounts returns the operation counts measured when none are
// configured, largest first.
func DefaultCounts() []int {
	return []int{50000, 40000, 30000, 20000, 10000}
}

// ValidateCounts checks that every count lies in [1, MaxCount].
func ValidateCounts(counts []int) error {
	for _, c := range counts {
		if c <= 0 || c > MaxCount {
			return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidCount, c, MaxCount)
		}
	}
	return nil
}

// Row is the outcome for one operation count across all queue types.
type Row struct {
	Count   int
	Results map[pq.Type]Result
}

// Observer receives every completed run. *metrics.Recorder satisfies it.
type Observer interface {
	ObserveRun(queue string, count int, insert, extract time.Duration, missed int)
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	Counts   []int
	Types    []pq.Type
	Options  Options
	Logger   logger.Logger
	Observer Observer
	// NewQueue overrides queue construction, mainly for tests.
	NewQueue func(pq.Type) (pq.Queue, error)
}

// Runner measures every configured queue type for every operation count.
type Runner struct {
	counts   []int
	types    []pq.Type
	opts     Options
	log      logger.Logger
	observer Observer
	newQueue func(pq.Type) (pq.Queue, error)
}

// NewRunner validates cfg and creates a Runner. Empty Counts and Types fall
// back to DefaultCounts and pq.Types.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	counts := cfg.Counts
	if len(counts) == 0 {
		counts = DefaultCounts()
	}
	if err := ValidateCounts(counts); err != nil {
		return nil, err
	}

	types := cfg.Types
	if len(types) == 0 {
		types = pq.Types()
	}

	newQueue := cfg.NewQueue
	if newQueue == nil {
		newQueue = pq.New
	}
	for _, t := range types {
		if _, err := newQueue(t); err != nil {
			return nil, err
		}
	}

	return &Runner{
		counts:   append([]int(nil), counts...),
		types:    append([]pq.Type(nil), types...),
		opts:     cfg.Options,
		log:      cfg.Logger,
		observer: cfg.Observer,
		newQueue: newQueue,
	}, nil
}

// Types returns the queue types in measurement order.
func (r *Runner) Types() []pq.Type {
	return append([]pq.Type(nil), r.types...)
}

// Run measures every (count, type) pair on a freshly constructed queue and
// returns one Row per count in configured order. ctx is only checked
// between runs. Without a configured Logger, Run logs to the one carried
// by ctx, if any.
func (r *Runner) Run(ctx context.Context) ([]Row, error) {
	log := r.log
	if log == nil {
		log = logger.FromContext(ctx)
	}
	runLog := log.With(logger.F("run_id", uuid.NewString()))
	runLog.Info("Starting benchmark",
		logger.F("counts", r.counts),
		logger.F("collect_garbage", r.opts.CollectGarbage))

	rows := make([]Row, 0, len(r.counts))
	for _, count := range r.counts {
		row := Row{Count: count, Results: make(map[pq.Type]Result, len(r.types))}

		for _, t := range r.types {
			if err := ctx.Err(); err != nil {
				return rows, fmt.Errorf("benchmark interrupted before %s/%d: %w", t, count, err)
			}

			q, err := r.newQueue(t)
			if err != nil {
				return rows, fmt.Errorf("create %s queue: %w", t, err)
			}

			res := Measure(q, count, r.opts)
			row.Results[t] = res

			runLog.Debug("Measured queue",
				logger.F("queue", string(t)),
				logger.F("operation_count", count),
				logger.F("insert", res.Insert),
				logger.F("extract", res.Extract))
			if res.Missed > 0 {
				runLog.Warn("Queue returned no value during extraction",
					logger.F("queue", string(t)),
					logger.F("operation_count", count),
					logger.F("missed", res.Missed))
			}
			if r.observer != nil {
				r.observer.ObserveRun(t.ShortName(), count, res.Insert, res.Extract, res.Missed)
			}
		}

		rows = append(rows, row)
	}

	runLog.Info("Benchmark finished", logger.F("rows", len(rows)))
	return rows, nil
}
