package bench

import (
	"fmt"
	"testing"

	"pqbench/internal/pq"
)

// recordingQueue remembers every label ExtractMax hands back.
type recordingQueue struct {
	pq.Queue
	extracted []string
	inserted  int
}

func (r *recordingQueue) Insert(label string, priority int) {
	r.inserted++
	r.Queue.Insert(label, priority)
}

func (r *recordingQueue) ExtractMax() (string, bool) {
	label, ok := r.Queue.ExtractMax()
	if ok {
		r.extracted = append(r.extracted, label)
	}
	return label, ok
}

// emptyQueue never holds anything.
type emptyQueue struct{}

func (emptyQueue) Insert(string, int)         {}
func (emptyQueue) ExtractMax() (string, bool) { return "", false }
func (emptyQueue) Len() int                   { return 0 }

func TestMeasure_ExtractsDescending(t *testing.T) {
	const n = 1000
	for _, typ := range pq.Types() {
		t.Run(string(typ), func(t *testing.T) {
			inner, err := pq.New(typ)
			if err != nil {
				t.Fatalf("failed to create queue: %v", err)
			}
			q := &recordingQueue{Queue: inner}

			res := Measure(q, n, Options{})

			if res.Extracted != n || res.Missed != 0 {
				t.Fatalf("expected %d extracted and 0 missed, got %d/%d", n, res.Extracted, res.Missed)
			}
			if res.Insert < 0 || res.Extract < 0 {
				t.Fatalf("unexpected durations insert=%v extract=%v", res.Insert, res.Extract)
			}
			if q.inserted != n {
				t.Fatalf("expected %d inserts, got %d", n, q.inserted)
			}
			for i, label := range q.extracted {
				want := fmt.Sprintf("element_%d", n-1-i)
				if label != want {
					t.Fatalf("extraction %d: want %q, got %q", i, want, label)
				}
			}
			if inner.Len() != 0 {
				t.Fatalf("expected queue drained, len=%d", inner.Len())
			}
		})
	}
}

func TestMeasure_Deterministic(t *testing.T) {
	const n = 5000
	for _, typ := range pq.Types() {
		t.Run(string(typ), func(t *testing.T) {
			var runs [2][]string
			for i := range runs {
				inner, err := pq.New(typ)
				if err != nil {
					t.Fatalf("failed to create queue: %v", err)
				}
				q := &recordingQueue{Queue: inner}
				Measure(q, n, Options{CollectGarbage: i == 1})
				runs[i] = q.extracted
			}

			if len(runs[0]) != len(runs[1]) {
				t.Fatalf("run lengths differ: %d vs %d", len(runs[0]), len(runs[1]))
			}
			for i := range runs[0] {
				if runs[0][i] != runs[1][i] {
					t.Fatalf("runs diverge at %d: %q vs %q", i, runs[0][i], runs[1][i])
				}
			}
		})
	}
}

func TestMeasure_EmptyExtractionIsNotFatal(t *testing.T) {
	res := Measure(emptyQueue{}, 10, Options{})
	if res.Missed != 10 || res.Extracted != 0 {
		t.Fatalf("expected 10 misses, got extracted=%d missed=%d", res.Extracted, res.Missed)
	}
}

func TestMeasure_ZeroOperations(t *testing.T) {
	res := Measure(pq.NewHeapQueue(), 0, Options{})
	if res.Extracted != 0 || res.Missed != 0 {
		t.Fatalf("expected nothing to happen, got %+v", res)
	}
}
