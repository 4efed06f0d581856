package pq

import (
	"slices"
	"sort"
)

// SortedArrayQueue is a max-priority queue backed by a slice kept in
// ascending priority order, so the maximum is always the last element.
// Insert is O(n) because of the shift; ExtractMax is O(1).
type SortedArrayQueue struct {
	entries []Entry
}

// NewSortedArrayQueue creates an empty sorted array queue.
func NewSortedArrayQueue() *SortedArrayQueue {
	return &SortedArrayQueue{
		entries: make([]Entry, 0),
	}
}

// Len returns the number of entries in the queue.
func (s *SortedArrayQueue) Len() int {
	return len(s.entries)
}

// Insert binary searches for the first entry whose priority is >= priority
// and inserts in front of it. A new entry therefore lands before older
// entries of equal priority, which keeps the older ones nearer the tail and
// makes ties come out in insertion order.
func (s *SortedArrayQueue) Insert(label string, priority int) {
	idx := s.searchLowerBound(priority)
	s.entries = slices.Insert(s.entries, idx, Entry{Label: label, Priority: priority})
}

// ExtractMax removes and returns the label at the tail.
func (s *SortedArrayQueue) ExtractMax() (string, bool) {
	last := len(s.entries) - 1
	if last < 0 {
		return "", false
	}

	label := s.entries[last].Label
	s.entries[last] = Entry{}
	s.entries = s.entries[:last]
	return label, true
}

func (s *SortedArrayQueue) searchLowerBound(priority int) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Priority >= priority
	})
}
