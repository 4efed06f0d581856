package pq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQueueType is returned by New and ParseType for names that do not
// match a known implementation.
var ErrUnknownQueueType = errors.New("unknown queue type")

// Queue is a max-priority queue of labels.
//
// ExtractMax returns ("", false) on an empty queue. That is a normal result,
// not an error.
type Queue interface {
	Insert(label string, priority int)
	ExtractMax() (string, bool)
	Len() int
}

// Type represents the type of queue to create
type Type string

const (
	TypeHeap        Type = "heap"
	TypeSortedArray Type = "sorted_array"
)

// Types returns every implementation in reporting order.
func Types() []Type {
	return []Type{TypeHeap, TypeSortedArray}
}

// New creates an empty queue of the given type.
func New(t Type) (Queue, error) {
	switch t {
	case TypeHeap:
		return NewHeapQueue(), nil
	case TypeSortedArray:
		return NewSortedArrayQueue(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueueType, string(t))
	}
}

// ParseType maps a user supplied name to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "binary_heap", "binary-heap":
		return TypeHeap, nil
	case "sorted_array", "sorted-array", "array":
		return TypeSortedArray, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQueueType, name)
	}
}

// ShortName is the column prefix used when reporting results.
func (t Type) ShortName() string {
	switch t {
	case TypeSortedArray:
		return "array"
	default:
		return string(t)
	}
}
