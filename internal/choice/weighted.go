package choice

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var ErrInvalidWeights = errors.New("invalid weights")

// Weighted samples items proportionally to their weights using a cumulative
// distribution and binary search.
type Weighted[T any] struct {
	items      []T
	cumulative []float64
	total      float64
}

func NewWeighted[T any](items []T, weights []float64) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidWeights)
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items but %d weights", ErrInvalidWeights, len(items), len(weights))
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v for item %d", ErrInvalidWeights, w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}

	return &Weighted[T]{
		items:      append([]T(nil), items...),
		cumulative: cumulative,
		total:      total,
	}, nil
}

// MustWeighted is NewWeighted for fixed value pools declared at package level.
func MustWeighted[T any](items []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(items, weights)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Weighted[T]) Pick(r *rand.Rand) T {
	target := r.Float64() * w.total
	idx := sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] > target
	})
	if idx == len(w.items) {
		idx = len(w.items) - 1
	}
	return w.items[idx]
}

func (w *Weighted[T]) Len() int {
	return len(w.items)
}

// Probability returns the share of the total weight held by item i.
func (w *Weighted[T]) Probability(i int) float64 {
	prev := 0.0
	if i > 0 {
		prev = w.cumulative[i-1]
	}
	return (w.cumulative[i] - prev) / w.total
}

func Uniform[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// IntBetween returns a uniform integer in [lo, hi].
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func FloatBetween(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
