package realism

import (
	"fmt"
	"math/rand"
	"time"
)

// Provider is the source of human-readable values such as names, phone
// numbers and addresses. Generators treat it as opaque.
type Provider interface {
	Name() string
	FirstName() string
	LastName() string
	FullName() string
	Phone() string
	Address() string
	Date(start, end time.Time) time.Time
}

const (
	KindFaker = "faker"
	KindPools = "pools"
)

var Kinds = []string{KindFaker, KindPools}

// New builds the named provider. A seed of 0 picks a time-based seed.
func New(kind string, seed int64) (Provider, error) {
	switch kind {
	case KindFaker, "":
		return NewFaker(seed), nil
	case KindPools:
		return NewPools(seed), nil
	default:
		return nil, fmt.Errorf("unknown realism provider %q (supported: %v)", kind, Kinds)
	}
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(resolveSeed(seed)))
}

func dateBetween(r *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(r.Int63n(int64(span))))
}
