package random

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed resets the shared source to a deterministic state.
func Seed(seed int64) {
	mu.Lock()
	rnd = rand.New(rand.NewSource(seed))
	mu.Unlock()
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Intn(n)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](items []T) T {
	return items[Intn(len(items))]
}

// PickOptional treats the zero value of T as one extra choice next to items,
// so an optional field is left absent with probability 1/(len(items)+1).
func PickOptional[T any](items []T) T {
	i := Intn(len(items) + 1)
	if i == len(items) {
		var zero T
		return zero
	}
	return items[i]
}
