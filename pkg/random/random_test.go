package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/useragents/pkg/random"
)

func TestSeed_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	random.Seed(7)
	first := make([]string, 0, 20)
	for range 20 {
		first = append(first, random.Pick(items))
	}

	random.Seed(7)
	second := make([]string, 0, 20)
	for range 20 {
		second = append(second, random.Pick(items))
	}

	assert.Equal(t, first, second)
}

func TestPick(t *testing.T) {
	items := []int{1, 2, 3}
	for range 100 {
		assert.Contains(t, items, random.Pick(items))
	}

	assert.Panics(t, func() {
		random.Pick([]int{})
	})
}

func TestPickOptional(t *testing.T) {
	items := []string{"x", "y"}
	seen := map[string]bool{}
	for range 500 {
		seen[random.PickOptional(items)] = true
	}

	assert.True(t, seen["x"])
	assert.True(t, seen["y"])
	assert.True(t, seen[""], "zero value must be a possible choice")
	assert.Len(t, seen, 3)

	assert.Equal(t, "", random.PickOptional([]string{}))
}

func TestIntn(t *testing.T) {
	for range 100 {
		n := random.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}
