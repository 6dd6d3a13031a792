// Package Inputs generates key collections for building demo trees.
package Inputs

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	DefaultSize = 15
	DefaultMin  = 1
	DefaultMax  = 100
)

// Random draws size ints from [lo, hi] with f. Values may repeat.
func Random(f *gofakeit.Faker, size, lo, hi int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("random input: negative size %d", size)
	}
	if lo > hi {
		return nil, fmt.Errorf("random input: empty range [%d, %d]", lo, hi)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = f.IntRange(lo, hi)
	}
	return out, nil
}

// Default draws DefaultSize ints from [DefaultMin, DefaultMax]. The same
// non zero seed gives the same keys; seed 0 seeds from crypto/rand.
func Default(seed int64) []int {
	out, _ := Random(gofakeit.New(seed), DefaultSize, DefaultMin, DefaultMax)
	return out
}
