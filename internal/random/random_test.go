package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Positive_Bounds(t *testing.T) {
	g := New()

	for i := 0; i < 10000; i++ {
		n := g.Positive(7008)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 7008)
	}
}

func TestGenerator_Positive_MaxOne(t *testing.T) {
	g := New()

	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, g.Positive(1))
	}
}

func TestGenerator_Positive_CoversRange(t *testing.T) {
	g := New()

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[g.Positive(5)] = true
	}
	for n := 1; n <= 5; n++ {
		assert.True(t, seen[n], "expected %d to be drawn at least once", n)
	}
}

func TestGenerator_Positive_Concurrent(t *testing.T) {
	g := New()

	var wg sync.WaitGroup
	errs := make(chan int, 50*200)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if n := g.Positive(100); n < 1 || n > 100 {
					errs <- n
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for n := range errs {
		t.Errorf("draw out of bounds: %d", n)
	}
}
