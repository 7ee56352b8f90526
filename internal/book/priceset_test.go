package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Setup & Helpers --------------------------------------------------------

// countTotal sums the per-tick order counts, which must always equal the
// number of live orders.
func countTotal(s *PriceSet) int {
	total := 0
	s.prices.Scan(func(point *pricePoint) bool {
		total += point.count
		return true
	})
	return total
}

// assertMax asserts that the best price is defined and equals want.
func assertMax(t *testing.T, s *PriceSet, want float64) {
	t.Helper()
	price, ok := s.MaxPrice()
	assert.True(t, ok)
	assert.Equal(t, want, price)
}

// --- Tests ------------------------------------------------------------------

func TestMaxPrice_Empty(t *testing.T) {
	s := NewPriceSet()

	_, ok := s.MaxPrice()
	assert.False(t, ok, "empty set must have no best price")
	assert.Equal(t, 0, s.Len())
}

func TestInsert_TracksMax(t *testing.T) {
	s := NewPriceSet()

	// 1. A single order defines the best price.
	s.Insert(1, 10.0)
	assertMax(t, s, 10.0)

	// 2. Best price follows the greatest tick, not insertion order.
	s.Insert(2, 12.0)
	s.Insert(3, 11.0)
	assertMax(t, s, 12.0)
	assert.Equal(t, 3, s.Len())

	// 3. Erasing the top order falls back to the next tick down.
	s.Erase(2)
	assertMax(t, s, 11.0)
}

func TestInsert_DuplicateIgnored(t *testing.T) {
	s := NewPriceSet()
	s.Insert(1, 10.0)

	// A second insert with the same id changes nothing, even at a new
	// price. The original order stands.
	s.Insert(1, 99.0)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, countTotal(s))
	assertMax(t, s, 10.0)
}

func TestErase_UnknownIgnored(t *testing.T) {
	s := NewPriceSet()
	s.Insert(1, 10.0)
	s.Insert(2, 12.0)

	s.Erase(42)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, countTotal(s))
	assertMax(t, s, 12.0)
}

func TestErase_LastOrderAtTickRemovesTick(t *testing.T) {
	s := NewPriceSet()

	// 1. Two orders resting on the same tick count as one tick.
	s.Insert(1, 10.0)
	s.Insert(2, 10.0)
	assert.Equal(t, 1, s.prices.Len())
	assert.Equal(t, 2, countTotal(s))

	// 2. Erasing one keeps the tick alive.
	s.Erase(1)
	assert.Equal(t, 1, s.prices.Len())
	assertMax(t, s, 10.0)

	// 3. Erasing the last one drops the tick entirely; no zero counts
	// linger.
	s.Erase(2)
	assert.Equal(t, 0, s.prices.Len())
	_, ok := s.MaxPrice()
	assert.False(t, ok)
}

func TestInsertErase_CountInvariant(t *testing.T) {
	s := NewPriceSet()

	// Churn a handful of orders across few ticks, including reuse of an
	// erased id, and check the invariant after every mutation.
	steps := []struct {
		insert bool
		id     int64
		price  float64
	}{
		{true, 1, 10.0},
		{true, 2, 10.0},
		{true, 3, 12.0},
		{false, 2, 0},
		{true, 4, 11.0},
		{false, 1, 0},
		{false, 3, 0},
		{true, 2, 12.0}, // id 2 comes back at a different price
		{false, 99, 0},  // unknown id
		{true, 4, 99.0}, // duplicate id
	}

	for i, step := range steps {
		if step.insert {
			s.Insert(step.id, step.price)
		} else {
			s.Erase(step.id)
		}
		assert.Equal(t, s.Len(), countTotal(s), "step %d", i)
	}

	assert.Equal(t, 2, s.Len())
	assertMax(t, s, 12.0)
}
