package book

import (
	"github.com/tidwall/btree"
)

// pricePoint counts the live orders resting at a single price tick.
type pricePoint struct {
	price float64
	count int
}

type pricePoints = btree.BTreeG[*pricePoint]

// PriceSet tracks the currently outstanding orders and the best (maximum)
// price among them.
//
// Two containers, no back-references: an id->price map so an order can be
// erased by id, and a price-sorted tree counting orders per tick so the
// maximum is always the last item. Orders cluster on a limited set of
// ticks, so counting per tick keeps the tree small even under heavy churn
// at the same price.
type PriceSet struct {
	orders map[int64]float64
	prices *pricePoints
}

func NewPriceSet() *PriceSet {
	// Sorted least first.
	prices := btree.NewBTreeG(func(a, b *pricePoint) bool {
		return a.price < b.price
	})
	return &PriceSet{
		orders: make(map[int64]float64),
		prices: prices,
	}
}

// Insert records a new live order at the given price. An id already in the
// set is ignored and the original order stands; duplicates are not an
// error.
func (s *PriceSet) Insert(orderID int64, price float64) {
	if _, ok := s.orders[orderID]; ok {
		return
	}
	s.orders[orderID] = price

	// Comparator only looks at the price, so a bare point works for the
	// lookup.
	if point, ok := s.prices.GetMut(&pricePoint{price: price}); ok {
		point.count++
		return
	}
	s.prices.Set(&pricePoint{price: price, count: 1})
}

// Erase removes a live order by id. Unknown ids are ignored, not an error.
func (s *PriceSet) Erase(orderID int64) {
	price, ok := s.orders[orderID]
	if !ok {
		return
	}
	delete(s.orders, orderID)

	point, ok := s.prices.GetMut(&pricePoint{price: price})
	if !ok {
		return
	}
	point.count--
	if point.count <= 0 {
		// Last order at this tick, drop the tick entirely.
		s.prices.Delete(point)
	}
}

// MaxPrice returns the greatest price among live orders. The second return
// is false when no orders are live.
func (s *PriceSet) MaxPrice() (float64, bool) {
	point, ok := s.prices.Max()
	if !ok {
		return 0, false
	}
	return point.price, true
}

// Len returns the number of live orders.
func (s *PriceSet) Len() int {
	return len(s.orders)
}
