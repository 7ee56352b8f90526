package replay

import (
	"skoll/internal/book"
	"skoll/internal/feed"
	"skoll/internal/twap"
)

// Session replays one event log for one instrument. It owns the live
// order set and the TWAP accumulator for the duration of a single pass;
// both start empty and are discarded with the session.
type Session struct {
	book *book.PriceSet
	acc  *twap.Accumulator
}

func NewSession() *Session {
	return &Session{
		book: book.NewPriceSet(),
		acc:  twap.NewAccumulator(),
	}
}

// Apply runs one event through the pipeline: update the order set, feed
// the resulting best price at the event's time into the accumulator, and
// report the running average. The second return is false while the average
// is still undefined (no weighted interval has completed yet).
func (s *Session) Apply(event feed.Event) (float64, bool) {
	switch event.Op {
	case feed.Insert:
		s.book.Insert(event.OrderID, event.Price)
	case feed.Erase:
		s.book.Erase(event.OrderID)
	}

	price, ok := s.book.MaxPrice()
	s.acc.Observe(event.Time, price, ok)
	return s.acc.Average()
}

// LiveOrders reports how many orders are still outstanding.
func (s *Session) LiveOrders() int {
	return s.book.Len()
}
