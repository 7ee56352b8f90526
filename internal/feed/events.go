package feed

// Op is the order-book operation carried by one event.
type Op int

const (
	// Insert places a new order, with a price, into the book.
	Insert Op = iota
	// Erase removes a previously inserted order by id.
	Erase
)

// Event is one parsed line of the event log. Time is in milliseconds since
// the start of trading. Price is only meaningful for Insert.
type Event struct {
	Time    int64
	Op      Op
	OrderID int64
	Price   float64
}
