package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrTooFewFields = errors.New("too few fields")
	ErrUnknownOp    = errors.New("unknown operation")
)

// ParseLine parses one line of the event log.
//
// Lines are whitespace separated: "<time> I <order_id> <price>" inserts an
// order, "<time> E <order_id>" erases one. Fields beyond those needed are
// ignored; anything short or unparseable is an error, which the caller is
// expected to treat as a skippable line.
func ParseLine(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Event{}, ErrTooFewFields
	}

	t, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Event{}, fmt.Errorf("bad time %q: %w", fields[0], err)
	}

	orderID, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Event{}, fmt.Errorf("bad order id %q: %w", fields[2], err)
	}

	switch fields[1] {
	case "I":
		if len(fields) < 4 {
			return Event{}, ErrTooFewFields
		}
		price, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Event{}, fmt.Errorf("bad price %q: %w", fields[3], err)
		}
		return Event{Time: t, Op: Insert, OrderID: orderID, Price: price}, nil
	case "E":
		return Event{Time: t, Op: Erase, OrderID: orderID}, nil
	}
	return Event{}, ErrUnknownOp
}
