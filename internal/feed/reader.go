package feed

import (
	"bufio"
	"io"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const (
	EVENT_CHAN_SIZE = 100
)

// Reader streams parsed events off an event log in arrival order.
// Malformed lines are skipped; they never reach the consumer.
type Reader struct {
	src    io.Reader
	events chan Event
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:    src,
		events: make(chan Event, EVENT_CHAN_SIZE),
	}
}

// Events is the ordered stream of parsed events. The channel is closed
// once the source is drained or the reader dies.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Run scans the source line by line until EOF or until the tomb dies.
// There is exactly one producer, so consumers see events in file order.
func (r *Reader) Run(t *tomb.Tomb) error {
	defer close(r.events)

	scanner := bufio.NewScanner(r.src)
	for scanner.Scan() {
		event, err := ParseLine(scanner.Text())
		if err != nil {
			log.Debug().
				Err(err).
				Str("line", scanner.Text()).
				Msg("skipping malformed line")
			continue
		}

		select {
		case <-t.Dying():
			return tomb.ErrDying
		case r.events <- event:
		}
	}
	return scanner.Err()
}
