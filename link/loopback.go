package link

import (
	"sync"

	"github.com/boneycircuitry/megamega2612/ym2612"
)

// Loopback delivers commands directly to an in-process receiver, byte by
// byte, exactly as the wire would. It backs the emulated proxy when no
// hardware is attached, and tests.
type Loopback struct {
	mu   sync.Mutex
	sink ByteSink
}

var _ Link = (*Loopback)(nil)

// NewLoopback returns a link feeding sink.
func NewLoopback(sink ByteSink) *Loopback {
	return &Loopback{sink: sink}
}

func (l *Loopback) Send(w ym2612.Write) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range Frame(w) {
		l.sink.Feed(b)
	}
	return nil
}

func (l *Loopback) Close() error { return nil }
