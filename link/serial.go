package link

import (
	"sync"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"github.com/boneycircuitry/megamega2612/ym2612"
)

// SerialLink sends commands over a serial port to the proxy device.
// Safe for concurrent use; each command's 3 bytes go out back to back so
// interleaved senders cannot tear a frame.
type SerialLink struct {
	mu   sync.Mutex
	port serial.Port
}

var _ Link = (*SerialLink)(nil)

// OpenSerial opens the proxy's serial port at the given baud rate.
func OpenSerial(device string, baud int) (*SerialLink, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", device)
	}
	return &SerialLink{port: port}, nil
}

func (l *SerialLink) Send(w ym2612.Write) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	frame := Frame(w)
	if _, err := l.port.Write(frame[:]); err != nil {
		return errors.Wrap(err, "send command")
	}
	return nil
}

func (l *SerialLink) Close() error {
	return l.port.Close()
}
