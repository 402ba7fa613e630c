package proxy

import "log/slog"

// LogBus is a Bus that records every primitive to the debug log instead of
// touching hardware. It stands in for the chip when the proxy runs on a
// development host, and makes the exact strobe sequence visible.
type LogBus struct {
	log *slog.Logger
}

var _ Bus = (*LogBus)(nil)

// NewLogBus returns a bus logging through log.
func NewLogBus(log *slog.Logger) *LogBus {
	return &LogBus{log: log}
}

func (b *LogBus) SelectRegister(blk Block) {
	b.log.Debug("bus select register", "block", blk.String())
}

func (b *LogBus) SelectData(blk Block) {
	b.log.Debug("bus select data", "block", blk.String())
}

func (b *LogBus) StrobeWrite(data uint8) {
	b.log.Debug("bus strobe", "data", data)
}
