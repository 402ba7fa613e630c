package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.bug.st/serial"

	"github.com/boneycircuitry/megamega2612/proxy"
)

// ymproxy is the sound-unit half of the bridge run on a development box:
// it takes the controller's command stream off a serial port and replays
// each command as bus strobes, so the exact chip traffic can be inspected
// without the real unit attached.
func main() {
	device := flag.String("serial", "/dev/ttyUSB0", "serial device the controller talks on")
	baud := flag.Int("baud", 115200, "serial baud rate")
	debug := flag.Bool("debug", false, "log every bus strobe")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	port, err := serial.Open(*device, &serial.Mode{BaudRate: *baud})
	if err != nil {
		log.Error("serial open failed", "device", *device, "err", err)
		os.Exit(1)
	}

	w := proxy.NewWriter(proxy.NewLogBus(log))
	w.PowerOn()
	r := proxy.NewReceiver(w)
	log.Info("sound unit ready", "device", *device, "baud", *baud)

	// Closing the port unblocks the read loop.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Info("shutting down", "signal", s.String())
		port.Close()
	}()

	buf := make([]byte, 64)
	for {
		n, err := port.Read(buf)
		if err != nil {
			log.Info("serial read ended", "err", err)
			return
		}
		for _, b := range buf[:n] {
			r.Feed(b)
		}
	}
}
