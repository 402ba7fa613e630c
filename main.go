package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/boneycircuitry/megamega2612/controller"
	"github.com/boneycircuitry/megamega2612/link"
	"github.com/boneycircuitry/megamega2612/proxy"
	"github.com/boneycircuitry/megamega2612/ui"
)

// initLogger builds the shared logger and routes the stdlib log package
// through it. Interactive runs log to a file so the alternate screen stays
// clean; headless runs log to stderr.
func initLogger(debug, headless bool) *slog.Logger {
	out := io.Writer(os.Stderr)
	if !headless {
		if f, err := os.OpenFile("megamega.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			out = f
		}
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	log := slog.New(h)
	slog.SetDefault(log)
	return log
}

// findInput picks the MIDI input whose name contains pattern, or the first
// available input when pattern is empty.
func findInput(drv *rtmididrv.Driver, pattern string) (drivers.In, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, errors.Wrap(err, "list midi inputs")
	}
	if len(ins) == 0 {
		return nil, errors.New("no midi inputs available")
	}
	if pattern == "" {
		return ins[0], nil
	}
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), strings.ToLower(pattern)) {
			return in, nil
		}
	}
	return nil, errors.Errorf("no midi input matching %q", pattern)
}

func main() {
	configPath := flag.String("config", "megamega.yaml", "path to config file")
	serialDev := flag.String("serial", "", "serial device of the sound unit (overrides config)")
	midiPort := flag.String("midi", "", "MIDI input port name substring (overrides config)")
	headless := flag.Bool("headless", false, "run without the terminal interface")
	debug := flag.Bool("debug", false, "enable debug logging (adds source locations)")
	flag.Parse()

	cfg, cfgErr := controller.LoadConfig(*configPath)
	if *serialDev != "" {
		cfg.SerialDevice = *serialDev
	}
	if *midiPort != "" {
		cfg.MIDIPort = *midiPort
	}

	log := initLogger(*debug || cfg.LogLevel == "debug", *headless)
	if cfgErr != nil {
		log.Error("config load failed", "path", *configPath, "err", cfgErr)
		os.Exit(1)
	}
	log.Info("megamega2612 starting",
		"serial", cfg.SerialDevice,
		"midi", cfg.MIDIPort,
		"patch", cfg.Patch,
		"tick_ms", cfg.TickMS,
	)

	// Without a serial device the command stream feeds an in-process sound
	// unit that logs its bus strobes, so everything downstream of the wire
	// can be watched on a bench with no hardware attached.
	var l link.Link
	if cfg.SerialDevice == "" {
		w := proxy.NewWriter(proxy.NewLogBus(log))
		w.PowerOn()
		l = link.NewLoopback(proxy.NewReceiver(w))
		log.Info("no serial device configured, using loopback unit")
	} else {
		sl, err := link.OpenSerial(cfg.SerialDevice, cfg.Baud)
		if err != nil {
			log.Error("serial open failed", "device", cfg.SerialDevice, "err", err)
			os.Exit(1)
		}
		l = sl
	}

	c := controller.New(l, log, cfg)

	drv, err := rtmididrv.New()
	if err != nil {
		log.Error("midi driver init failed", "err", err)
		os.Exit(1)
	}
	defer drv.Close()

	// A missing MIDI input is not fatal; the panel side still works.
	var stopListen func()
	if in, err := findInput(drv, cfg.MIDIPort); err != nil {
		log.Warn("midi input unavailable", "err", err)
	} else if err := in.Open(); err != nil {
		log.Warn("midi open failed", "port", in.String(), "err", err)
	} else {
		stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
			for _, b := range msg.Bytes() {
				c.HandleMIDIByte(b)
			}
		}, midi.HandleError(func(err error) {
			log.Warn("midi listener error", "err", err)
		}))
		if err != nil {
			log.Warn("midi listen failed", "port", in.String(), "err", err)
		} else {
			stopListen = stop
			log.Info("midi input connected", "port", in.String())
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		tick := time.Duration(cfg.TickMS) * time.Millisecond
		if err := c.Run(ctx, tick); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("controller loop stopped", "err", err)
		}
	}()

	if *headless {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		log.Info("shutting down", "signal", s.String())
	} else if err := ui.Run(c); err != nil {
		log.Error("terminal ui failed", "err", err)
	}

	cancel()
	if stopListen != nil {
		stopListen()
	}
	c.AllNotesOff()
	if err := l.Close(); err != nil {
		log.Warn("link close failed", "err", err)
	}
}
