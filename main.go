package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tinyrange/kvmio/internal/config"
	"github.com/tinyrange/kvmio/internal/window"
)

func newLogger(out *os.File, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "", "TOML or YAML settings file")
	width := fs.Int("width", 0, "window width")
	height := fs.Int("height", 0, "window height")
	fps := fs.Float64("fps", 0, "paints per second in the capped loop (0 is uncapped)")
	loop := fs.String("loop", "", "event loop: blocking, uncapped or capped")
	format := fs.String("format", "", "frame format: rgb, nv12 or yuyv")
	frameFile := fs.String("frame", "", "raw frame file shown on every paint")
	fullScreen := fs.Bool("fullscreen", false, "start full screen")
	lock := fs.Bool("lock", false, "start with the cursor locked")
	listDevices := fs.Bool("list-devices", false, "list raw input devices and exit")
	verbose := fs.Bool("v", false, "log every decoded input")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	slog.SetDefault(newLogger(os.Stderr, *verbose))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FrameRate = *fps
		case "loop":
			cfg.Loop = *loop
		case "format":
			cfg.FrameFormat = *format
		case "frame":
			cfg.FrameFile = *frameFile
		case "fullscreen":
			cfg.FullScreen = *fullScreen
		case "lock":
			cfg.LockCursor = *lock
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	frameFormat, _ := cfg.Format()

	reg := window.NewRegistry(nil, slog.Default())
	win, err := reg.Open(window.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer win.Close()

	if *listDevices {
		devs, err := win.Devices()
		if err != nil {
			log.Fatalf("list devices: %v", err)
		}
		for _, d := range devs {
			slog.Info("Raw input device", "handle", fmt.Sprintf("%#x", d.Handle), "type", d.Type)
		}
		return
	}

	win.SetFrameFormat(frameFormat)
	if cfg.FrameFile != "" {
		data, err := cfg.ReadFrame()
		if err != nil {
			log.Fatalf("frame: %v", err)
		}
		win.SetFrameSource(func() []byte { return data })
	}
	if err := bindCombinations(win, cfg.Combinations); err != nil {
		log.Fatalf("combinations: %v", err)
	}

	if err := win.Show(); err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := win.SetFullScreen(cfg.FullScreen); err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := win.Lock(cfg.LockCursor); err != nil {
		log.Fatalf("init: %v", err)
	}

	slog.Info("Window open",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"format", frameFormat,
		"loop", cfg.Loop,
	)

	switch cfg.Loop {
	case config.LoopBlocking:
		err = win.RunBlocking()
	case config.LoopUncapped:
		err = win.RunGameLoop(nil)
	default:
		err = win.RunGameLoopCapped(cfg.FrameRate, nil)
	}
	if err != nil {
		log.Fatalf("run loop: %v", err)
	}
}
