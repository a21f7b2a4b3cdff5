package main

import (
	"log"
	"log/slog"

	"github.com/tinyrange/kvmio/internal/config"
	"github.com/tinyrange/kvmio/internal/rawinput"
	"github.com/tinyrange/kvmio/internal/window"
)

// bindCombinations registers each configured combination on win, in order.
func bindCombinations(win *window.Window, combs []config.Combination) error {
	for _, c := range combs {
		keys, err := c.VirtualKeys()
		if err != nil {
			return err
		}
		comb := win.Combination(keys...)
		name, action := c.Name, c.Action
		comb.Subscribe(func(seq []rawinput.KeyboardInput) {
			slog.Debug("Combination", "name", name, "keys", comb.String(), "action", action)
			run(win, name, action, seq)
		})
	}
	return nil
}

// run performs a combination's action. Host failures are fatal.
func run(win *window.Window, name, action string, seq []rawinput.KeyboardInput) {
	var err error
	switch action {
	case config.ActionFullScreen:
		err = win.SetFullScreen(!win.IsFullScreen())
	case config.ActionLock:
		err = win.Lock(!win.IsLocked())
	case config.ActionQuit:
		win.RequestClose()
	case config.ActionLog:
		slog.Info("Combination pressed", "name", name, "sequence", seq)
	}
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}
