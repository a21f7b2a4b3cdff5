package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tinyrange/kvmio/internal/platform"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

// Opener creates the native window behind a Window.
type Opener func(platform.Router, platform.Options) (platform.Host, error)

// Registry maps native handles back to their windows so host messages can
// be routed. It refers to windows; closing a window removes it.
type Registry struct {
	open    Opener
	log     *slog.Logger
	windows map[platform.Handle]*Window
}

// NewRegistry returns a registry creating windows with open. A nil open
// uses the platform backend; a nil log uses slog.Default.
func NewRegistry(open Opener, log *slog.Logger) *Registry {
	if open == nil {
		open = platform.Open
	}
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		open:    open,
		log:     log,
		windows: make(map[platform.Handle]*Window),
	}
}

// Options configure a new window.
type Options struct {
	Title  string
	Width  int
	Height int
}

// Open creates a hidden window of the requested size at the screen origin,
// with mouse and keyboard raw input registered.
func (r *Registry) Open(opts Options) (*Window, error) {
	host, err := r.open(r, platform.Options{Title: opts.Title, Width: opts.Width, Height: opts.Height})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w, err := newWindow(r, host, opts)
	if err != nil {
		if derr := host.Destroy(); derr != nil {
			err = errors.Join(err, fmt.Errorf("destroy window: %w", derr))
		}
		return nil, err
	}
	r.windows[host.Handle()] = w

	if err := w.init(opts); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Route delivers m to the window owning h. Messages for unknown handles,
// such as those sent while a window is still being created, are not
// handled.
func (r *Registry) Route(h platform.Handle, m platform.Message) bool {
	w, ok := r.windows[h]
	if !ok {
		return false
	}
	return w.handle(m)
}

// Lookup returns the window owning h.
func (r *Registry) Lookup(h platform.Handle) (*Window, bool) {
	w, ok := r.windows[h]
	return w, ok
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

func (r *Registry) remove(h platform.Handle) {
	delete(r.windows, h)
}

// inputDevices are registered for every window.
var inputDevices = []rawinput.DeviceType{rawinput.DeviceMouse, rawinput.DeviceKeyboard}
