// Package window is the client's window shell: it owns one native window,
// runs its event loop, decodes raw input, recognizes key combinations and
// presents produced frames.
//
// A Window and everything reachable from it belong to the goroutine that
// opened it. Subscriber callbacks and the paint producer run synchronously
// on that goroutine while messages are dispatched.
package window

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/tinyrange/kvmio/internal/assert"
	"github.com/tinyrange/kvmio/internal/event"
	"github.com/tinyrange/kvmio/internal/frame"
	"github.com/tinyrange/kvmio/internal/keycomb"
	"github.com/tinyrange/kvmio/internal/platform"
	"github.com/tinyrange/kvmio/internal/rawinput"
	"github.com/tinyrange/kvmio/internal/surface"
)

// bitsPerPixel of the presented surface.
const bitsPerPixel = 32

type Window struct {
	reg  *Registry
	host platform.Host
	log  *slog.Logger

	width, height             int
	clientWidth, clientHeight int

	surface *surface.Surface
	paint   func() ([]byte, error)
	// source is the frame source paint converts from, if any.
	source func() []byte
	format frame.Format
	// scratch holds raw input reports. It grows to the largest report seen
	// and never shrinks.
	scratch []byte

	// saved exists only while full screen.
	saved     *platform.Placement
	savedClip platform.Rect
	locked    bool

	closed bool
	err    error

	hooks []platform.Hook

	keys     *keycomb.Tracker
	combos   keycomb.Matcher
	mouse    event.Event[rawinput.MouseInput]
	keyboard event.Event[rawinput.KeyboardInput]

	now func() time.Time
}

func newWindow(r *Registry, host platform.Host, opts Options) (*Window, error) {
	s, err := surface.New(opts.Width, opts.Height, bitsPerPixel)
	if err != nil {
		return nil, err
	}
	return &Window{
		reg:     r,
		host:    host,
		log:     r.log,
		surface: s,
		format:  frame.NV12,
		keys:    keycomb.NewTracker(),
		now:     time.Now,
	}, nil
}

func (w *Window) init(opts Options) error {
	if err := w.SetSize(opts.Width, opts.Height); err != nil {
		return err
	}
	if err := w.SetPosition(0, 0); err != nil {
		return err
	}
	if err := w.host.Raise(); err != nil {
		return fmt.Errorf("raise window: %w", err)
	}
	if err := w.refreshSize(); err != nil {
		return err
	}
	clip, err := w.host.CursorClip()
	if err != nil {
		return fmt.Errorf("get cursor clip: %w", err)
	}
	w.savedClip = clip
	if err := w.host.RegisterRawInputDevices(inputDevices...); err != nil {
		return fmt.Errorf("register raw input devices: %w", err)
	}
	return nil
}

func (w *Window) refreshSize() error {
	wr, err := w.host.WindowRect()
	if err != nil {
		return fmt.Errorf("get window rect: %w", err)
	}
	cr, err := w.host.ClientRect()
	if err != nil {
		return fmt.Errorf("get client rect: %w", err)
	}
	w.width, w.height = int(wr.Width()), int(wr.Height())
	w.clientWidth, w.clientHeight = int(cr.Width()), int(cr.Height())
	return nil
}

// Handle returns the native window handle.
func (w *Window) Handle() platform.Handle {
	return w.host.Handle()
}

func (w *Window) Show() error {
	if err := w.host.Show(); err != nil {
		return fmt.Errorf("show window: %w", err)
	}
	return nil
}

// Close releases the cursor, destroys the native window and drops every
// subscription. Closing twice is a no-op.
func (w *Window) Close() error {
	if w.host == nil {
		return nil
	}
	var err error
	if w.locked {
		err = w.Lock(false)
	}
	for len(w.hooks) > 0 {
		if herr := w.UninstallHook(w.hooks[0]); herr != nil && err == nil {
			err = herr
		}
	}
	h := w.host.Handle()
	if derr := w.host.Destroy(); derr != nil && err == nil {
		err = fmt.Errorf("destroy window: %w", derr)
	}
	w.reg.remove(h)
	w.host = nil
	w.closed = true
	w.combos.Clear()
	w.mouse.Clear()
	w.keyboard.Clear()
	w.keys.Reset()
	return err
}

// RequestClose makes the running loop return after the current message,
// as if the user had closed the window.
func (w *Window) RequestClose() {
	w.closed = true
}

// Closed reports whether a close was requested or the window was closed.
func (w *Window) Closed() bool {
	return w.closed
}

// Err returns the host failure that stopped the event loop, if any.
func (w *Window) Err() error {
	return w.err
}

// fail records the first host failure seen during dispatch. The loop stops
// once it is set.
func (w *Window) fail(err error) {
	if w.err == nil {
		w.err = err
		w.log.Error("Window failed", "error", err)
	}
}

// SetPaintFunc sets the producer called on every paint. It must return
// exactly Surface().BufferSize() bytes in the surface layout. A nil fn
// stops presenting; the window keeps whatever was last drawn.
func (w *Window) SetPaintFunc(fn func() []byte) {
	w.source = nil
	if fn == nil {
		w.paint = nil
		return
	}
	w.paint = func() ([]byte, error) { return fn(), nil }
}

// SetFrameSource sets a producer of frames in the window's frame format.
// Frames are converted to the surface layout before presentation; a frame
// that does not convert stops the event loop with the conversion error.
func (w *Window) SetFrameSource(next func() []byte) {
	w.source = next
	w.convertSource()
}

// SetFrameFormat sets the format of frames from the frame source, including
// one already set.
func (w *Window) SetFrameFormat(f frame.Format) {
	w.format = f
	if w.source != nil {
		w.convertSource()
	}
}

func (w *Window) convertSource() {
	if w.source == nil {
		w.paint = nil
		return
	}
	width, height := w.surface.Size()
	w.paint = frame.Producer(w.format, width, height, w.source)
}

func (w *Window) FrameFormat() frame.Format {
	return w.format
}

// Surface returns the off-screen buffer presented on paint.
func (w *Window) Surface() *surface.Surface {
	return w.surface
}

// Invalidate requests a paint.
func (w *Window) Invalidate() error {
	if err := w.host.Invalidate(); err != nil {
		return fmt.Errorf("invalidate window: %w", err)
	}
	return nil
}

// OnMouse subscribes fn to every decoded mouse report.
func (w *Window) OnMouse(fn func(rawinput.MouseInput)) event.ID {
	return w.mouse.Subscribe(fn)
}

// OnKeyboard subscribes fn to every decoded key transition, repeats
// included.
func (w *Window) OnKeyboard(fn func(rawinput.KeyboardInput)) event.ID {
	return w.keyboard.Subscribe(fn)
}

func (w *Window) UnsubscribeMouse(id event.ID) bool {
	return w.mouse.Unsubscribe(id)
}

func (w *Window) UnsubscribeKeyboard(id event.ID) bool {
	return w.keyboard.Unsubscribe(id)
}

// Combination registers an ordered key combination. Subscribers of the
// returned combination receive the pressed sequence each time it forms.
// Earlier registrations win when several match.
func (w *Window) Combination(keys ...rawinput.VirtualKey) *keycomb.Combination {
	return w.combos.Register(keys...)
}

// InstallHook installs a system hook of kind ahead of the window's own
// input handling. fn returns true to swallow an event. Hooks still
// installed are removed on Close.
func (w *Window) InstallHook(kind platform.HookKind, fn platform.HookFunc) (platform.Hook, error) {
	if !assert.That(fn != nil, "nil %v hook function", kind) {
		return 0, fmt.Errorf("install %v hook: nil function", kind)
	}
	h, err := w.host.InstallHook(kind, fn)
	if err != nil {
		return 0, fmt.Errorf("install %v hook: %w", kind, err)
	}
	w.hooks = append(w.hooks, h)
	w.log.Debug("Hook installed", "kind", kind, "hook", h)
	return h, nil
}

// UninstallHook removes a hook installed with InstallHook.
func (w *Window) UninstallHook(h platform.Hook) error {
	i := slices.Index(w.hooks, h)
	if !assert.That(i >= 0, "hook %#x is not installed", uintptr(h)) {
		return fmt.Errorf("uninstall hook %#x: not installed", uintptr(h))
	}
	w.hooks = slices.Delete(w.hooks, i, i+1)
	if err := w.host.UninstallHook(h); err != nil {
		return fmt.Errorf("uninstall hook: %w", err)
	}
	return nil
}

// Devices lists attached raw input devices.
func (w *Window) Devices() ([]platform.Device, error) {
	devs, err := w.host.RawInputDevices()
	if err != nil {
		return nil, fmt.Errorf("list raw input devices: %w", err)
	}
	return devs, nil
}
