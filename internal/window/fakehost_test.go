package window

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/tinyrange/kvmio/internal/platform"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

var errWouldBlock = errors.New("fake host: blocking pump on an empty queue")

// fakeHost is an in-memory platform.Host. Messages queued with post are
// routed by Pump; Resize and Move route synchronously like a real window.
type fakeHost struct {
	router platform.Router
	handle platform.Handle

	bounds    platform.Rect
	screen    platform.Rect
	clip      platform.Rect
	clips     []platform.Rect
	cursorOn  bool
	captured  bool
	placement platform.Placement
	full      bool
	restored  []platform.Placement

	queue   []platform.Message
	reports map[uintptr][]byte
	nextID  uintptr
	readErr error

	registered  []rawinput.DeviceType
	blits       [][]byte
	begins      int
	ends        int
	invalidates int
	pumps       int
	raises      int
	destroyed   bool
	destroyErr  error

	hooks    map[platform.Hook]platform.HookKind
	hookFns  map[platform.HookKind]platform.HookFunc
	nextHook platform.Hook
}

func newFakeHost() *fakeHost {
	screen := platform.Rect{Right: 1920, Bottom: 1080}
	return &fakeHost{
		handle:   0x1234,
		screen:   screen,
		clip:     screen,
		cursorOn: true,
		reports:  make(map[uintptr][]byte),
		hooks:    make(map[platform.Hook]platform.HookKind),
		hookFns:  make(map[platform.HookKind]platform.HookFunc),
		placement: platform.Placement{
			Style:   0x00CF0000,
			ExStyle: 0x100,
		},
	}
}

func (f *fakeHost) open(r platform.Router, opts platform.Options) (platform.Host, error) {
	f.router = r
	f.bounds = platform.Rect{Left: 100, Top: 50, Right: 100 + int32(opts.Width), Bottom: 50 + int32(opts.Height)}
	return f, nil
}

func (f *fakeHost) route(m platform.Message) bool {
	return f.router.Route(f.handle, m)
}

func (f *fakeHost) post(m platform.Message) {
	f.queue = append(f.queue, m)
}

// postReport queues a RawInput message carrying report.
func (f *fakeHost) postReport(report []byte) {
	f.nextID++
	f.reports[f.nextID] = report
	f.post(platform.Message{Kind: platform.RawInput, Input: f.nextID})
}

func (f *fakeHost) Handle() platform.Handle { return f.handle }
func (f *fakeHost) Show() error             { return nil }

func (f *fakeHost) Destroy() error {
	f.destroyed = true
	return f.destroyErr
}

func (f *fakeHost) Invalidate() error {
	f.invalidates++
	f.post(platform.Message{Kind: platform.Paint})
	return nil
}

func (f *fakeHost) Pump(block bool) error {
	f.pumps++
	if block && len(f.queue) == 0 {
		return errWouldBlock
	}
	for len(f.queue) > 0 {
		m := f.queue[0]
		f.queue = f.queue[1:]
		f.route(m)
		if block {
			break
		}
	}
	return nil
}

func (f *fakeHost) Move(x, y int) error {
	w, h := f.bounds.Width(), f.bounds.Height()
	f.bounds = platform.Rect{Left: int32(x), Top: int32(y), Right: int32(x) + w, Bottom: int32(y) + h}
	return nil
}

func (f *fakeHost) Resize(width, height int) error {
	f.bounds.Right = f.bounds.Left + int32(width)
	f.bounds.Bottom = f.bounds.Top + int32(height)
	f.route(platform.Message{Kind: platform.Resize, Width: width, Height: height})
	return nil
}

func (f *fakeHost) Raise() error {
	f.raises++
	return nil
}

func (f *fakeHost) WindowRect() (platform.Rect, error) { return f.bounds, nil }

// ClientRect leaves out an 8 pixel border and a 24 pixel caption.
func (f *fakeHost) ClientRect() (platform.Rect, error) {
	return platform.Rect{Right: f.bounds.Width() - 16, Bottom: f.bounds.Height() - 32}, nil
}

func (f *fakeHost) CursorClip() (platform.Rect, error) { return f.clip, nil }

func (f *fakeHost) ClipCursor(r *platform.Rect) error {
	if r == nil {
		f.clip = f.screen
	} else {
		f.clip = *r
	}
	f.clips = append(f.clips, f.clip)
	return nil
}

func (f *fakeHost) ShowCursor(show bool) { f.cursorOn = show }
func (f *fakeHost) SetCapture()          { f.captured = true }
func (f *fakeHost) ReleaseCapture()      { f.captured = false }

func (f *fakeHost) Placement() (platform.Placement, error) {
	p := f.placement
	p.Bounds = f.bounds
	return p, nil
}

func (f *fakeHost) EnterFullScreen(platform.Placement) error {
	f.full = true
	return f.Resize(int(f.screen.Width()), int(f.screen.Height()))
}

func (f *fakeHost) RestorePlacement(p platform.Placement) error {
	f.full = false
	f.restored = append(f.restored, p)
	if err := f.Move(int(p.Bounds.Left), int(p.Bounds.Top)); err != nil {
		return err
	}
	return f.Resize(int(p.Bounds.Width()), int(p.Bounds.Height()))
}

func (f *fakeHost) ReadRawInput(input uintptr, buf []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	r, ok := f.reports[input]
	if !ok {
		return 0, errors.New("fake host: no such report")
	}
	if buf == nil {
		return len(r), nil
	}
	return copy(buf, r), nil
}

func (f *fakeHost) RegisterRawInputDevices(types ...rawinput.DeviceType) error {
	f.registered = append(f.registered, types...)
	return nil
}

func (f *fakeHost) RawInputDevices() ([]platform.Device, error) {
	return []platform.Device{{Handle: 7, Type: rawinput.DeviceKeyboard}}, nil
}

func (f *fakeHost) InstallHook(kind platform.HookKind, fn platform.HookFunc) (platform.Hook, error) {
	if _, ok := f.hookFns[kind]; ok {
		return 0, errors.New("fake host: hook kind already installed")
	}
	f.nextHook++
	f.hooks[f.nextHook] = kind
	f.hookFns[kind] = fn
	return f.nextHook, nil
}

func (f *fakeHost) UninstallHook(h platform.Hook) error {
	kind, ok := f.hooks[h]
	if !ok {
		return errors.New("fake host: no such hook")
	}
	delete(f.hooks, h)
	delete(f.hookFns, kind)
	return nil
}

// hook feeds an event to the installed hook of kind and reports whether
// it was swallowed.
func (f *fakeHost) hook(kind platform.HookKind, code int, wParam, lParam uintptr) bool {
	fn, ok := f.hookFns[kind]
	return ok && fn(code, wParam, lParam)
}

func (f *fakeHost) BeginPaint() error {
	f.begins++
	return nil
}

func (f *fakeHost) Blit(pixels []byte, width, height int) error {
	f.blits = append(f.blits, append([]byte(nil), pixels...))
	return nil
}

func (f *fakeHost) EndPaint() error {
	f.ends++
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openFake opens a width x height window on a fake host.
func openFake(t *testing.T, width, height int) (*Window, *fakeHost) {
	t.Helper()
	f := newFakeHost()
	reg := NewRegistry(f.open, discardLogger())
	w, err := reg.Open(Options{Title: "test", Width: width, Height: height})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return w, f
}

func keyReport(vk rawinput.VirtualKey, makeCode uint16, release bool) []byte {
	k := rawinput.RawKeyboard{MakeCode: makeCode, VKey: uint16(vk), Message: rawinput.MsgKeyDown}
	if release {
		k.Flags = rawinput.KeyBreak
		k.Message = rawinput.MsgKeyUp
	}
	return rawinput.MarshalKeyboard(1, k)
}
