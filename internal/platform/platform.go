// Package platform is the boundary with the native windowing system.
//
// A Host wraps one native window. It delivers Resize, RawInput, Paint and
// Close messages to a Router while pumping, and exposes the handful of
// window, cursor, raw input and blit calls the window shell needs. All
// calls must be made on the goroutine that opened the host.
package platform

import (
	"errors"

	"github.com/tinyrange/kvmio/internal/rawinput"
)

// ErrUnsupported is returned by Open on platforms without a backend, and by
// calls a backend cannot provide.
var ErrUnsupported = errors.New("platform: not supported on this OS")

// ErrClosed is returned when a destroyed host is used.
var ErrClosed = errors.New("platform: window destroyed")

// Handle identifies a native window.
type Handle uintptr

// Rect is a rectangle in screen or client coordinates. Right and Bottom are
// exclusive.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Placement is the window state saved before entering full screen.
type Placement struct {
	Zoomed  bool
	Style   uint32
	ExStyle uint32
	Bounds  Rect
}

// MessageKind classifies host messages.
type MessageKind uint8

const (
	Resize MessageKind = iota
	RawInput
	Paint
	Close
)

func (k MessageKind) String() string {
	switch k {
	case Resize:
		return "resize"
	case RawInput:
		return "raw-input"
	case Paint:
		return "paint"
	case Close:
		return "close"
	}
	return "unknown"
}

// Message is a host message addressed to one window.
type Message struct {
	Kind MessageKind
	// Width and Height are the new client size of a Resize.
	Width, Height int
	// Input is the opaque report handle of a RawInput, passed back to
	// Host.ReadRawInput.
	Input uintptr
}

// Router receives messages while a host pumps. Route reports whether the
// message was handled; unhandled messages get the host's default treatment.
type Router interface {
	Route(h Handle, m Message) bool
}

// Options describe a window to create.
type Options struct {
	Title  string
	Width  int
	Height int
}

// HookKind selects a system hook.
type HookKind uint8

const (
	// KeyboardHook sees keyboard messages bound for the host's thread.
	KeyboardHook HookKind = iota + 1
	// LowLevelKeyboardHook sees keyboard input before any thread does.
	LowLevelKeyboardHook
	MouseHook
	LowLevelMouseHook
)

func (k HookKind) String() string {
	switch k {
	case KeyboardHook:
		return "keyboard"
	case LowLevelKeyboardHook:
		return "low-level-keyboard"
	case MouseHook:
		return "mouse"
	case LowLevelMouseHook:
		return "low-level-mouse"
	}
	return "unknown"
}

// HookFunc receives a hooked event with its hook code and message
// parameters. Returning true swallows the event; otherwise it is passed on.
type HookFunc func(code int, wParam, lParam uintptr) bool

// Hook identifies an installed hook.
type Hook uintptr

// Device is an attached raw input device.
type Device struct {
	Handle uintptr
	Type   rawinput.DeviceType
}

// Host is one native window.
type Host interface {
	Handle() Handle

	Show() error
	Destroy() error
	// Invalidate requests a Paint message.
	Invalidate() error
	// Pump dispatches host messages to the router. With block set it waits
	// for and dispatches a single message; otherwise it drains whatever is
	// queued and returns.
	Pump(block bool) error

	Move(x, y int) error
	Resize(width, height int) error
	// Raise brings the window to the top of the z-order.
	Raise() error
	// WindowRect is the outer frame in screen coordinates.
	WindowRect() (Rect, error)
	// ClientRect is the drawable area in client coordinates.
	ClientRect() (Rect, error)

	CursorClip() (Rect, error)
	// ClipCursor confines the cursor to r, or releases it when r is nil.
	ClipCursor(r *Rect) error
	ShowCursor(show bool)
	SetCapture()
	ReleaseCapture()

	Placement() (Placement, error)
	// EnterFullScreen strips the frame described by p and covers the
	// nearest monitor.
	EnterFullScreen(p Placement) error
	RestorePlacement(p Placement) error

	// ReadRawInput copies the report behind input into buf and returns its
	// length. With a nil buf it only returns the required size.
	ReadRawInput(input uintptr, buf []byte) (int, error)
	RegisterRawInputDevices(types ...rawinput.DeviceType) error
	RawInputDevices() ([]Device, error)

	// InstallHook installs a hook calling fn. Only one hook of each kind
	// may be installed at a time.
	InstallHook(kind HookKind, fn HookFunc) (Hook, error)
	UninstallHook(h Hook) error

	BeginPaint() error
	// Blit draws a top-down 32-bit B, G, R, X image at the client origin.
	Blit(pixels []byte, width, height int) error
	EndPaint() error
}
