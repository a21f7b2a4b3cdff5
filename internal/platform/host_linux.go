//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/tinyrange/kvmio/internal/rawinput"
)

const (
	keyPressMask        = 1 << 0
	keyReleaseMask      = 1 << 1
	buttonPressMask     = 1 << 2
	buttonReleaseMask   = 1 << 3
	pointerMotionMask   = 1 << 6
	exposureMask        = 1 << 15
	structureNotifyMask = 1 << 17
	substructureNotify  = 1 << 19
	substructureRedir   = 1 << 20

	keyPress        = 2
	keyRelease      = 3
	buttonPress     = 4
	buttonRelease   = 5
	motionNotify    = 6
	expose          = 12
	destroyNotify   = 17
	configureNotify = 22
	clientMessage   = 33

	mod1Mask = 1 << 3

	grabModeAsync = 1
	grabSuccess   = 0

	zPixmap  = 2
	lsbFirst = 0

	// Reports synthesized from core X events carry these device handles.
	keyboardDevice = 1
	mouseDevice    = 2
)

// xEvent is the XEvent union: 24 longs.
type xEvent [24]uint64

func (e *xEvent) kind() int32 {
	return *(*int32)(unsafe.Pointer(e))
}

// xKeyEvent also describes XButtonEvent and XMotionEvent, whose button and
// is_hint members share the keycode slot.
type xKeyEvent struct {
	Type       int32
	Serial     uint64
	SendEvent  int32
	Display    uintptr
	Window     uintptr
	Root       uintptr
	Subwindow  uintptr
	Time       uint64
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      uint32
	Keycode    uint32
	SameScreen int32
}

type xExposeEvent struct {
	Type      int32
	Serial    uint64
	SendEvent int32
	Display   uintptr
	Window    uintptr
	X, Y      int32
	Width     int32
	Height    int32
	Count     int32
}

type xConfigureEvent struct {
	Type             int32
	Serial           uint64
	SendEvent        int32
	Display          uintptr
	Event            uintptr
	Window           uintptr
	X, Y             int32
	Width            int32
	Height           int32
	BorderWidth      int32
	Above            uintptr
	OverrideRedirect int32
}

type xclientMessage struct {
	Type        int32
	Serial      uint64
	SendEvent   int32
	Display     uintptr
	Window      uintptr
	MessageType uintptr
	Format      int32
	Data        [5]uint64
}

type xImage struct {
	Width          int32
	Height         int32
	XOffset        int32
	Format         int32
	Data           uintptr
	ByteOrder      int32
	BitmapUnit     int32
	BitmapBitOrder int32
	BitmapPad      int32
	Depth          int32
	BytesPerLine   int32
	BitsPerPixel   int32
	_              int32
	RedMask        uint64
	GreenMask      uint64
	BlueMask       uint64
	ObData         uintptr
	Funcs          [6]uintptr
}

type xColor struct {
	Pixel            uint64
	Red, Green, Blue uint16
	Flags            uint8
	Pad              uint8
}

var (
	x11lib uintptr

	xOpenDisplay               func(*byte) uintptr
	xCloseDisplay              func(uintptr) int32
	xDefaultScreen             func(uintptr) int32
	xRootWindow                func(uintptr, int32) uintptr
	xBlackPixel                func(uintptr, int32) uint64
	xDefaultDepth              func(uintptr, int32) int32
	xDefaultGC                 func(uintptr, int32) uintptr
	xDisplayWidth              func(uintptr, int32) int32
	xDisplayHeight             func(uintptr, int32) int32
	xCreateSimpleWindow        func(uintptr, uintptr, int32, int32, uint32, uint32, uint32, uint64, uint64) uintptr
	xDestroyWindow             func(uintptr, uintptr) int32
	xMapWindow                 func(uintptr, uintptr) int32
	xStoreName                 func(uintptr, uintptr, *byte) int32
	xSelectInput               func(uintptr, uintptr, int64) int32
	xInternAtom                func(uintptr, *byte, int32) uintptr
	xSetWMProtocols            func(uintptr, uintptr, *uintptr, int32) int32
	xPending                   func(uintptr) int32
	xNextEvent                 func(uintptr, unsafe.Pointer) int32
	xSendEvent                 func(uintptr, uintptr, int32, int64, unsafe.Pointer) int32
	xFlush                     func(uintptr) int32
	xGetGeometry               func(uintptr, uintptr, *uintptr, *int32, *int32, *uint32, *uint32, *uint32, *uint32) int32
	xTranslateCoordinates      func(uintptr, uintptr, uintptr, int32, int32, *int32, *int32, *uintptr) int32
	xMoveWindow                func(uintptr, uintptr, int32, int32) int32
	xRaiseWindow               func(uintptr, uintptr) int32
	xResizeWindow              func(uintptr, uintptr, uint32, uint32) int32
	xMoveResizeWindow          func(uintptr, uintptr, int32, int32, uint32, uint32) int32
	xClearArea                 func(uintptr, uintptr, int32, int32, uint32, uint32, int32) int32
	xInitImage                 func(*xImage) int32
	xPutImage                  func(uintptr, uintptr, uintptr, *xImage, int32, int32, int32, int32, uint32, uint32) int32
	xGrabPointer               func(uintptr, uintptr, int32, uint32, int32, int32, uintptr, uintptr, uint64) int32
	xUngrabPointer             func(uintptr, uint64) int32
	xWarpPointer               func(uintptr, uintptr, uintptr, int32, int32, uint32, uint32, int32, int32) int32
	xCreateBitmapFromData      func(uintptr, uintptr, *byte, uint32, uint32) uintptr
	xCreatePixmapCursor        func(uintptr, uintptr, uintptr, *xColor, *xColor, uint32, uint32) uintptr
	xFreePixmap                func(uintptr, uintptr) int32
	xDefineCursor              func(uintptr, uintptr, uintptr) int32
	xUndefineCursor            func(uintptr, uintptr) int32
	xkbSetDetectableAutoRepeat func(uintptr, int32, *int32) int32
)

type x11Host struct {
	router  Router
	display uintptr
	window  uintptr
	root    uintptr
	screen  int32

	wmDelete        uintptr
	netWMState      uintptr
	netWMFullscreen uintptr

	width, height int
	blank         uintptr
	confined      bool
	captured      bool
	registered    map[rawinput.DeviceType]bool

	// The report being routed; ReadRawInput serves it by id.
	report   []byte
	reportID uintptr

	pointerX, pointerY int32
	havePointer        bool
}

// Open creates an unmapped window and routes its events to r. The calling
// goroutine is locked to its thread until Destroy.
func Open(r Router, opts Options) (Host, error) {
	runtime.LockOSThread()
	if err := ensureLibs(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	dpy := xOpenDisplay(nil)
	if dpy == 0 {
		runtime.UnlockOSThread()
		return nil, errors.New("XOpenDisplay failed")
	}
	// Held keys then repeat as presses only, matching raw input.
	xkbSetDetectableAutoRepeat(dpy, 1, nil)

	screen := xDefaultScreen(dpy)
	root := xRootWindow(dpy, screen)
	black := xBlackPixel(dpy, screen)
	win := xCreateSimpleWindow(dpy, root, 0, 0, uint32(opts.Width), uint32(opts.Height), 0, black, black)
	if win == 0 {
		xCloseDisplay(dpy)
		runtime.UnlockOSThread()
		return nil, errors.New("XCreateWindow failed")
	}
	xSelectInput(dpy, win, exposureMask|structureNotifyMask|keyPressMask|keyReleaseMask|buttonPressMask|buttonReleaseMask|pointerMotionMask)
	xStoreName(dpy, win, cString(opts.Title))

	h := &x11Host{
		router:          r,
		display:         dpy,
		window:          win,
		root:            root,
		screen:          screen,
		wmDelete:        xInternAtom(dpy, cString("WM_DELETE_WINDOW"), 0),
		netWMState:      xInternAtom(dpy, cString("_NET_WM_STATE"), 0),
		netWMFullscreen: xInternAtom(dpy, cString("_NET_WM_STATE_FULLSCREEN"), 0),
		width:           opts.Width,
		height:          opts.Height,
		registered:      make(map[rawinput.DeviceType]bool),
	}
	xSetWMProtocols(dpy, win, &h.wmDelete, 1)
	return h, nil
}

func (h *x11Host) Handle() Handle {
	return Handle(h.window)
}

func (h *x11Host) Show() error {
	if h.window == 0 {
		return ErrClosed
	}
	xMapWindow(h.display, h.window)
	xFlush(h.display)
	return nil
}

func (h *x11Host) Destroy() error {
	if h.window == 0 {
		return nil
	}
	xDestroyWindow(h.display, h.window)
	xCloseDisplay(h.display)
	h.window, h.display = 0, 0
	runtime.UnlockOSThread()
	return nil
}

func (h *x11Host) Invalidate() error {
	if h.window == 0 {
		return ErrClosed
	}
	// A zero-sized area means the whole window; exposures produce Expose.
	xClearArea(h.display, h.window, 0, 0, 0, 0, 1)
	return nil
}

func (h *x11Host) Pump(block bool) error {
	if h.window == 0 {
		return ErrClosed
	}
	var ev xEvent
	if block {
		xNextEvent(h.display, unsafe.Pointer(&ev))
		h.handle(&ev)
		return nil
	}
	for h.window != 0 && xPending(h.display) > 0 {
		xNextEvent(h.display, unsafe.Pointer(&ev))
		h.handle(&ev)
	}
	return nil
}

func (h *x11Host) route(m Message) bool {
	if h.router == nil {
		return false
	}
	return h.router.Route(h.Handle(), m)
}

func (h *x11Host) handle(ev *xEvent) {
	switch ev.kind() {
	case keyPress, keyRelease:
		h.key((*xKeyEvent)(unsafe.Pointer(ev)), ev.kind() == keyRelease)
	case buttonPress, buttonRelease:
		h.button((*xKeyEvent)(unsafe.Pointer(ev)), ev.kind() == buttonRelease)
	case motionNotify:
		e := (*xKeyEvent)(unsafe.Pointer(ev))
		h.motion(e.X, e.Y)
	case expose:
		if (*xExposeEvent)(unsafe.Pointer(ev)).Count == 0 {
			h.route(Message{Kind: Paint})
		}
	case configureNotify:
		e := (*xConfigureEvent)(unsafe.Pointer(ev))
		if int(e.Width) != h.width || int(e.Height) != h.height {
			h.width, h.height = int(e.Width), int(e.Height)
			h.route(Message{Kind: Resize, Width: h.width, Height: h.height})
		}
	case clientMessage:
		cm := (*xclientMessage)(unsafe.Pointer(ev))
		if cm.Format == 32 && cm.Data[0] == uint64(h.wmDelete) {
			h.route(Message{Kind: Close})
		}
	case destroyNotify:
		h.route(Message{Kind: Close})
	}
}

func (h *x11Host) deliver(report []byte) {
	h.reportID++
	h.report = report
	h.route(Message{Kind: RawInput, Input: h.reportID})
	h.report = nil
}

func (h *x11Host) key(e *xKeyEvent, release bool) {
	if !h.registered[rawinput.DeviceKeyboard] || e.Keycode < 8 {
		return
	}
	sc, ok := rawinput.FromEvdev(uint16(e.Keycode - 8))
	if !ok {
		slog.Debug("Unmapped keycode", "keycode", e.Keycode)
		return
	}
	k := rawinput.RawKeyboard{
		MakeCode: sc.MakeCode,
		Flags:    sc.Flags,
		VKey:     uint16(sc.VirtualKey),
		Message:  rawinput.MsgKeyDown,
	}
	sys := e.State&mod1Mask != 0 || sc.VirtualKey == rawinput.VKF10
	switch {
	case release && sys:
		k.Flags |= rawinput.KeyBreak
		k.Message = rawinput.MsgSysKeyUp
	case release:
		k.Flags |= rawinput.KeyBreak
		k.Message = rawinput.MsgKeyUp
	case sys:
		k.Message = rawinput.MsgSysKeyDown
	}
	h.deliver(rawinput.MarshalKeyboard(keyboardDevice, k))
}

func (h *x11Host) button(e *xKeyEvent, release bool) {
	if !h.registered[rawinput.DeviceMouse] {
		return
	}
	var m rawinput.RawMouse
	pick := func(down, up uint16) {
		if release {
			m.ButtonFlags = up
		} else {
			m.ButtonFlags = down
		}
	}
	wheel := func(flag uint16, notch int16) {
		m.ButtonFlags = flag
		m.ButtonData = uint16(notch * rawinput.WheelDelta)
	}
	switch e.Keycode {
	case 1:
		pick(rawinput.MouseLeftDown, rawinput.MouseLeftUp)
	case 2:
		pick(rawinput.MouseMiddleDown, rawinput.MouseMiddleUp)
	case 3:
		pick(rawinput.MouseRightDown, rawinput.MouseRightUp)
	case 4, 5, 6, 7:
		// Wheel buttons press and release together; the press is the notch.
		if release {
			return
		}
		switch e.Keycode {
		case 4:
			wheel(rawinput.MouseWheel, 1)
		case 5:
			wheel(rawinput.MouseWheel, -1)
		case 6:
			wheel(rawinput.MouseHWheel, -1)
		case 7:
			wheel(rawinput.MouseHWheel, 1)
		}
	case 8:
		pick(rawinput.MouseButton5Down, rawinput.MouseButton5Up)
	case 9:
		pick(rawinput.MouseButton4Down, rawinput.MouseButton4Up)
	default:
		return
	}
	h.deliver(rawinput.MarshalMouse(mouseDevice, m))
}

func (h *x11Host) motion(x, y int32) {
	if !h.havePointer {
		h.pointerX, h.pointerY, h.havePointer = x, y, true
		return
	}
	dx, dy := x-h.pointerX, y-h.pointerY
	h.pointerX, h.pointerY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	if h.confined {
		// Keep the pointer away from the edges so deltas never saturate.
		cx, cy := int32(h.width/2), int32(h.height/2)
		xWarpPointer(h.display, 0, h.window, 0, 0, 0, 0, cx, cy)
		h.pointerX, h.pointerY = cx, cy
	}
	if !h.registered[rawinput.DeviceMouse] {
		return
	}
	h.deliver(rawinput.MarshalMouse(mouseDevice, rawinput.RawMouse{
		Flags: rawinput.MouseMoveRelative,
		LastX: dx,
		LastY: dy,
	}))
}

func (h *x11Host) Move(x, y int) error {
	xMoveWindow(h.display, h.window, int32(x), int32(y))
	return nil
}

func (h *x11Host) Resize(width, height int) error {
	xResizeWindow(h.display, h.window, uint32(width), uint32(height))
	return nil
}

func (h *x11Host) Raise() error {
	if h.window == 0 {
		return ErrClosed
	}
	xRaiseWindow(h.display, h.window)
	return nil
}

func (h *x11Host) geometry() (width, height uint32, err error) {
	var root uintptr
	var x, y int32
	var border, depth uint32
	if xGetGeometry(h.display, h.window, &root, &x, &y, &width, &height, &border, &depth) == 0 {
		return 0, 0, errors.New("XGetGeometry failed")
	}
	return width, height, nil
}

func (h *x11Host) WindowRect() (Rect, error) {
	w, ht, err := h.geometry()
	if err != nil {
		return Rect{}, err
	}
	var x, y int32
	var child uintptr
	if xTranslateCoordinates(h.display, h.window, h.root, 0, 0, &x, &y, &child) == 0 {
		return Rect{}, errors.New("XTranslateCoordinates failed")
	}
	return Rect{Left: x, Top: y, Right: x + int32(w), Bottom: y + int32(ht)}, nil
}

func (h *x11Host) ClientRect() (Rect, error) {
	w, ht, err := h.geometry()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Right: int32(w), Bottom: int32(ht)}, nil
}

func (h *x11Host) screenRect() Rect {
	return Rect{
		Right:  xDisplayWidth(h.display, h.screen),
		Bottom: xDisplayHeight(h.display, h.screen),
	}
}

func (h *x11Host) CursorClip() (Rect, error) {
	if h.confined {
		return h.WindowRect()
	}
	return h.screenRect(), nil
}

func (h *x11Host) grab(confine bool) error {
	var to uintptr
	if confine {
		to = h.window
	}
	status := xGrabPointer(h.display, h.window, 1,
		buttonPressMask|buttonReleaseMask|pointerMotionMask,
		grabModeAsync, grabModeAsync, to, 0, 0)
	if status != grabSuccess {
		return fmt.Errorf("XGrabPointer failed: status %d", status)
	}
	return nil
}

// ClipCursor confines the pointer to the window. X11 grabs cannot confine
// to an arbitrary rectangle: nil or the whole screen releases the pointer,
// anything else confines it to the window.
func (h *x11Host) ClipCursor(r *Rect) error {
	if r == nil || *r == h.screenRect() {
		h.confined = false
		if h.captured {
			return h.grab(false)
		}
		xUngrabPointer(h.display, 0)
		return nil
	}
	if err := h.grab(true); err != nil {
		return err
	}
	h.confined = true
	return nil
}

func (h *x11Host) ShowCursor(show bool) {
	if show {
		xUndefineCursor(h.display, h.window)
		return
	}
	if h.blank == 0 {
		var bits [8]byte
		var black xColor
		pix := xCreateBitmapFromData(h.display, h.window, &bits[0], 8, 8)
		h.blank = xCreatePixmapCursor(h.display, pix, pix, &black, &black, 0, 0)
		xFreePixmap(h.display, pix)
	}
	xDefineCursor(h.display, h.window, h.blank)
}

func (h *x11Host) SetCapture() {
	if h.confined {
		h.captured = true
		return
	}
	if err := h.grab(false); err == nil {
		h.captured = true
	}
}

func (h *x11Host) ReleaseCapture() {
	h.captured = false
	if !h.confined {
		xUngrabPointer(h.display, 0)
	}
}

func (h *x11Host) Placement() (Placement, error) {
	r, err := h.WindowRect()
	if err != nil {
		return Placement{}, err
	}
	return Placement{Bounds: r}, nil
}

func (h *x11Host) setFullScreen(on bool) {
	var ev xEvent
	cm := (*xclientMessage)(unsafe.Pointer(&ev))
	cm.Type = clientMessage
	cm.SendEvent = 1
	cm.Display = h.display
	cm.Window = h.window
	cm.MessageType = h.netWMState
	cm.Format = 32
	if on {
		cm.Data[0] = 1
	}
	cm.Data[1] = uint64(h.netWMFullscreen)
	cm.Data[3] = 1
	xSendEvent(h.display, h.root, 0, substructureRedir|substructureNotify, unsafe.Pointer(&ev))
	xFlush(h.display)
}

func (h *x11Host) EnterFullScreen(Placement) error {
	h.setFullScreen(true)
	return nil
}

func (h *x11Host) RestorePlacement(p Placement) error {
	h.setFullScreen(false)
	r := p.Bounds
	xMoveResizeWindow(h.display, h.window, r.Left, r.Top, uint32(r.Width()), uint32(r.Height()))
	return nil
}

func (h *x11Host) ReadRawInput(input uintptr, buf []byte) (int, error) {
	if h.report == nil || input != h.reportID {
		return 0, fmt.Errorf("ReadRawInput: no pending report %d", input)
	}
	if buf == nil {
		return len(h.report), nil
	}
	if len(buf) < len(h.report) {
		return 0, fmt.Errorf("ReadRawInput: buffer of %d bytes, report needs %d", len(buf), len(h.report))
	}
	return copy(buf, h.report), nil
}

func (h *x11Host) RegisterRawInputDevices(types ...rawinput.DeviceType) error {
	for _, t := range types {
		if t != rawinput.DeviceMouse && t != rawinput.DeviceKeyboard {
			return fmt.Errorf("RegisterRawInputDevices: cannot register %v", t)
		}
		h.registered[t] = true
	}
	return nil
}

// RawInputDevices lists the X server's core pointer and keyboard.
func (h *x11Host) RawInputDevices() ([]Device, error) {
	return []Device{
		{Handle: mouseDevice, Type: rawinput.DeviceMouse},
		{Handle: keyboardDevice, Type: rawinput.DeviceKeyboard},
	}, nil
}

// X11 has no hook chain; input reaches other clients only through grabs.
func (h *x11Host) InstallHook(HookKind, HookFunc) (Hook, error) {
	return 0, ErrUnsupported
}

func (h *x11Host) UninstallHook(Hook) error {
	return ErrUnsupported
}

func (h *x11Host) BeginPaint() error {
	if h.window == 0 {
		return ErrClosed
	}
	return nil
}

func (h *x11Host) Blit(pixels []byte, width, height int) error {
	if len(pixels) == 0 {
		return nil
	}
	img := xImage{
		Width:          int32(width),
		Height:         int32(height),
		Format:         zPixmap,
		Data:           uintptr(unsafe.Pointer(&pixels[0])),
		ByteOrder:      lsbFirst,
		BitmapUnit:     32,
		BitmapBitOrder: lsbFirst,
		BitmapPad:      32,
		Depth:          xDefaultDepth(h.display, h.screen),
		BytesPerLine:   int32(width * 4),
		BitsPerPixel:   32,
		RedMask:        0xFF0000,
		GreenMask:      0x00FF00,
		BlueMask:       0x0000FF,
	}
	if xInitImage(&img) == 0 {
		return errors.New("XInitImage failed")
	}
	xPutImage(h.display, h.window, xDefaultGC(h.display, h.screen), &img, 0, 0, 0, 0, uint32(width), uint32(height))
	runtime.KeepAlive(pixels)
	return nil
}

func (h *x11Host) EndPaint() error {
	xFlush(h.display)
	return nil
}

func ensureLibs() error {
	if x11lib != 0 {
		return nil
	}
	lib, err := purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	x11lib = lib
	registerX11()
	return nil
}

func registerX11() {
	purego.RegisterLibFunc(&xOpenDisplay, x11lib, "XOpenDisplay")
	purego.RegisterLibFunc(&xCloseDisplay, x11lib, "XCloseDisplay")
	purego.RegisterLibFunc(&xDefaultScreen, x11lib, "XDefaultScreen")
	purego.RegisterLibFunc(&xRootWindow, x11lib, "XRootWindow")
	purego.RegisterLibFunc(&xBlackPixel, x11lib, "XBlackPixel")
	purego.RegisterLibFunc(&xDefaultDepth, x11lib, "XDefaultDepth")
	purego.RegisterLibFunc(&xDefaultGC, x11lib, "XDefaultGC")
	purego.RegisterLibFunc(&xDisplayWidth, x11lib, "XDisplayWidth")
	purego.RegisterLibFunc(&xDisplayHeight, x11lib, "XDisplayHeight")
	purego.RegisterLibFunc(&xCreateSimpleWindow, x11lib, "XCreateSimpleWindow")
	purego.RegisterLibFunc(&xDestroyWindow, x11lib, "XDestroyWindow")
	purego.RegisterLibFunc(&xMapWindow, x11lib, "XMapWindow")
	purego.RegisterLibFunc(&xStoreName, x11lib, "XStoreName")
	purego.RegisterLibFunc(&xSelectInput, x11lib, "XSelectInput")
	purego.RegisterLibFunc(&xInternAtom, x11lib, "XInternAtom")
	purego.RegisterLibFunc(&xSetWMProtocols, x11lib, "XSetWMProtocols")
	purego.RegisterLibFunc(&xPending, x11lib, "XPending")
	purego.RegisterLibFunc(&xNextEvent, x11lib, "XNextEvent")
	purego.RegisterLibFunc(&xSendEvent, x11lib, "XSendEvent")
	purego.RegisterLibFunc(&xFlush, x11lib, "XFlush")
	purego.RegisterLibFunc(&xGetGeometry, x11lib, "XGetGeometry")
	purego.RegisterLibFunc(&xTranslateCoordinates, x11lib, "XTranslateCoordinates")
	purego.RegisterLibFunc(&xMoveWindow, x11lib, "XMoveWindow")
	purego.RegisterLibFunc(&xRaiseWindow, x11lib, "XRaiseWindow")
	purego.RegisterLibFunc(&xResizeWindow, x11lib, "XResizeWindow")
	purego.RegisterLibFunc(&xMoveResizeWindow, x11lib, "XMoveResizeWindow")
	purego.RegisterLibFunc(&xClearArea, x11lib, "XClearArea")
	purego.RegisterLibFunc(&xInitImage, x11lib, "XInitImage")
	purego.RegisterLibFunc(&xPutImage, x11lib, "XPutImage")
	purego.RegisterLibFunc(&xGrabPointer, x11lib, "XGrabPointer")
	purego.RegisterLibFunc(&xUngrabPointer, x11lib, "XUngrabPointer")
	purego.RegisterLibFunc(&xWarpPointer, x11lib, "XWarpPointer")
	purego.RegisterLibFunc(&xCreateBitmapFromData, x11lib, "XCreateBitmapFromData")
	purego.RegisterLibFunc(&xCreatePixmapCursor, x11lib, "XCreatePixmapCursor")
	purego.RegisterLibFunc(&xFreePixmap, x11lib, "XFreePixmap")
	purego.RegisterLibFunc(&xDefineCursor, x11lib, "XDefineCursor")
	purego.RegisterLibFunc(&xUndefineCursor, x11lib, "XUndefineCursor")
	purego.RegisterLibFunc(&xkbSetDetectableAutoRepeat, x11lib, "XkbSetDetectableAutoRepeat")
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
