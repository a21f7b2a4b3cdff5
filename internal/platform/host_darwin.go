//go:build darwin

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/tinyrange/kvmio/internal/rawinput"
)

// NS geometry mirrors.
type nsPoint struct {
	X float64
	Y float64
}

type nsSize struct {
	W float64
	H float64
}

type nsRect struct {
	Origin nsPoint
	Size   nsSize
}

const (
	nsApplicationActivationPolicyRegular = 0

	nsWindowStyleBorderless  = 0
	nsWindowStyleTitled      = 1 << 0
	nsWindowStyleClosable    = 1 << 1
	nsWindowStyleMiniaturize = 1 << 2
	nsWindowStyleResizable   = 1 << 3

	nsBackingStoreBuffered = 2

	nsEventMaskAny = ^uint(0)

	nsEventLeftMouseDown     = 1
	nsEventLeftMouseUp       = 2
	nsEventRightMouseDown    = 3
	nsEventRightMouseUp      = 4
	nsEventMouseMoved        = 5
	nsEventLeftMouseDragged  = 6
	nsEventRightMouseDragged = 7
	nsEventKeyDown           = 10
	nsEventKeyUp             = 11
	nsEventFlagsChanged      = 12
	nsEventScrollWheel       = 22
	nsEventOtherMouseDown    = 25
	nsEventOtherMouseUp      = 26
	nsEventOtherMouseDragged = 27

	nsModifierCapsLock = 1 << 16
	nsModifierOption   = 1 << 19

	// Little-endian XRGB, which is B, G, R, X in memory.
	cgImageAlphaNoneSkipFirst = 6
	cgBitmapByteOrder32Little = 2 << 12
	cgRenderingIntentDefault  = 0

	keyboardDevice = 1
	mouseDevice    = 2
)

// modifierMasks are the device-dependent modifierFlags bits telling
// whether the left or right modifier of a flagsChanged key is down.
var modifierMasks = map[uint16]uint{
	0x3B: 0x0001, // left control
	0x38: 0x0002, // left shift
	0x3C: 0x0004, // right shift
	0x37: 0x0008, // left command
	0x36: 0x0010, // right command
	0x3A: 0x0020, // left option
	0x3D: 0x0040, // right option
	0x3E: 0x2000, // right control
	0x39: nsModifierCapsLock,
}

var (
	initOnce sync.Once
	initErr  error

	cfRunLoopRunInMode func(uintptr, float64, bool) int32
	cfDefaultMode      uintptr
	cfDataCreate       func(uintptr, *byte, int) uintptr
	cfRelease          func(uintptr)

	cgColorSpaceCreateDeviceRGB            func() uintptr
	cgDataProviderCreateWithCFData         func(uintptr) uintptr
	cgDataProviderRelease                  func(uintptr)
	cgImageCreate                          func(uint, uint, uint, uint, uint, uintptr, uint32, uintptr, uintptr, bool, int32) uintptr
	cgImageRelease                         func(uintptr)
	cgAssociateMouseAndMouseCursorPosition func(int32) int32

	deviceRGB uintptr

	selAlloc                 objc.SEL
	selInit                  objc.SEL
	selRelease               objc.SEL
	selClose                 objc.SEL
	selSharedApplication     objc.SEL
	selNextEventMatchingMask objc.SEL
	selSetActivationPolicy   objc.SEL
	selFinishLaunching       objc.SEL
	selStringWithUTF8String  objc.SEL
	selInitWithContentRect   objc.SEL
	selMakeKeyAndOrderFront  objc.SEL
	selOrderFrontRegardless  objc.SEL
	selSetTitle              objc.SEL
	selSetAcceptsMouseMoved  objc.SEL
	selSetReleasedWhenClosed objc.SEL
	selContentView           objc.SEL
	selBounds                objc.SEL
	selFrame                 objc.SEL
	selSetFrameDisplay       objc.SEL
	selStyleMask             objc.SEL
	selSetStyleMask          objc.SEL
	selIsVisible             objc.SEL
	selIsMiniaturized        objc.SEL
	selSendEvent             objc.SEL
	selDistantFuture         objc.SEL
	selMainScreen            objc.SEL
	selSetWantsLayer         objc.SEL
	selLayer                 objc.SEL
	selSetContents           objc.SEL
	selBegin                 objc.SEL
	selCommit                objc.SEL
	selSetDisableActions     objc.SEL
	selHide                  objc.SEL
	selUnhide                objc.SEL
	selType                  objc.SEL
	selKeyCode               objc.SEL
	selModifierFlags         objc.SEL
	selButtonNumber          objc.SEL
	selDeltaX                objc.SEL
	selDeltaY                objc.SEL
)

type cocoaHost struct {
	router Router
	app    objc.ID
	window objc.ID
	view   objc.ID
	pool   objc.ID

	width, height int
	shown         bool
	closeSent     bool
	// dirty is set by Invalidate; the next pump routes Paint.
	dirty bool

	confined   bool
	registered map[rawinput.DeviceType]bool

	report   []byte
	reportID uintptr
}

// Open creates a hidden window and routes its events to r. The calling
// goroutine is locked to its thread until Destroy.
func Open(r Router, opts Options) (Host, error) {
	runtime.LockOSThread()
	if err := ensureRuntime(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	h := &cocoaHost{
		router:     r,
		width:      opts.Width,
		height:     opts.Height,
		registered: make(map[rawinput.DeviceType]bool),
	}
	if err := h.bootstrapApp(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	if err := h.makeWindow(opts); err != nil {
		h.pool.Send(selRelease)
		runtime.UnlockOSThread()
		return nil, err
	}
	return h, nil
}

func (h *cocoaHost) bootstrapApp() error {
	app := objc.ID(objc.GetClass("NSApplication")).Send(selSharedApplication)
	if app == 0 {
		return errors.New("NSApplication unavailable")
	}
	app.Send(selSetActivationPolicy, nsApplicationActivationPolicyRegular)
	app.Send(selFinishLaunching)

	h.app = app
	h.pool = objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selAlloc).Send(selInit)
	return nil
}

func (h *cocoaHost) makeWindow(opts Options) error {
	frame := nsRect{Size: nsSize{W: float64(opts.Width), H: float64(opts.Height)}}
	style := uint(nsWindowStyleTitled | nsWindowStyleClosable | nsWindowStyleMiniaturize | nsWindowStyleResizable)

	win := objc.ID(objc.GetClass("NSWindow")).Send(selAlloc)
	win = win.Send(selInitWithContentRect, frame, style, uint(nsBackingStoreBuffered), false)
	if win == 0 {
		return errors.New("NSWindow initWithContentRect failed")
	}
	win.Send(selSetAcceptsMouseMoved, true)
	win.Send(selSetReleasedWhenClosed, false)
	win.Send(selSetTitle, nsString(opts.Title))

	view := win.Send(selContentView)
	if view == 0 {
		win.Send(selRelease)
		return errors.New("NSWindow has no content view")
	}
	// Frames are presented as the contents of the view's layer.
	view.Send(selSetWantsLayer, true)

	h.window, h.view = win, view
	return nil
}

func (h *cocoaHost) Handle() Handle {
	return Handle(h.window)
}

func (h *cocoaHost) Show() error {
	if h.window == 0 {
		return ErrClosed
	}
	h.window.Send(selMakeKeyAndOrderFront, objc.ID(0))
	h.shown = true
	return nil
}

func (h *cocoaHost) Destroy() error {
	if h.window == 0 {
		return nil
	}
	if h.confined {
		cgAssociateMouseAndMouseCursorPosition(1)
	}
	h.window.Send(selClose)
	h.window.Send(selRelease)
	h.pool.Send(selRelease)
	h.window, h.view, h.pool = 0, 0, 0
	runtime.UnlockOSThread()
	return nil
}

func (h *cocoaHost) Invalidate() error {
	if h.window == 0 {
		return ErrClosed
	}
	h.dirty = true
	return nil
}

func (h *cocoaHost) Pump(block bool) error {
	if h.window == 0 {
		return ErrClosed
	}
	if block && !h.dirty {
		until := objc.ID(objc.GetClass("NSDate")).Send(selDistantFuture)
		if ev := h.nextEvent(until); ev != 0 {
			h.handle(ev)
		}
	} else {
		cfRunLoopRunInMode(cfDefaultMode, 0, true)
		for h.window != 0 {
			ev := h.nextEvent(0)
			if ev == 0 {
				break
			}
			h.handle(ev)
		}
	}
	if h.window == 0 {
		return nil
	}
	h.poll()
	if h.dirty && h.window != 0 {
		h.dirty = false
		h.route(Message{Kind: Paint})
	}
	return nil
}

func (h *cocoaHost) nextEvent(until objc.ID) objc.ID {
	return objc.Send[objc.ID](h.app, selNextEventMatchingMask, nsEventMaskAny, until, objc.ID(cfDefaultMode), true)
}

// poll reports state Cocoa changes without a Go-visible callback: size
// changes and the window being closed by the user.
func (h *cocoaHost) poll() {
	bounds := objc.Send[nsRect](h.view, selBounds)
	if w, ht := int(bounds.Size.W), int(bounds.Size.H); w != h.width || ht != h.height {
		h.width, h.height = w, ht
		h.route(Message{Kind: Resize, Width: w, Height: ht})
		h.dirty = true
	}
	if h.shown && !h.closeSent && h.window != 0 &&
		!objc.Send[bool](h.window, selIsVisible) && !objc.Send[bool](h.window, selIsMiniaturized) {
		h.closeSent = true
		h.route(Message{Kind: Close})
	}
}

func (h *cocoaHost) route(m Message) bool {
	if h.router == nil {
		return false
	}
	return h.router.Route(h.Handle(), m)
}

func (h *cocoaHost) handle(ev objc.ID) {
	switch kind := objc.Send[uint](ev, selType); kind {
	case nsEventKeyDown, nsEventKeyUp:
		// Not forwarded: the window has no responder and would beep.
		h.key(ev, kind == nsEventKeyUp)
		return
	case nsEventFlagsChanged:
		h.modifier(ev)
	case nsEventLeftMouseDown, nsEventLeftMouseUp,
		nsEventRightMouseDown, nsEventRightMouseUp,
		nsEventOtherMouseDown, nsEventOtherMouseUp:
		h.button(ev, kind)
	case nsEventMouseMoved, nsEventLeftMouseDragged, nsEventRightMouseDragged, nsEventOtherMouseDragged:
		h.motion(ev)
	case nsEventScrollWheel:
		h.wheel(ev)
	}
	h.app.Send(selSendEvent, ev)
}

func (h *cocoaHost) deliver(report []byte) {
	h.reportID++
	h.report = report
	h.route(Message{Kind: RawInput, Input: h.reportID})
	h.report = nil
}

func (h *cocoaHost) key(ev objc.ID, release bool) {
	code := objc.Send[uint16](ev, selKeyCode)
	h.sendKey(code, release, objc.Send[uint](ev, selModifierFlags)&nsModifierOption != 0)
}

// modifier turns a flagsChanged event into the press or release of the
// modifier key it names.
func (h *cocoaHost) modifier(ev objc.ID) {
	code := objc.Send[uint16](ev, selKeyCode)
	mask, ok := modifierMasks[code]
	if !ok {
		return
	}
	flags := objc.Send[uint](ev, selModifierFlags)
	h.sendKey(code, flags&mask == 0, flags&nsModifierOption != 0)
}

func (h *cocoaHost) sendKey(code uint16, release, option bool) {
	if !h.registered[rawinput.DeviceKeyboard] {
		return
	}
	sc, ok := rawinput.FromMacKeyCode(code)
	if !ok {
		slog.Debug("Unmapped key code", "keycode", code)
		return
	}
	k := rawinput.RawKeyboard{
		MakeCode: sc.MakeCode,
		Flags:    sc.Flags,
		VKey:     uint16(sc.VirtualKey),
		Message:  rawinput.MsgKeyDown,
	}
	sys := option || sc.VirtualKey == rawinput.VKF10
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

func (h *cocoaHost) button(ev objc.ID, kind uint) {
	if !h.registered[rawinput.DeviceMouse] {
		return
	}
	var m rawinput.RawMouse
	switch kind {
	case nsEventLeftMouseDown:
		m.ButtonFlags = rawinput.MouseLeftDown
	case nsEventLeftMouseUp:
		m.ButtonFlags = rawinput.MouseLeftUp
	case nsEventRightMouseDown:
		m.ButtonFlags = rawinput.MouseRightDown
	case nsEventRightMouseUp:
		m.ButtonFlags = rawinput.MouseRightUp
	default:
		down := kind == nsEventOtherMouseDown
		switch objc.Send[int](ev, selButtonNumber) {
		case 2:
			m.ButtonFlags = pick(down, rawinput.MouseMiddleDown, rawinput.MouseMiddleUp)
		case 3:
			m.ButtonFlags = pick(down, rawinput.MouseButton4Down, rawinput.MouseButton4Up)
		case 4:
			m.ButtonFlags = pick(down, rawinput.MouseButton5Down, rawinput.MouseButton5Up)
		default:
			return
		}
	}
	h.deliver(rawinput.MarshalMouse(mouseDevice, m))
}

func pick(down bool, downFlag, upFlag uint16) uint16 {
	if down {
		return downFlag
	}
	return upFlag
}

// motion reports the event's device delta, which Cocoa keeps delivering
// while the cursor is detached from the mouse.
func (h *cocoaHost) motion(ev objc.ID) {
	if !h.registered[rawinput.DeviceMouse] {
		return
	}
	dx := int32(objc.Send[float64](ev, selDeltaX))
	dy := int32(objc.Send[float64](ev, selDeltaY))
	if dx == 0 && dy == 0 {
		return
	}
	h.deliver(rawinput.MarshalMouse(mouseDevice, rawinput.RawMouse{
		Flags: rawinput.MouseMoveRelative,
		LastX: dx,
		LastY: dy,
	}))
}

// wheel scales line deltas to wheel units; trackpads yield fractions of a
// notch, like high resolution wheels do.
func (h *cocoaHost) wheel(ev objc.ID) {
	if !h.registered[rawinput.DeviceMouse] {
		return
	}
	if dy := objc.Send[float64](ev, selDeltaY); dy != 0 {
		h.deliver(rawinput.MarshalMouse(mouseDevice, rawinput.RawMouse{
			ButtonFlags: rawinput.MouseWheel,
			ButtonData:  uint16(int16(dy * rawinput.WheelDelta)),
		}))
	}
	// Positive deltaX scrolls left.
	if dx := objc.Send[float64](ev, selDeltaX); dx != 0 {
		h.deliver(rawinput.MarshalMouse(mouseDevice, rawinput.RawMouse{
			ButtonFlags: rawinput.MouseHWheel,
			ButtonData:  uint16(int16(-dx * rawinput.WheelDelta)),
		}))
	}
}

func (h *cocoaHost) screenFrame() nsRect {
	screen := objc.ID(objc.GetClass("NSScreen")).Send(selMainScreen)
	return objc.Send[nsRect](screen, selFrame)
}

// Cocoa screen coordinates grow upwards from the bottom of the main screen.
func (h *cocoaHost) toRect(f nsRect) Rect {
	top := h.screenFrame().Size.H - f.Origin.Y - f.Size.H
	return Rect{
		Left:   int32(f.Origin.X),
		Top:    int32(top),
		Right:  int32(f.Origin.X + f.Size.W),
		Bottom: int32(top + f.Size.H),
	}
}

func (h *cocoaHost) fromRect(r Rect) nsRect {
	bottom := h.screenFrame().Size.H - float64(r.Bottom)
	return nsRect{
		Origin: nsPoint{X: float64(r.Left), Y: bottom},
		Size:   nsSize{W: float64(r.Width()), H: float64(r.Height())},
	}
}

func (h *cocoaHost) setFrame(r Rect) {
	h.window.Send(selSetFrameDisplay, h.fromRect(r), true)
	h.poll()
}

func (h *cocoaHost) Move(x, y int) error {
	r, err := h.WindowRect()
	if err != nil {
		return err
	}
	h.setFrame(Rect{Left: int32(x), Top: int32(y), Right: int32(x) + r.Width(), Bottom: int32(y) + r.Height()})
	return nil
}

func (h *cocoaHost) Resize(width, height int) error {
	r, err := h.WindowRect()
	if err != nil {
		return err
	}
	h.setFrame(Rect{Left: r.Left, Top: r.Top, Right: r.Left + int32(width), Bottom: r.Top + int32(height)})
	return nil
}

// Raise orders a visible window to the front. A hidden one comes to the
// front when shown.
func (h *cocoaHost) Raise() error {
	if h.window == 0 {
		return ErrClosed
	}
	if h.shown {
		h.window.Send(selOrderFrontRegardless)
	}
	return nil
}

func (h *cocoaHost) WindowRect() (Rect, error) {
	if h.window == 0 {
		return Rect{}, ErrClosed
	}
	return h.toRect(objc.Send[nsRect](h.window, selFrame)), nil
}

func (h *cocoaHost) ClientRect() (Rect, error) {
	if h.view == 0 {
		return Rect{}, ErrClosed
	}
	b := objc.Send[nsRect](h.view, selBounds)
	return Rect{Right: int32(b.Size.W), Bottom: int32(b.Size.H)}, nil
}

func (h *cocoaHost) CursorClip() (Rect, error) {
	if h.confined {
		return h.WindowRect()
	}
	return h.toRect(h.screenFrame()), nil
}

// ClipCursor cannot confine to a rectangle on macOS. Any clip other than
// the whole screen detaches the cursor from the mouse, which keeps it
// still while motion deltas continue to arrive.
func (h *cocoaHost) ClipCursor(r *Rect) error {
	confine := r != nil && *r != h.toRect(h.screenFrame())
	var associate int32
	if !confine {
		associate = 1
	}
	if status := cgAssociateMouseAndMouseCursorPosition(associate); status != 0 {
		return fmt.Errorf("CGAssociateMouseAndMouseCursorPosition failed: error %d", status)
	}
	h.confined = confine
	return nil
}

func (h *cocoaHost) ShowCursor(show bool) {
	cursor := objc.ID(objc.GetClass("NSCursor"))
	if show {
		cursor.Send(selUnhide)
	} else {
		cursor.Send(selHide)
	}
}

// Cocoa routes dragged events to the window the drag began in, so there
// is no capture to take.
func (h *cocoaHost) SetCapture()     {}
func (h *cocoaHost) ReleaseCapture() {}

func (h *cocoaHost) Placement() (Placement, error) {
	r, err := h.WindowRect()
	if err != nil {
		return Placement{}, err
	}
	return Placement{
		Style:  uint32(objc.Send[uint](h.window, selStyleMask)),
		Bounds: r,
	}, nil
}

func (h *cocoaHost) EnterFullScreen(Placement) error {
	h.window.Send(selSetStyleMask, uint(nsWindowStyleBorderless))
	h.setFrame(h.toRect(h.screenFrame()))
	return nil
}

func (h *cocoaHost) RestorePlacement(p Placement) error {
	h.window.Send(selSetStyleMask, uint(p.Style))
	h.setFrame(p.Bounds)
	return nil
}

func (h *cocoaHost) ReadRawInput(input uintptr, buf []byte) (int, error) {
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

func (h *cocoaHost) RegisterRawInputDevices(types ...rawinput.DeviceType) error {
	for _, t := range types {
		if t != rawinput.DeviceMouse && t != rawinput.DeviceKeyboard {
			return fmt.Errorf("RegisterRawInputDevices: cannot register %v", t)
		}
		h.registered[t] = true
	}
	return nil
}

// RawInputDevices lists the system keyboard and pointer.
func (h *cocoaHost) RawInputDevices() ([]Device, error) {
	return []Device{
		{Handle: mouseDevice, Type: rawinput.DeviceMouse},
		{Handle: keyboardDevice, Type: rawinput.DeviceKeyboard},
	}, nil
}

// Event taps are the closest macOS analogue to hooks and need the
// accessibility permission; they are not offered.
func (h *cocoaHost) InstallHook(HookKind, HookFunc) (Hook, error) {
	return 0, ErrUnsupported
}

func (h *cocoaHost) UninstallHook(Hook) error {
	return ErrUnsupported
}

func (h *cocoaHost) BeginPaint() error {
	if h.window == 0 {
		return ErrClosed
	}
	return nil
}

func (h *cocoaHost) Blit(pixels []byte, width, height int) error {
	if len(pixels) == 0 {
		return nil
	}
	data := cfDataCreate(0, &pixels[0], len(pixels))
	if data == 0 {
		return errors.New("CFDataCreate failed")
	}
	defer cfRelease(data)
	provider := cgDataProviderCreateWithCFData(data)
	if provider == 0 {
		return errors.New("CGDataProviderCreateWithCFData failed")
	}
	defer cgDataProviderRelease(provider)
	img := cgImageCreate(uint(width), uint(height), 8, 32, uint(width*4), deviceRGB,
		cgImageAlphaNoneSkipFirst|cgBitmapByteOrder32Little, provider, 0, false, cgRenderingIntentDefault)
	if img == 0 {
		return errors.New("CGImageCreate failed")
	}
	defer cgImageRelease(img)

	tx := objc.ID(objc.GetClass("CATransaction"))
	tx.Send(selBegin)
	tx.Send(selSetDisableActions, true)
	h.view.Send(selLayer).Send(selSetContents, objc.ID(img))
	tx.Send(selCommit)
	return nil
}

func (h *cocoaHost) EndPaint() error {
	return nil
}

func ensureRuntime() error {
	initOnce.Do(func() {
		if err := loadLibs(); err != nil {
			initErr = err
			return
		}
		loadSelectors()
		deviceRGB = cgColorSpaceCreateDeviceRGB()
	})
	return initErr
}

func loadLibs() error {
	if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
		return err
	}
	if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
		return err
	}
	if _, err := purego.Dlopen("/System/Library/Frameworks/QuartzCore.framework/QuartzCore", purego.RTLD_GLOBAL); err != nil {
		return err
	}
	cf, err := purego.Dlopen("/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation", purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	cg, err := purego.Dlopen("/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics", purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&cfRunLoopRunInMode, cf, "CFRunLoopRunInMode")
	purego.RegisterLibFunc(&cfDataCreate, cf, "CFDataCreate")
	purego.RegisterLibFunc(&cfRelease, cf, "CFRelease")
	ptr, err := purego.Dlsym(cf, "kCFRunLoopDefaultMode")
	if err != nil {
		return err
	}
	// Dlsym returns the address of the CFStringRef variable.
	cfDefaultMode = *(*uintptr)(unsafe.Pointer(ptr))

	purego.RegisterLibFunc(&cgColorSpaceCreateDeviceRGB, cg, "CGColorSpaceCreateDeviceRGB")
	purego.RegisterLibFunc(&cgDataProviderCreateWithCFData, cg, "CGDataProviderCreateWithCFData")
	purego.RegisterLibFunc(&cgDataProviderRelease, cg, "CGDataProviderRelease")
	purego.RegisterLibFunc(&cgImageCreate, cg, "CGImageCreate")
	purego.RegisterLibFunc(&cgImageRelease, cg, "CGImageRelease")
	purego.RegisterLibFunc(&cgAssociateMouseAndMouseCursorPosition, cg, "CGAssociateMouseAndMouseCursorPosition")
	return nil
}

func loadSelectors() {
	selAlloc = objc.RegisterName("alloc")
	selInit = objc.RegisterName("init")
	selRelease = objc.RegisterName("release")
	selClose = objc.RegisterName("close")
	selSharedApplication = objc.RegisterName("sharedApplication")
	selNextEventMatchingMask = objc.RegisterName("nextEventMatchingMask:untilDate:inMode:dequeue:")
	selSetActivationPolicy = objc.RegisterName("setActivationPolicy:")
	selFinishLaunching = objc.RegisterName("finishLaunching")
	selStringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
	selInitWithContentRect = objc.RegisterName("initWithContentRect:styleMask:backing:defer:")
	selMakeKeyAndOrderFront = objc.RegisterName("makeKeyAndOrderFront:")
	selOrderFrontRegardless = objc.RegisterName("orderFrontRegardless")
	selSetTitle = objc.RegisterName("setTitle:")
	selSetAcceptsMouseMoved = objc.RegisterName("setAcceptsMouseMovedEvents:")
	selSetReleasedWhenClosed = objc.RegisterName("setReleasedWhenClosed:")
	selContentView = objc.RegisterName("contentView")
	selBounds = objc.RegisterName("bounds")
	selFrame = objc.RegisterName("frame")
	selSetFrameDisplay = objc.RegisterName("setFrame:display:")
	selStyleMask = objc.RegisterName("styleMask")
	selSetStyleMask = objc.RegisterName("setStyleMask:")
	selIsVisible = objc.RegisterName("isVisible")
	selIsMiniaturized = objc.RegisterName("isMiniaturized")
	selSendEvent = objc.RegisterName("sendEvent:")
	selDistantFuture = objc.RegisterName("distantFuture")
	selMainScreen = objc.RegisterName("mainScreen")
	selSetWantsLayer = objc.RegisterName("setWantsLayer:")
	selLayer = objc.RegisterName("layer")
	selSetContents = objc.RegisterName("setContents:")
	selBegin = objc.RegisterName("begin")
	selCommit = objc.RegisterName("commit")
	selSetDisableActions = objc.RegisterName("setDisableActions:")
	selHide = objc.RegisterName("hide")
	selUnhide = objc.RegisterName("unhide")
	selType = objc.RegisterName("type")
	selKeyCode = objc.RegisterName("keyCode")
	selModifierFlags = objc.RegisterName("modifierFlags")
	selButtonNumber = objc.RegisterName("buttonNumber")
	selDeltaX = objc.RegisterName("deltaX")
	selDeltaY = objc.RegisterName("deltaY")
}

func nsString(v string) objc.ID {
	return objc.ID(objc.GetClass("NSString")).Send(selStringWithUTF8String, v+"\x00")
}
