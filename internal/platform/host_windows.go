//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tinyrange/kvmio/internal/rawinput"
)

const (
	csHRedraw = 0x0002
	csVRedraw = 0x0001

	wsOverlappedWindow = 0x00CF0000
	wsCaption          = 0x00C00000
	wsThickFrame       = 0x00040000

	wsExDlgModalFrame = 0x00000001
	wsExWindowEdge    = 0x00000100
	wsExClientEdge    = 0x00000200
	wsExStaticEdge    = 0x00020000

	swShow = 5

	wmDestroy    = 0x0002
	wmSize       = 0x0005
	wmPaint      = 0x000F
	wmClose      = 0x0010
	wmInput      = 0x00FF
	wmSysCommand = 0x0112

	scMaximize = 0xF030
	scRestore  = 0xF120

	pmRemove = 0x0001

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	monitorDefaultToNearest = 0x00000002

	hwndTop = 0

	whKeyboard   = 2
	whMouse      = 7
	whKeyboardLL = 13
	whMouseLL    = 14

	ridInput            = 0x10000003
	hidUsagePageGeneric = 0x01
	hidUsageMouse       = 0x02
	hidUsageKeyboard    = 0x06

	dibRGBColors = 0
	biRGB        = 0

	cwUseDefault = 0x80000000
	idcArrow     = 32512
)

// GWL_STYLE and GWL_EXSTYLE as unsigned call arguments.
var (
	gwlStyle   = ^uintptr(15)
	gwlExStyle = ^uintptr(19)
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type point struct {
	x int32
	y int32
}

type paintStruct struct {
	hdc         windows.Handle
	erase       int32
	paint       Rect
	restore     int32
	incUpdate   int32
	rgbReserved [32]byte
}

type bitmapInfo struct {
	size          uint32
	width         int32
	height        int32
	planes        uint16
	bitCount      uint16
	compression   uint32
	sizeImage     uint32
	xPelsPerMeter int32
	yPelsPerMeter int32
	clrUsed       uint32
	clrImportant  uint32
	colors        [1]uint32
}

type monitorInfo struct {
	cbSize  uint32
	monitor Rect
	work    Rect
	flags   uint32
}

type rawInputDevice struct {
	usagePage uint16
	usage     uint16
	flags     uint32
	target    windows.HWND
}

type rawInputDeviceList struct {
	device windows.Handle
	typ    uint32
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx         = user32.NewProc("RegisterClassExW")
	procCreateWindowEx          = user32.NewProc("CreateWindowExW")
	procDefWindowProc           = user32.NewProc("DefWindowProcW")
	procDestroyWindow           = user32.NewProc("DestroyWindow")
	procShowWindow              = user32.NewProc("ShowWindow")
	procUpdateWindow            = user32.NewProc("UpdateWindow")
	procInvalidateRect          = user32.NewProc("InvalidateRect")
	procGetMessage              = user32.NewProc("GetMessageW")
	procPeekMessage             = user32.NewProc("PeekMessageW")
	procTranslateMessage        = user32.NewProc("TranslateMessage")
	procDispatchMessage         = user32.NewProc("DispatchMessageW")
	procSendMessage             = user32.NewProc("SendMessageW")
	procSetWindowPos            = user32.NewProc("SetWindowPos")
	procGetWindowRect           = user32.NewProc("GetWindowRect")
	procGetClientRect           = user32.NewProc("GetClientRect")
	procGetWindowLong           = user32.NewProc("GetWindowLongW")
	procSetWindowLong           = user32.NewProc("SetWindowLongW")
	procIsZoomed                = user32.NewProc("IsZoomed")
	procMonitorFromWindow       = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfo          = user32.NewProc("GetMonitorInfoW")
	procGetClipCursor           = user32.NewProc("GetClipCursor")
	procClipCursor              = user32.NewProc("ClipCursor")
	procShowCursor              = user32.NewProc("ShowCursor")
	procSetCapture              = user32.NewProc("SetCapture")
	procReleaseCapture          = user32.NewProc("ReleaseCapture")
	procLoadCursor              = user32.NewProc("LoadCursorW")
	procBeginPaint              = user32.NewProc("BeginPaint")
	procEndPaint                = user32.NewProc("EndPaint")
	procGetRawInputData         = user32.NewProc("GetRawInputData")
	procGetRawInputDeviceList   = user32.NewProc("GetRawInputDeviceList")
	procRegisterRawInputDevices = user32.NewProc("RegisterRawInputDevices")
	procSetWindowsHookEx        = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx     = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx          = user32.NewProc("CallNextHookEx")

	procSetDIBitsToDevice = gdi32.NewProc("SetDIBitsToDevice")

	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
)

var (
	// Unique per process so a second copy of the client never collides.
	windowClassName = fmt.Sprintf("KVMIOWindow_%d", os.Getpid())
	windowClass, _  = windows.UTF16PtrFromString(windowClassName)
	classRegistered bool

	router Router

	// hooks holds the installed hook of each kind. A hook procedure cannot
	// tell which handle it was installed under, so there is one per kind.
	hooks     = map[HookKind]*winHook{}
	hookProcs = map[HookKind]uintptr{}
)

func winErr(op string, err error) error {
	if errno, ok := err.(windows.Errno); ok && errno != 0 {
		return fmt.Errorf("%s failed: %w", op, errno)
	}
	return fmt.Errorf("%s failed", op)
}

type winHost struct {
	hwnd windows.HWND
	ps   paintStruct
	// painting is set between BeginPaint and EndPaint.
	painting bool
}

// Open creates a hidden window and routes its messages to r. The calling
// goroutine is locked to its thread until Destroy.
func Open(r Router, opts Options) (Host, error) {
	runtime.LockOSThread()

	if err := registerWindowClass(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	router = r

	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	ret, _, e := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(windowClass)),
		uintptr(unsafe.Pointer(title)),
		wsOverlappedWindow,
		cwUseDefault,
		cwUseDefault,
		uintptr(opts.Width),
		uintptr(opts.Height),
		0,
		0,
		uintptr(moduleHandle()),
		0,
	)
	if ret == 0 {
		runtime.UnlockOSThread()
		return nil, winErr("CreateWindowExW", e)
	}
	return &winHost{hwnd: windows.HWND(ret)}, nil
}

func registerWindowClass() error {
	if classRegistered {
		return nil
	}
	cursor, _, _ := procLoadCursor.Call(0, idcArrow)
	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         csHRedraw | csVRedraw,
		lpfnWndProc:   windows.NewCallback(wndProc),
		hInstance:     moduleHandle(),
		hCursor:       windows.Handle(cursor),
		lpszClassName: windowClass,
	}
	ret, _, e := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if ret == 0 {
		return winErr("RegisterClassExW", e)
	}
	classRegistered = true
	return nil
}

func moduleHandle() windows.Handle {
	h, _, _ := procGetModuleHandle.Call(0)
	return windows.Handle(h)
}

func route(hwnd uintptr, m Message) bool {
	if router == nil {
		return false
	}
	return router.Route(Handle(hwnd), m)
}

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	switch uint32(msg) {
	case wmSize:
		route(hwnd, Message{
			Kind:   Resize,
			Width:  int(lParam & 0xFFFF),
			Height: int(lParam>>16&0xFFFF),
		})
	case wmInput:
		// DefWindowProc still has to run to release the report.
		route(hwnd, Message{Kind: RawInput, Input: lParam})
	case wmPaint:
		if route(hwnd, Message{Kind: Paint}) {
			return 0
		}
	case wmClose:
		if route(hwnd, Message{Kind: Close}) {
			return 0
		}
	}
	ret, _, _ := procDefWindowProc.Call(hwnd, msg, wParam, lParam)
	return ret
}

func (w *winHost) Handle() Handle {
	return Handle(w.hwnd)
}

func (w *winHost) Show() error {
	if w.hwnd == 0 {
		return ErrClosed
	}
	procShowWindow.Call(uintptr(w.hwnd), swShow)
	if ret, _, e := procUpdateWindow.Call(uintptr(w.hwnd)); ret == 0 {
		return winErr("UpdateWindow", e)
	}
	return nil
}

func (w *winHost) Destroy() error {
	if w.hwnd == 0 {
		return nil
	}
	ret, _, e := procDestroyWindow.Call(uintptr(w.hwnd))
	w.hwnd = 0
	runtime.UnlockOSThread()
	if ret == 0 {
		return winErr("DestroyWindow", e)
	}
	return nil
}

func (w *winHost) Invalidate() error {
	if ret, _, e := procInvalidateRect.Call(uintptr(w.hwnd), 0, 0); ret == 0 {
		return winErr("InvalidateRect", e)
	}
	return nil
}

func (w *winHost) Pump(block bool) error {
	var m msg
	if block {
		ret, _, e := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return winErr("GetMessageW", e)
		case 0:
			// WM_QUIT
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
		return nil
	}
	for {
		ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if ret == 0 {
			return nil
		}
		if m.message == wmDestroy {
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (w *winHost) setPos(x, y, width, height int, flags uintptr) error {
	return w.setPosAfter(0, x, y, width, height, flags)
}

func (w *winHost) setPosAfter(insertAfter uintptr, x, y, width, height int, flags uintptr) error {
	ret, _, e := procSetWindowPos.Call(
		uintptr(w.hwnd),
		insertAfter,
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		flags,
	)
	if ret == 0 {
		return winErr("SetWindowPos", e)
	}
	return nil
}

func (w *winHost) Move(x, y int) error {
	return w.setPos(x, y, 0, 0, swpNoSize|swpNoZOrder)
}

func (w *winHost) Resize(width, height int) error {
	return w.setPos(0, 0, width, height, swpNoMove|swpNoZOrder)
}

func (w *winHost) Raise() error {
	return w.setPosAfter(hwndTop, 0, 0, 0, 0, swpNoMove|swpNoSize)
}

func (w *winHost) WindowRect() (Rect, error) {
	var r Rect
	if ret, _, e := procGetWindowRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r))); ret == 0 {
		return Rect{}, winErr("GetWindowRect", e)
	}
	return r, nil
}

func (w *winHost) ClientRect() (Rect, error) {
	var r Rect
	if ret, _, e := procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r))); ret == 0 {
		return Rect{}, winErr("GetClientRect", e)
	}
	return r, nil
}

func (w *winHost) CursorClip() (Rect, error) {
	var r Rect
	if ret, _, e := procGetClipCursor.Call(uintptr(unsafe.Pointer(&r))); ret == 0 {
		return Rect{}, winErr("GetClipCursor", e)
	}
	return r, nil
}

func (w *winHost) ClipCursor(r *Rect) error {
	if ret, _, e := procClipCursor.Call(uintptr(unsafe.Pointer(r))); ret == 0 {
		return winErr("ClipCursor", e)
	}
	return nil
}

func (w *winHost) ShowCursor(show bool) {
	var v uintptr
	if show {
		v = 1
	}
	procShowCursor.Call(v)
}

func (w *winHost) SetCapture() {
	procSetCapture.Call(uintptr(w.hwnd))
}

func (w *winHost) ReleaseCapture() {
	procReleaseCapture.Call()
}

func (w *winHost) Placement() (Placement, error) {
	zoomed, _, _ := procIsZoomed.Call(uintptr(w.hwnd))
	style, _, _ := procGetWindowLong.Call(uintptr(w.hwnd), gwlStyle)
	exStyle, _, _ := procGetWindowLong.Call(uintptr(w.hwnd), gwlExStyle)
	bounds, err := w.WindowRect()
	if err != nil {
		return Placement{}, err
	}
	return Placement{
		Zoomed:  zoomed != 0,
		Style:   uint32(style),
		ExStyle: uint32(exStyle),
		Bounds:  bounds,
	}, nil
}

func (w *winHost) setStyles(style, exStyle uint32) {
	procSetWindowLong.Call(uintptr(w.hwnd), gwlStyle, uintptr(style))
	procSetWindowLong.Call(uintptr(w.hwnd), gwlExStyle, uintptr(exStyle))
}

func (w *winHost) EnterFullScreen(p Placement) error {
	if p.Zoomed {
		procSendMessage.Call(uintptr(w.hwnd), wmSysCommand, scRestore, 0)
	}
	w.setStyles(
		p.Style&^(wsCaption|wsThickFrame),
		p.ExStyle&^(wsExDlgModalFrame|wsExWindowEdge|wsExClientEdge|wsExStaticEdge),
	)

	monitor, _, _ := procMonitorFromWindow.Call(uintptr(w.hwnd), monitorDefaultToNearest)
	mi := monitorInfo{cbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	if ret, _, e := procGetMonitorInfo.Call(monitor, uintptr(unsafe.Pointer(&mi))); ret == 0 {
		return winErr("GetMonitorInfoW", e)
	}
	r := mi.monitor
	return w.setPos(int(r.Left), int(r.Top), int(r.Width()), int(r.Height()), swpNoZOrder|swpNoActivate|swpFrameChanged)
}

func (w *winHost) RestorePlacement(p Placement) error {
	w.setStyles(p.Style, p.ExStyle)
	r := p.Bounds
	if err := w.setPos(int(r.Left), int(r.Top), int(r.Width()), int(r.Height()), swpNoZOrder|swpNoActivate|swpFrameChanged); err != nil {
		return err
	}
	if p.Zoomed {
		procSendMessage.Call(uintptr(w.hwnd), wmSysCommand, scMaximize, 0)
	}
	return nil
}

func (w *winHost) ReadRawInput(input uintptr, buf []byte) (int, error) {
	size := uint32(len(buf))
	var data uintptr
	if buf != nil {
		data = uintptr(unsafe.Pointer(&buf[0]))
	}
	ret, _, e := procGetRawInputData.Call(
		input,
		ridInput,
		data,
		uintptr(unsafe.Pointer(&size)),
		rawinput.HeaderSize,
	)
	if uint32(ret) == ^uint32(0) {
		return 0, winErr("GetRawInputData", e)
	}
	if buf == nil {
		return int(size), nil
	}
	return int(ret), nil
}

func (w *winHost) RegisterRawInputDevices(types ...rawinput.DeviceType) error {
	devs := make([]rawInputDevice, 0, len(types))
	for _, t := range types {
		d := rawInputDevice{usagePage: hidUsagePageGeneric}
		switch t {
		case rawinput.DeviceMouse:
			d.usage = hidUsageMouse
		case rawinput.DeviceKeyboard:
			d.usage = hidUsageKeyboard
		default:
			return fmt.Errorf("RegisterRawInputDevices: cannot register %v", t)
		}
		devs = append(devs, d)
	}
	if len(devs) == 0 {
		return nil
	}
	ret, _, e := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&devs[0])),
		uintptr(len(devs)),
		unsafe.Sizeof(rawInputDevice{}),
	)
	if ret == 0 {
		return winErr("RegisterRawInputDevices", e)
	}
	return nil
}

func (w *winHost) RawInputDevices() ([]Device, error) {
	var n uint32
	entry := unsafe.Sizeof(rawInputDeviceList{})
	ret, _, e := procGetRawInputDeviceList.Call(0, uintptr(unsafe.Pointer(&n)), entry)
	if uint32(ret) == ^uint32(0) {
		return nil, winErr("GetRawInputDeviceList", e)
	}
	if n == 0 {
		return nil, nil
	}
	list := make([]rawInputDeviceList, n)
	ret, _, e = procGetRawInputDeviceList.Call(uintptr(unsafe.Pointer(&list[0])), uintptr(unsafe.Pointer(&n)), entry)
	if uint32(ret) == ^uint32(0) {
		return nil, winErr("GetRawInputDeviceList", e)
	}
	devs := make([]Device, 0, ret)
	for _, d := range list[:ret] {
		devs = append(devs, Device{Handle: uintptr(d.device), Type: rawinput.DeviceType(d.typ)})
	}
	return devs, nil
}

type winHook struct {
	handle uintptr
	fn     HookFunc
}

func hookID(kind HookKind) (uintptr, bool) {
	switch kind {
	case KeyboardHook:
		return whKeyboard, true
	case LowLevelKeyboardHook:
		return whKeyboardLL, true
	case MouseHook:
		return whMouse, true
	case LowLevelMouseHook:
		return whMouseLL, true
	}
	return 0, false
}

func hookProc(kind HookKind, code, wParam, lParam uintptr) uintptr {
	var next uintptr
	if h := hooks[kind]; h != nil {
		next = h.handle
		// Negative codes must go straight down the chain.
		if int32(code) >= 0 && h.fn(int(int32(code)), wParam, lParam) {
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(next, code, wParam, lParam)
	return ret
}

func (w *winHost) InstallHook(kind HookKind, fn HookFunc) (Hook, error) {
	id, ok := hookID(kind)
	if !ok {
		return 0, fmt.Errorf("SetWindowsHookExW: unknown hook kind %d", kind)
	}
	if _, ok := hooks[kind]; ok {
		return 0, fmt.Errorf("SetWindowsHookExW: %v hook already installed", kind)
	}
	proc, ok := hookProcs[kind]
	if !ok {
		proc = windows.NewCallback(func(code, wParam, lParam uintptr) uintptr {
			return hookProc(kind, code, wParam, lParam)
		})
		hookProcs[kind] = proc
	}

	// Low-level hooks are system wide; the others watch this thread.
	var mod, thread uintptr
	switch kind {
	case LowLevelKeyboardHook, LowLevelMouseHook:
		mod = uintptr(moduleHandle())
	default:
		thread = uintptr(windows.GetCurrentThreadId())
	}
	ret, _, e := procSetWindowsHookEx.Call(id, proc, mod, thread)
	if ret == 0 {
		return 0, winErr("SetWindowsHookExW", e)
	}
	hooks[kind] = &winHook{handle: ret, fn: fn}
	return Hook(ret), nil
}

func (w *winHost) UninstallHook(h Hook) error {
	for kind, hk := range hooks {
		if Hook(hk.handle) != h {
			continue
		}
		delete(hooks, kind)
		if ret, _, e := procUnhookWindowsHookEx.Call(hk.handle); ret == 0 {
			return winErr("UnhookWindowsHookEx", e)
		}
		return nil
	}
	return fmt.Errorf("UnhookWindowsHookEx: unknown hook %#x", uintptr(h))
}

func (w *winHost) BeginPaint() error {
	ret, _, e := procBeginPaint.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&w.ps)))
	if ret == 0 {
		return winErr("BeginPaint", e)
	}
	w.painting = true
	return nil
}

func (w *winHost) Blit(pixels []byte, width, height int) error {
	if !w.painting {
		return errors.New("Blit outside BeginPaint/EndPaint")
	}
	if len(pixels) == 0 {
		return nil
	}
	bi := bitmapInfo{
		size:        40,
		width:       int32(width),
		height:      -int32(height),
		planes:      1,
		bitCount:    32,
		compression: biRGB,
	}
	ret, _, e := procSetDIBitsToDevice.Call(
		uintptr(w.ps.hdc),
		0, 0,
		uintptr(width), uintptr(height),
		0, 0,
		0, uintptr(height),
		uintptr(unsafe.Pointer(&pixels[0])),
		uintptr(unsafe.Pointer(&bi)),
		dibRGBColors,
	)
	if ret == 0 {
		return winErr("SetDIBitsToDevice", e)
	}
	return nil
}

func (w *winHost) EndPaint() error {
	w.painting = false
	procEndPaint.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&w.ps)))
	return nil
}
