package rawinput

import "github.com/tinyrange/kvmio/internal/assert"

// Keyboard report flags.
const (
	KeyMake  = 0x0000
	KeyBreak = 0x0001
	KeyE0    = 0x0002
	KeyE1    = 0x0004
)

// OverrunMakeCode is reported by the device when its buffer overflows.
const OverrunMakeCode = 0xFF

// Window messages carried in RawKeyboard.Message.
const (
	MsgKeyDown    = 0x0100
	MsgKeyUp      = 0x0101
	MsgSysKeyDown = 0x0104
	MsgSysKeyUp   = 0x0105
)

// Mouse movement flags.
const (
	MouseMoveRelative      = 0x00
	MouseMoveAbsolute      = 0x01
	MouseVirtualDesktop    = 0x02
	MouseAttributesChanged = 0x04
)

// Mouse button flags.
const (
	MouseLeftDown    = 0x0001
	MouseLeftUp      = 0x0002
	MouseRightDown   = 0x0004
	MouseRightUp     = 0x0008
	MouseMiddleDown  = 0x0010
	MouseMiddleUp    = 0x0020
	MouseButton4Down = 0x0040
	MouseButton4Up   = 0x0080
	MouseButton5Down = 0x0100
	MouseButton5Up   = 0x0200
	MouseWheel       = 0x0400
	MouseHWheel      = 0x0800

	mouseAnyButton = 0x03FF
)

// WheelDelta is the raw tick count of one wheel notch.
const WheelDelta = 120

func isKeyMessage(msg uint32) bool {
	switch msg {
	case MsgKeyDown, MsgKeyUp, MsgSysKeyDown, MsgSysKeyUp:
		return true
	}
	return false
}

// DecodeKeyboard translates a raw keyboard report.
func DecodeKeyboard(r RawKeyboard) KeyboardInput {
	assert.That(isKeyMessage(r.Message), "keyboard report message %#x is neither a key down nor a key up", r.Message)
	assert.That(r.MakeCode != OverrunMakeCode, "keyboard report carries the overrun make code")

	in := KeyboardInput{
		MakeCode:   uint32(r.MakeCode),
		VirtualKey: VirtualKey(r.VKey),
		Status:     Pressed,
		Extended0:  r.Flags&KeyE0 != 0,
		Extended1:  r.Flags&KeyE1 != 0,
		AltOrF10:   r.Message == MsgSysKeyDown,
	}
	if r.Flags&KeyBreak != 0 {
		in.Status = Released
	}

	switch {
	case in.Extended0:
		in.MakeCode |= 0xE0 << 8
	case in.Extended1:
		in.MakeCode |= 0xE0 << 16
	}
	return in
}

func decodeButton(flags uint16, down, up uint16) ButtonState {
	isDown := flags&down != 0
	b := ButtonState{Transition: isDown || flags&up != 0}
	if isDown {
		b.Status = Pressed
	}
	return b
}

// DecodeMouse translates a raw mouse report.
func DecodeMouse(r RawMouse) MouseInput {
	flags := r.ButtonFlags
	in := MouseInput{
		MoveRelative:   r.Flags&MouseMoveAbsolute == 0,
		MoveAbsolute:   r.Flags&MouseMoveAbsolute != 0,
		VirtualDesktop: r.Flags&MouseVirtualDesktop != 0,
		AnyButton:      flags&mouseAnyButton != 0,
		// Movement keeps the device's native 16-bit width; larger values wrap.
		Movement: Delta{X: int16(r.LastX), Y: int16(r.LastY)},
	}

	if in.AnyButton {
		in.Left = decodeButton(flags, MouseLeftDown, MouseLeftUp)
		in.Right = decodeButton(flags, MouseRightDown, MouseRightUp)
		in.Middle = decodeButton(flags, MouseMiddleDown, MouseMiddleUp)
		in.Forward = decodeButton(flags, MouseButton4Down, MouseButton4Up)
		in.Back = decodeButton(flags, MouseButton5Down, MouseButton5Up)
	}

	notches := int16(r.ButtonData) / WheelDelta
	switch {
	case flags&MouseWheel != 0:
		in.WheelY = true
		in.Wheel.Y = notches
	case flags&MouseHWheel != 0:
		in.WheelX = true
		in.Wheel.X = notches
	}
	return in
}
