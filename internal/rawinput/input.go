// Package rawinput decodes raw keyboard and mouse reports delivered by the
// host input subsystem into normalized input values.
//
// Reports use the Win32 RAWINPUT wire layout on every platform. Backends
// that do not receive such reports natively synthesize them with the
// Marshal functions so the decoder sees identical bytes everywhere.
package rawinput

import "fmt"

// KeyStatus is the state a key or button transitioned into.
type KeyStatus uint8

const (
	Released KeyStatus = iota
	Pressed
)

func (s KeyStatus) String() string {
	switch s {
	case Released:
		return "Released"
	case Pressed:
		return "Pressed"
	default:
		return fmt.Sprintf("KeyStatus(%d)", uint8(s))
	}
}

// KeyboardInput is a decoded keyboard report.
type KeyboardInput struct {
	// MakeCode is the device scan code. Extended keys have 0xE0 shifted in
	// at bit 8 (E0) or bit 16 (E1) so codes are unique across both namespaces.
	MakeCode   uint32
	VirtualKey VirtualKey
	Status     KeyStatus
	Extended0  bool
	Extended1  bool
	// AltOrF10 is set when the originating message was a system key-down.
	AltOrF10 bool
}

// Delta is a signed pair of 16-bit values.
type Delta struct {
	X int16
	Y int16
}

// ButtonState records what a mouse report said about one button.
type ButtonState struct {
	Status KeyStatus
	// Transition is true when the report changed this button's state.
	Transition bool
}

// MouseInput is a decoded mouse report.
type MouseInput struct {
	Movement Delta
	// Wheel holds notches (raw ticks divided by WheelDelta). At most one of
	// X (horizontal) and Y (vertical) is populated.
	Wheel Delta

	Left    ButtonState
	Right   ButtonState
	Middle  ButtonState
	Forward ButtonState
	Back    ButtonState

	MoveRelative   bool
	MoveAbsolute   bool
	VirtualDesktop bool
	WheelX         bool
	WheelY         bool
	AnyButton      bool
}

// DeviceType is the class of device that produced a report.
type DeviceType uint32

const (
	DeviceMouse    DeviceType = 0
	DeviceKeyboard DeviceType = 1
	DeviceHID      DeviceType = 2
)

func (t DeviceType) String() string {
	switch t {
	case DeviceMouse:
		return "Mouse HID"
	case DeviceKeyboard:
		return "Keyboard HID"
	case DeviceHID:
		return "Not a keyboard or Mouse HID"
	default:
		return fmt.Sprintf("DeviceType(%d)", uint32(t))
	}
}
