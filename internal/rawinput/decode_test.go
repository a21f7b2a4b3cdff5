package rawinput

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinyrange/kvmio/internal/assert"
)

func TestDecodeKeyboard(t *testing.T) {
	tests := []struct {
		name string
		raw  RawKeyboard
		want KeyboardInput
	}{
		{
			name: "plain press",
			raw:  RawKeyboard{MakeCode: 0x1E, VKey: uint16(Letter('a')), Message: MsgKeyDown},
			want: KeyboardInput{MakeCode: 0x1E, VirtualKey: Letter('a'), Status: Pressed},
		},
		{
			name: "plain release",
			raw:  RawKeyboard{MakeCode: 0x1E, Flags: KeyBreak, VKey: uint16(Letter('a')), Message: MsgKeyUp},
			want: KeyboardInput{MakeCode: 0x1E, VirtualKey: Letter('a'), Status: Released},
		},
		{
			name: "e0 right control",
			raw:  RawKeyboard{MakeCode: 0x1D, Flags: KeyE0, VKey: uint16(VKControl), Message: MsgKeyDown},
			want: KeyboardInput{MakeCode: 0x1D | 0xE0<<8, VirtualKey: VKControl, Status: Pressed, Extended0: true},
		},
		{
			name: "e1 pause release",
			raw:  RawKeyboard{MakeCode: 0x1D, Flags: KeyE1 | KeyBreak, VKey: uint16(VKPause), Message: MsgKeyUp},
			want: KeyboardInput{MakeCode: 0x1D | 0xE0<<16, VirtualKey: VKPause, Status: Released, Extended1: true},
		},
		{
			name: "e0 wins over e1",
			raw:  RawKeyboard{MakeCode: 0x10, Flags: KeyE0 | KeyE1, VKey: 0x10, Message: MsgKeyDown},
			want: KeyboardInput{MakeCode: 0x10 | 0xE0<<8, VirtualKey: 0x10, Status: Pressed, Extended0: true, Extended1: true},
		},
		{
			name: "system key down",
			raw:  RawKeyboard{MakeCode: 0x44, VKey: uint16(VKF10), Message: MsgSysKeyDown},
			want: KeyboardInput{MakeCode: 0x44, VirtualKey: VKF10, Status: Pressed, AltOrF10: true},
		},
		{
			name: "system key up is not alt-down",
			raw:  RawKeyboard{MakeCode: 0x38, Flags: KeyBreak, VKey: uint16(VKMenu), Message: MsgSysKeyUp},
			want: KeyboardInput{MakeCode: 0x38, VirtualKey: VKMenu, Status: Released},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeKeyboard(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeKeyboard() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeKeyboardExtendedMakeCodes(t *testing.T) {
	for code := uint16(0); code < 0x100; code++ {
		if code == OverrunMakeCode {
			continue
		}
		e0 := DecodeKeyboard(RawKeyboard{MakeCode: code, Flags: KeyE0, Message: MsgKeyDown})
		if want := uint32(code) | 0xE0<<8; e0.MakeCode != want {
			t.Fatalf("E0 make code %#x: got %#x, want %#x", code, e0.MakeCode, want)
		}
		e1 := DecodeKeyboard(RawKeyboard{MakeCode: code, Flags: KeyE1, Message: MsgKeyDown})
		if want := uint32(code) | 0xE0<<16; e1.MakeCode != want {
			t.Fatalf("E1 make code %#x: got %#x, want %#x", code, e1.MakeCode, want)
		}
	}
}

func TestDecodeKeyboardRejectsNonKeyMessage(t *testing.T) {
	if !assert.Enabled {
		t.Skip("contract checks do not panic in release builds")
	}
	defer func() {
		if recover() == nil {
			t.Error("DecodeKeyboard accepted a report without a key message")
		}
	}()
	DecodeKeyboard(RawKeyboard{MakeCode: 0x1E})
}

func TestDecodeMouseButtons(t *testing.T) {
	t.Run("left down only", func(t *testing.T) {
		got := DecodeMouse(RawMouse{ButtonFlags: MouseLeftDown})
		want := MouseInput{
			Left:         ButtonState{Status: Pressed, Transition: true},
			AnyButton:    true,
			MoveRelative: true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DecodeMouse() mismatch (-want +got):\n%s", diff)
		}
	})

	tests := []struct {
		name  string
		flags uint16
		pick  func(MouseInput) ButtonState
		want  ButtonState
	}{
		{"right up", MouseRightUp, func(m MouseInput) ButtonState { return m.Right }, ButtonState{Released, true}},
		{"middle down", MouseMiddleDown, func(m MouseInput) ButtonState { return m.Middle }, ButtonState{Pressed, true}},
		{"forward down", MouseButton4Down, func(m MouseInput) ButtonState { return m.Forward }, ButtonState{Pressed, true}},
		{"back up", MouseButton5Up, func(m MouseInput) ButtonState { return m.Back }, ButtonState{Released, true}},
		{"left down and up", MouseLeftDown | MouseLeftUp, func(m MouseInput) ButtonState { return m.Left }, ButtonState{Pressed, true}},
		{"left untouched", MouseRightDown, func(m MouseInput) ButtonState { return m.Left }, ButtonState{Released, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeMouse(RawMouse{ButtonFlags: tt.flags})
			if !got.AnyButton {
				t.Error("AnyButton = false")
			}
			if diff := cmp.Diff(tt.want, tt.pick(got)); diff != "" {
				t.Errorf("button mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMouseMovement(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawMouse
		want  Delta
		rel   bool
		abs   bool
		vdesk bool
	}{
		{"relative", RawMouse{LastX: -5, LastY: 7}, Delta{-5, 7}, true, false, false},
		{"absolute", RawMouse{Flags: MouseMoveAbsolute, LastX: 30000, LastY: 100}, Delta{30000, 100}, false, true, false},
		{"virtual desktop", RawMouse{Flags: MouseMoveAbsolute | MouseVirtualDesktop, LastX: 1}, Delta{1, 0}, false, true, true},
		{"wraps past 16 bits", RawMouse{LastX: 0x12345, LastY: -0x8001}, Delta{0x2345, 0x7FFF}, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeMouse(tt.raw)
			if got.Movement != tt.want {
				t.Errorf("Movement = %+v, want %+v", got.Movement, tt.want)
			}
			if got.MoveRelative != tt.rel || got.MoveAbsolute != tt.abs || got.VirtualDesktop != tt.vdesk {
				t.Errorf("flags rel=%v abs=%v vdesk=%v", got.MoveRelative, got.MoveAbsolute, got.VirtualDesktop)
			}
			if got.AnyButton {
				t.Error("AnyButton = true for a movement-only report")
			}
		})
	}
}

func TestDecodeMouseWheel(t *testing.T) {
	down := int16(-2 * WheelDelta)

	v := DecodeMouse(RawMouse{ButtonFlags: MouseWheel, ButtonData: uint16(down)})
	if !v.WheelY || v.WheelX || v.Wheel != (Delta{0, -2}) {
		t.Errorf("vertical wheel: %+v", v)
	}

	h := DecodeMouse(RawMouse{ButtonFlags: MouseHWheel, ButtonData: 3 * WheelDelta})
	if !h.WheelX || h.WheelY || h.Wheel != (Delta{3, 0}) {
		t.Errorf("horizontal wheel: %+v", h)
	}

	both := DecodeMouse(RawMouse{ButtonFlags: MouseWheel | MouseHWheel, ButtonData: WheelDelta})
	if both.WheelX == both.WheelY {
		t.Errorf("both wheels reported together: %+v", both)
	}
	if both.AnyButton {
		t.Error("wheel report counted as a button")
	}
}
