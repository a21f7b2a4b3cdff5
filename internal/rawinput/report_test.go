package rawinput

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeyboard(t *testing.T) {
	raw := RawKeyboard{MakeCode: 0x1D, Flags: KeyE0 | KeyBreak, VKey: uint16(VKControl), Message: MsgKeyUp, ExtraInformation: 9}
	b := MarshalKeyboard(0x42, raw)
	if len(b) != HeaderSize+KeyboardSize {
		t.Fatalf("len = %d", len(b))
	}

	r, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	want := Header{Type: DeviceKeyboard, Size: uint32(len(b)), Device: 0x42}
	if diff := cmp.Diff(want, r.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(raw, r.Keyboard); diff != "" {
		t.Errorf("keyboard mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMouseLayout(t *testing.T) {
	b := MarshalMouse(1, RawMouse{
		Flags:       MouseMoveAbsolute,
		ButtonFlags: MouseWheel,
		ButtonData:  0xFF88,
		LastX:       -3,
		LastY:       65536,
	})
	body := b[HeaderSize:]
	// usButtonFlags sits after two bytes of padding.
	if body[4] != 0x00 || body[5] != 0x04 {
		t.Errorf("button flags bytes = % x", body[4:6])
	}
	if body[12] != 0xFD || body[15] != 0xFF {
		t.Errorf("lLastX bytes = % x", body[12:16])
	}

	r, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	got := DecodeMouse(r.Mouse)
	if !got.WheelY || got.Wheel.Y != -1 {
		t.Errorf("wheel = %+v", got.Wheel)
	}
	if got.Movement != (Delta{-3, 0}) {
		t.Errorf("movement = %+v", got.Movement)
	}
}

func TestParseHID(t *testing.T) {
	b := MarshalHID(7, 2, 2, []byte{1, 2, 3, 4})
	r, err := Parse(b)
	if err != nil {
		t.Fatal(err)
	}
	if r.Header.Type != DeviceHID {
		t.Errorf("type = %v", r.Header.Type)
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4}, r.HID); diff != "" {
		t.Errorf("hid mismatch (-want +got):\n%s", diff)
	}
}

func TestParseShort(t *testing.T) {
	tests := map[string][]byte{
		"empty":          nil,
		"header only":    MarshalKeyboard(0, RawKeyboard{})[:HeaderSize],
		"truncated body": MarshalMouse(0, RawMouse{})[:HeaderSize+10],
		"hid overflow":   MarshalHID(0, 4, 4, []byte{1}),
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(b); !errors.Is(err, ErrShortReport) {
				t.Errorf("Parse() error = %v, want ErrShortReport", err)
			}
		})
	}
}
