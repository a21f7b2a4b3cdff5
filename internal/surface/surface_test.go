package surface

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	s, err := New(4, 3, 32)
	if err != nil {
		t.Fatal(err)
	}
	if s.BufferSize() != 48 {
		t.Errorf("BufferSize() = %d, want 48", s.BufferSize())
	}
	if s.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", s.Stride())
	}
	if w, h := s.Size(); w != 4 || h != 3 {
		t.Errorf("Size() = %dx%d", w, h)
	}

	for _, bad := range [][3]int{{0, 1, 32}, {1, -1, 32}, {1, 1, 0}, {1, 1, 12}} {
		if _, err := New(bad[0], bad[1], bad[2]); err == nil {
			t.Errorf("New(%v) succeeded", bad)
		}
	}
}

func TestSetPixels(t *testing.T) {
	s, _ := New(2, 2, 32)
	frame := bytes.Repeat([]byte{1, 2, 3, 4}, 4)
	if err := s.SetPixels(frame); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.Pixels(), frame) {
		t.Error("pixels not copied")
	}
	frame[0] = 9
	if s.Pixels()[0] != 1 {
		t.Error("surface aliases the caller's frame")
	}
}

func TestSetPixelsSizeMismatch(t *testing.T) {
	s, _ := New(2, 2, 32)
	for _, n := range []int{0, 15, 17} {
		err := s.SetPixels(bytes.Repeat([]byte{0xFF}, n))
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("SetPixels(%d bytes) error = %v", n, err)
		}
	}
	if !bytes.Equal(s.Pixels(), make([]byte, 16)) {
		t.Error("mismatched frame was copied")
	}
}
