package window

import (
	"fmt"

	"github.com/tinyrange/kvmio/internal/assert"
	"github.com/tinyrange/kvmio/internal/platform"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

func (w *Window) handle(m platform.Message) bool {
	switch m.Kind {
	case platform.Resize:
		w.onResize()
	case platform.RawInput:
		w.onRawInput(m.Input)
	case platform.Paint:
		w.onPaint()
	case platform.Close:
		w.log.Debug("Close requested")
		w.closed = true
	default:
		return false
	}
	return true
}

func (w *Window) onResize() {
	if err := w.refreshSize(); err != nil {
		w.fail(err)
		return
	}
	if err := w.reclip(); err != nil {
		w.fail(err)
	}
}

func (w *Window) onRawInput(input uintptr) {
	n, err := w.host.ReadRawInput(input, nil)
	if err != nil {
		w.fail(fmt.Errorf("get raw input size: %w", err))
		return
	}
	if n > len(w.scratch) {
		w.scratch = make([]byte, n)
	}
	n, err = w.host.ReadRawInput(input, w.scratch[:n])
	if err != nil {
		w.fail(fmt.Errorf("get raw input: %w", err))
		return
	}
	r, err := rawinput.Parse(w.scratch[:n])
	if err != nil {
		w.fail(fmt.Errorf("parse raw input: %w", err))
		return
	}

	switch r.Header.Type {
	case rawinput.DeviceMouse:
		in := rawinput.DecodeMouse(r.Mouse)
		w.log.Debug("Mouse input", "input", in)
		w.mouse.Publish(in)
	case rawinput.DeviceKeyboard:
		w.onKey(rawinput.DecodeKeyboard(r.Keyboard))
	default:
		w.log.Debug("Dropped raw input", "type", r.Header.Type, "size", len(r.HID))
	}
}

func (w *Window) onKey(in rawinput.KeyboardInput) {
	w.log.Debug("Keyboard input", "input", in)
	if w.keys.Update(in) {
		w.combos.Match(w.keys.Sequence())
	}
	w.keyboard.Publish(in)
}

// onPaint presents the producer's next frame. Without a producer the
// window keeps its last contents.
func (w *Window) onPaint() {
	if err := w.host.BeginPaint(); err != nil {
		w.fail(fmt.Errorf("begin paint: %w", err))
		return
	}
	if w.paint != nil {
		if px, err := w.paint(); err != nil {
			w.fail(err)
		} else {
			w.present(px)
		}
	}
	if err := w.host.EndPaint(); err != nil {
		w.fail(fmt.Errorf("end paint: %w", err))
	}
}

func (w *Window) present(px []byte) {
	if !assert.That(len(px) == w.surface.BufferSize(),
		"paint producer returned %d bytes, surface holds %d", len(px), w.surface.BufferSize()) {
		return
	}
	if err := w.surface.SetPixels(px); err != nil {
		w.fail(err)
		return
	}
	width, height := w.surface.Size()
	if err := w.host.Blit(w.surface.Pixels(), width, height); err != nil {
		w.fail(fmt.Errorf("blit: %w", err))
	}
}
