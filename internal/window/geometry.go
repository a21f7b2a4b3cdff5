package window

import (
	"fmt"

	"github.com/tinyrange/kvmio/internal/platform"
)

// SetSize resizes the outer window.
func (w *Window) SetSize(width, height int) error {
	if err := w.host.Resize(width, height); err != nil {
		return fmt.Errorf("set window size: %w", err)
	}
	return nil
}

// SetPosition moves the window's top left corner to x, y on screen.
func (w *Window) SetPosition(x, y int) error {
	if err := w.host.Move(x, y); err != nil {
		return fmt.Errorf("set window position: %w", err)
	}
	return nil
}

// Size returns the outer window size as of the last resize.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// ClientSize returns the drawable area as of the last resize.
func (w *Window) ClientSize() (width, height int) {
	return w.clientWidth, w.clientHeight
}

// SetFullScreen covers the nearest monitor with the client area, or puts
// the window back where it was.
func (w *Window) SetFullScreen(on bool) error {
	if on == w.IsFullScreen() {
		return nil
	}
	if on {
		p, err := w.host.Placement()
		if err != nil {
			return fmt.Errorf("get window placement: %w", err)
		}
		if err := w.host.EnterFullScreen(p); err != nil {
			return fmt.Errorf("enter full screen: %w", err)
		}
		w.saved = &p
	} else {
		p := *w.saved
		w.saved = nil
		if err := w.host.RestorePlacement(p); err != nil {
			return fmt.Errorf("leave full screen: %w", err)
		}
	}
	w.log.Debug("Full screen", "on", on)
	return w.reclip()
}

func (w *Window) IsFullScreen() bool {
	return w.saved != nil
}

// clipRect is the client area in screen coordinates: the window origin
// plus the client extent.
func (w *Window) clipRect() (platform.Rect, error) {
	wr, err := w.host.WindowRect()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("get window rect: %w", err)
	}
	cr, err := w.host.ClientRect()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("get client rect: %w", err)
	}
	return platform.Rect{
		Left:   wr.Left,
		Top:    wr.Top,
		Right:  wr.Left + cr.Width(),
		Bottom: wr.Top + cr.Height(),
	}, nil
}

func (w *Window) reclip() error {
	if !w.locked {
		return nil
	}
	r, err := w.clipRect()
	if err != nil {
		return err
	}
	if err := w.host.ClipCursor(&r); err != nil {
		return fmt.Errorf("clip cursor: %w", err)
	}
	return nil
}

// Lock hides the cursor and confines it to the client area. Unlocking
// restores the clip rectangle in effect when the window was created.
func (w *Window) Lock(on bool) error {
	if on == w.locked {
		return nil
	}
	if on {
		w.locked = true
		if err := w.reclip(); err != nil {
			w.locked = false
			return err
		}
		w.host.ShowCursor(false)
	} else {
		w.locked = false
		clip := w.savedClip
		if err := w.host.ClipCursor(&clip); err != nil {
			return fmt.Errorf("restore cursor clip: %w", err)
		}
		w.host.ShowCursor(true)
	}
	w.log.Debug("Cursor lock", "on", on)
	return nil
}

func (w *Window) IsLocked() bool {
	return w.locked
}

// ShowCursor shows or hides the cursor over the window.
func (w *Window) ShowCursor(show bool) {
	w.host.ShowCursor(show)
}

// SetMouseCapture keeps delivering mouse input while the pointer is outside
// the window.
func (w *Window) SetMouseCapture() {
	w.host.SetCapture()
}

func (w *Window) ReleaseMouseCapture() {
	w.host.ReleaseCapture()
}
