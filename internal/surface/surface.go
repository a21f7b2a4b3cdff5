// Package surface holds the off-screen pixel buffer a window presents.
package surface

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned when a frame does not fill the buffer exactly.
var ErrSizeMismatch = errors.New("surface: frame size mismatch")

// Surface is a fixed-size top-down pixel buffer. With 32 bits per pixel the
// layout is B, G, R, X per pixel, which both the GDI and X11 blits accept
// without conversion.
type Surface struct {
	width        int
	height       int
	bitsPerPixel int
	pix          []byte
}

func New(width, height, bitsPerPixel int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid size %dx%d", width, height)
	}
	if bitsPerPixel <= 0 || bitsPerPixel%8 != 0 {
		return nil, fmt.Errorf("surface: unsupported depth %d", bitsPerPixel)
	}
	return &Surface{
		width:        width,
		height:       height,
		bitsPerPixel: bitsPerPixel,
		pix:          make([]byte, width*height*bitsPerPixel/8),
	}, nil
}

// SetPixels copies b into the buffer. b must be exactly BufferSize bytes;
// otherwise nothing is copied.
func (s *Surface) SetPixels(b []byte) error {
	if len(b) != len(s.pix) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(b), len(s.pix))
	}
	copy(s.pix, b)
	return nil
}

// Pixels exposes the buffer.
func (s *Surface) Pixels() []byte {
	return s.pix
}

func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

func (s *Surface) BitsPerPixel() int {
	return s.bitsPerPixel
}

func (s *Surface) BufferSize() int {
	return len(s.pix)
}

// Stride is the number of bytes per row.
func (s *Surface) Stride() int {
	return s.width * s.bitsPerPixel / 8
}
