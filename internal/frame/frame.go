// Package frame describes the pixel layouts a frame producer may deliver
// and converts them into the 32-bit surface layout.
package frame

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Format is the pixel layout of a produced frame.
type Format uint8

const (
	// RGB is packed 24-bit R, G, B.
	RGB Format = iota
	// NV12 is YUV 4:2:0: a full-resolution Y plane followed by interleaved
	// U, V samples at half resolution in both directions.
	NV12
	// YUYV is packed YUV 4:2:2: Y0 U Y1 V for every pair of pixels.
	YUYV
)

var (
	ErrUnknownFormat = errors.New("frame: unknown format")
	ErrFrameSize     = errors.New("frame: wrong frame size")
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "rgb"
	case NV12:
		return "nv12"
	case YUYV:
		return "yuyv"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat accepts the names used by the frame conversion tooling.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return RGB, nil
	case "nv12", "yuv420":
		return NV12, nil
	case "yuyv", "yuv422", "yuv 4:2:2":
		return YUYV, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Size returns the number of bytes in a width x height frame.
func (f Format) Size(width, height int) (int, error) {
	switch f {
	case RGB:
		return width * height * 3, nil
	case NV12:
		if width%2 != 0 || height%2 != 0 {
			return 0, fmt.Errorf("%w: nv12 needs even dimensions, got %dx%d", ErrFrameSize, width, height)
		}
		return width * height * 3 / 2, nil
	case YUYV:
		if width%2 != 0 {
			return 0, fmt.Errorf("%w: yuyv needs an even width, got %d", ErrFrameSize, width)
		}
		return width * height * 2, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
}

// BytesPerPixel of the destination layout.
const BytesPerPixel = 4

func put(dst []byte, i int, r, g, b uint8) {
	dst[i] = b
	dst[i+1] = g
	dst[i+2] = r
	dst[i+3] = 0xFF
}

// Convert decodes src, a width x height frame in format f, into dst as
// B, G, R, X pixels. dst must hold width*height*4 bytes.
func Convert(f Format, width, height int, src, dst []byte) error {
	n, err := f.Size(width, height)
	if err != nil {
		return err
	}
	if len(src) != n {
		return fmt.Errorf("%w: %s frame is %d bytes, want %d", ErrFrameSize, f, len(src), n)
	}
	if len(dst) != width*height*BytesPerPixel {
		return fmt.Errorf("%w: destination is %d bytes, want %d", ErrFrameSize, len(dst), width*height*BytesPerPixel)
	}

	switch f {
	case RGB:
		for p := 0; p < width*height; p++ {
			put(dst, p*4, src[p*3], src[p*3+1], src[p*3+2])
		}
	case NV12:
		uv := src[width*height:]
		for y := 0; y < height; y++ {
			row := uv[(y/2)*width:]
			for x := 0; x < width; x++ {
				c := (x / 2) * 2
				r, g, b := color.YCbCrToRGB(src[y*width+x], row[c], row[c+1])
				put(dst, (y*width+x)*4, r, g, b)
			}
		}
	case YUYV:
		for p := 0; p < width*height; p += 2 {
			q := src[p*2 : p*2+4]
			r, g, b := color.YCbCrToRGB(q[0], q[1], q[3])
			put(dst, p*4, r, g, b)
			r, g, b = color.YCbCrToRGB(q[2], q[1], q[3])
			put(dst, (p+1)*4, r, g, b)
		}
	}
	return nil
}

// Producer adapts next, which returns frames in format f, into a producer
// of surface-layout frames. The returned slice is reused between calls. A
// frame that fails to convert is reported as an error.
func Producer(f Format, width, height int, next func() []byte) func() ([]byte, error) {
	dst := make([]byte, width*height*BytesPerPixel)
	return func() ([]byte, error) {
		if err := Convert(f, width, height, next(), dst); err != nil {
			return nil, fmt.Errorf("convert frame: %w", err)
		}
		return dst, nil
	}
}
