package rawinput

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// ptrSize is the width of HANDLE and WPARAM in the report header.
const ptrSize = strconv.IntSize / 8

// Sizes of the fixed parts of a report.
const (
	HeaderSize   = 8 + 2*ptrSize
	MouseSize    = 24
	KeyboardSize = 16
	hidFixedSize = 8
)

// ErrShortReport is returned when a report is smaller than its header claims.
var ErrShortReport = errors.New("rawinput: short report")

// Header mirrors RAWINPUTHEADER.
type Header struct {
	Type   DeviceType
	Size   uint32
	Device uintptr
	WParam uintptr
}

// RawMouse mirrors RAWMOUSE.
type RawMouse struct {
	Flags            uint16
	ButtonFlags      uint16
	ButtonData       uint16
	RawButtons       uint32
	LastX            int32
	LastY            int32
	ExtraInformation uint32
}

// RawKeyboard mirrors RAWKEYBOARD.
type RawKeyboard struct {
	MakeCode         uint16
	Flags            uint16
	Reserved         uint16
	VKey             uint16
	Message          uint32
	ExtraInformation uint32
}

// Report is a parsed RAWINPUT blob. Only the member selected by Header.Type
// is meaningful.
type Report struct {
	Header   Header
	Mouse    RawMouse
	Keyboard RawKeyboard
	// HID holds the raw bytes of a generic HID report.
	HID []byte
}

func getPtr(b []byte) uintptr {
	if ptrSize == 8 {
		return uintptr(binary.LittleEndian.Uint64(b))
	}
	return uintptr(binary.LittleEndian.Uint32(b))
}

func appendPtr(b []byte, v uintptr) []byte {
	if ptrSize == 8 {
		return binary.LittleEndian.AppendUint64(b, uint64(v))
	}
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

// Parse decodes a RAWINPUT blob as returned by the host.
func Parse(b []byte) (Report, error) {
	var r Report
	if len(b) < HeaderSize {
		return r, fmt.Errorf("%w: %d bytes, header needs %d", ErrShortReport, len(b), HeaderSize)
	}
	le := binary.LittleEndian
	r.Header = Header{
		Type:   DeviceType(le.Uint32(b[0:])),
		Size:   le.Uint32(b[4:]),
		Device: getPtr(b[8:]),
		WParam: getPtr(b[8+ptrSize:]),
	}
	body := b[HeaderSize:]

	switch r.Header.Type {
	case DeviceMouse:
		if len(body) < MouseSize {
			return r, fmt.Errorf("%w: mouse body is %d bytes", ErrShortReport, len(body))
		}
		r.Mouse = RawMouse{
			Flags:            le.Uint16(body[0:]),
			ButtonFlags:      le.Uint16(body[4:]),
			ButtonData:       le.Uint16(body[6:]),
			RawButtons:       le.Uint32(body[8:]),
			LastX:            int32(le.Uint32(body[12:])),
			LastY:            int32(le.Uint32(body[16:])),
			ExtraInformation: le.Uint32(body[20:]),
		}
	case DeviceKeyboard:
		if len(body) < KeyboardSize {
			return r, fmt.Errorf("%w: keyboard body is %d bytes", ErrShortReport, len(body))
		}
		r.Keyboard = RawKeyboard{
			MakeCode:         le.Uint16(body[0:]),
			Flags:            le.Uint16(body[2:]),
			Reserved:         le.Uint16(body[4:]),
			VKey:             le.Uint16(body[6:]),
			Message:          le.Uint32(body[8:]),
			ExtraInformation: le.Uint32(body[12:]),
		}
	default:
		if len(body) < hidFixedSize {
			return r, fmt.Errorf("%w: hid body is %d bytes", ErrShortReport, len(body))
		}
		size := le.Uint32(body[0:])
		count := le.Uint32(body[4:])
		n := uint64(size) * uint64(count)
		if uint64(len(body)-hidFixedSize) < n {
			return r, fmt.Errorf("%w: hid data needs %d bytes", ErrShortReport, n)
		}
		r.HID = append([]byte(nil), body[hidFixedSize:hidFixedSize+int(n)]...)
	}
	return r, nil
}

func appendHeader(b []byte, t DeviceType, bodySize int, device uintptr) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, uint32(t))
	b = le.AppendUint32(b, uint32(HeaderSize+bodySize))
	b = appendPtr(b, device)
	return appendPtr(b, 0)
}

// MarshalMouse encodes m as a RAWINPUT blob.
func MarshalMouse(device uintptr, m RawMouse) []byte {
	le := binary.LittleEndian
	b := make([]byte, 0, HeaderSize+MouseSize)
	b = appendHeader(b, DeviceMouse, MouseSize, device)
	b = le.AppendUint16(b, m.Flags)
	b = le.AppendUint16(b, 0)
	b = le.AppendUint16(b, m.ButtonFlags)
	b = le.AppendUint16(b, m.ButtonData)
	b = le.AppendUint32(b, m.RawButtons)
	b = le.AppendUint32(b, uint32(m.LastX))
	b = le.AppendUint32(b, uint32(m.LastY))
	return le.AppendUint32(b, m.ExtraInformation)
}

// MarshalKeyboard encodes k as a RAWINPUT blob.
func MarshalKeyboard(device uintptr, k RawKeyboard) []byte {
	le := binary.LittleEndian
	b := make([]byte, 0, HeaderSize+KeyboardSize)
	b = appendHeader(b, DeviceKeyboard, KeyboardSize, device)
	b = le.AppendUint16(b, k.MakeCode)
	b = le.AppendUint16(b, k.Flags)
	b = le.AppendUint16(b, k.Reserved)
	b = le.AppendUint16(b, k.VKey)
	b = le.AppendUint32(b, k.Message)
	return le.AppendUint32(b, k.ExtraInformation)
}

// MarshalHID encodes a generic HID report holding count reports of size bytes.
func MarshalHID(device uintptr, size, count uint32, data []byte) []byte {
	le := binary.LittleEndian
	b := make([]byte, 0, HeaderSize+hidFixedSize+len(data))
	b = appendHeader(b, DeviceHID, hidFixedSize+len(data), device)
	b = le.AppendUint32(b, size)
	b = le.AppendUint32(b, count)
	return append(b, data...)
}
