package rawinput

// ScanCode is a set-1 scan code with its extension flags and the virtual
// key a US layout reports for it.
type ScanCode struct {
	MakeCode   uint16
	Flags      uint16
	VirtualKey VirtualKey
}

// set1Keys maps non-extended set-1 make codes to virtual keys. Linux evdev
// codes 1 through 88 coincide with these make codes.
var set1Keys = map[uint16]VirtualKey{
	0x01: VKEscape,
	0x0C: VKOEMMinus,
	0x0D: VKOEMPlus,
	0x0E: VKBack,
	0x0F: VKTab,
	0x1A: VKOEM4,
	0x1B: VKOEM6,
	0x1C: VKReturn,
	0x1D: VKControl,
	0x27: VKOEM1,
	0x28: VKOEM7,
	0x29: VKOEM3,
	0x2A: VKShift,
	0x2B: VKOEM5,
	0x33: VKOEMComma,
	0x34: VKOEMPeriod,
	0x35: VKOEM2,
	0x36: VKShift,
	0x37: VKMultiply,
	0x38: VKMenu,
	0x39: VKSpace,
	0x3A: VKCapital,
	0x45: VKNumLock,
	0x46: VKScroll,
	0x47: VKNumpad0 + 7,
	0x48: VKNumpad0 + 8,
	0x49: VKNumpad0 + 9,
	0x4A: VKSubtract,
	0x4B: VKNumpad0 + 4,
	0x4C: VKNumpad0 + 5,
	0x4D: VKNumpad0 + 6,
	0x4E: VKAdd,
	0x4F: VKNumpad0 + 1,
	0x50: VKNumpad0 + 2,
	0x51: VKNumpad0 + 3,
	0x52: VKNumpad0,
	0x53: VKDecimal,
	0x57: Function(11),
	0x58: Function(12),
}

// evdevExtended maps evdev codes above the set-1 range to extended codes.
var evdevExtended = map[uint16]ScanCode{
	96:  {0x1C, KeyE0, VKReturn},
	97:  {0x1D, KeyE0, VKControl},
	98:  {0x35, KeyE0, VKDivide},
	99:  {0x37, KeyE0, VKSnapshot},
	100: {0x38, KeyE0, VKMenu},
	102: {0x47, KeyE0, VKHome},
	103: {0x48, KeyE0, VKUp},
	104: {0x49, KeyE0, VKPrior},
	105: {0x4B, KeyE0, VKLeft},
	106: {0x4D, KeyE0, VKRight},
	107: {0x4F, KeyE0, VKEnd},
	108: {0x50, KeyE0, VKDown},
	109: {0x51, KeyE0, VKNext},
	110: {0x52, KeyE0, VKInsert},
	111: {0x53, KeyE0, VKDelete},
	119: {0x1D, KeyE1, VKPause},
	125: {0x5B, KeyE0, VKLWin},
	126: {0x5C, KeyE0, VKRWin},
	127: {0x5D, KeyE0, VKApps},
}

func init() {
	letters := [...]struct {
		first uint16
		keys  string
	}{
		{0x10, "QWERTYUIOP"},
		{0x1E, "ASDFGHJKL"},
		{0x2C, "ZXCVBNM"},
	}
	for _, row := range letters {
		for i := range row.keys {
			set1Keys[row.first+uint16(i)] = Letter(row.keys[i])
		}
	}
	// 0x02 is "1" through 0x0A "9"; 0x0B is "0".
	for n := 1; n <= 9; n++ {
		set1Keys[uint16(n+1)] = Digit(n)
	}
	set1Keys[0x0B] = Digit(0)
	for n := 1; n <= 10; n++ {
		set1Keys[uint16(0x3A+n)] = Function(n)
	}
}

// FromEvdev converts a Linux evdev key code (an X11 keycode minus 8).
func FromEvdev(code uint16) (ScanCode, bool) {
	if sc, ok := evdevExtended[code]; ok {
		return sc, true
	}
	vk, ok := set1Keys[code]
	if !ok {
		return ScanCode{}, false
	}
	return ScanCode{MakeCode: code, VirtualKey: vk}, true
}

// macKeys maps macOS virtual key codes to evdev codes.
var macKeys = map[uint16]uint16{
	0x00: 30, 0x01: 31, 0x02: 32, 0x03: 33, 0x04: 35, 0x05: 34, 0x06: 44, 0x07: 45,
	0x08: 46, 0x09: 47, 0x0B: 48, 0x0C: 16, 0x0D: 17, 0x0E: 18, 0x0F: 19, 0x10: 21,
	0x11: 20, 0x12: 2, 0x13: 3, 0x14: 4, 0x15: 5, 0x16: 7, 0x17: 6, 0x18: 13,
	0x19: 10, 0x1A: 8, 0x1B: 12, 0x1C: 9, 0x1D: 11, 0x1E: 27, 0x1F: 24, 0x20: 22,
	0x21: 26, 0x22: 23, 0x23: 25, 0x24: 28, 0x25: 38, 0x26: 36, 0x27: 40, 0x28: 37,
	0x29: 39, 0x2A: 43, 0x2B: 51, 0x2C: 53, 0x2D: 49, 0x2E: 50, 0x2F: 52, 0x30: 15,
	0x31: 57, 0x32: 41, 0x33: 14, 0x35: 1, 0x36: 126, 0x37: 125, 0x38: 42, 0x39: 58,
	0x3A: 56, 0x3B: 29, 0x3C: 54, 0x3D: 100, 0x3E: 97,
	// Keypad; Clear sits where Num Lock does.
	0x41: 83, 0x43: 55, 0x45: 78, 0x47: 69, 0x4B: 98, 0x4C: 96, 0x4E: 74,
	0x52: 82, 0x53: 79, 0x54: 80, 0x55: 81, 0x56: 75, 0x57: 76, 0x58: 77,
	0x59: 71, 0x5B: 72, 0x5C: 73,
	0x7A: 59, 0x78: 60, 0x63: 61, 0x76: 62, 0x60: 63, 0x61: 64, 0x62: 65, 0x64: 66,
	0x65: 67, 0x6D: 68, 0x67: 87, 0x6F: 88,
	// Help is Insert on PC keyboards.
	0x72: 110, 0x73: 102, 0x74: 104, 0x75: 111, 0x77: 107, 0x79: 109,
	0x7B: 105, 0x7C: 106, 0x7D: 108, 0x7E: 103,
}

// FromMacKeyCode converts a macOS virtual key code, as reported by NSEvent.
func FromMacKeyCode(code uint16) (ScanCode, bool) {
	ev, ok := macKeys[code]
	if !ok {
		return ScanCode{}, false
	}
	return FromEvdev(ev)
}
