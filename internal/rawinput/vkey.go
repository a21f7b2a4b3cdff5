package rawinput

import (
	"fmt"
	"strconv"
	"strings"
)

// VirtualKey is the logical key identifier reported alongside a scan code.
// Values follow the Windows virtual-key codes.
type VirtualKey uint16

const (
	VKBack      VirtualKey = 0x08
	VKTab       VirtualKey = 0x09
	VKReturn    VirtualKey = 0x0D
	VKShift     VirtualKey = 0x10
	VKControl   VirtualKey = 0x11
	VKMenu      VirtualKey = 0x12
	VKPause     VirtualKey = 0x13
	VKCapital   VirtualKey = 0x14
	VKEscape    VirtualKey = 0x1B
	VKSpace     VirtualKey = 0x20
	VKPrior     VirtualKey = 0x21
	VKNext      VirtualKey = 0x22
	VKEnd       VirtualKey = 0x23
	VKHome      VirtualKey = 0x24
	VKLeft      VirtualKey = 0x25
	VKUp        VirtualKey = 0x26
	VKRight     VirtualKey = 0x27
	VKDown      VirtualKey = 0x28
	VKSnapshot  VirtualKey = 0x2C
	VKInsert    VirtualKey = 0x2D
	VKDelete    VirtualKey = 0x2E
	VK0         VirtualKey = 0x30
	VKA         VirtualKey = 0x41
	VKLWin      VirtualKey = 0x5B
	VKRWin      VirtualKey = 0x5C
	VKApps      VirtualKey = 0x5D
	VKNumpad0   VirtualKey = 0x60
	VKMultiply  VirtualKey = 0x6A
	VKAdd       VirtualKey = 0x6B
	VKSubtract  VirtualKey = 0x6D
	VKDecimal   VirtualKey = 0x6E
	VKDivide    VirtualKey = 0x6F
	VKF1        VirtualKey = 0x70
	VKF10       VirtualKey = 0x79
	VKF12       VirtualKey = 0x7B
	VKNumLock   VirtualKey = 0x90
	VKScroll    VirtualKey = 0x91
	VKLShift    VirtualKey = 0xA0
	VKRShift    VirtualKey = 0xA1
	VKLControl  VirtualKey = 0xA2
	VKRControl  VirtualKey = 0xA3
	VKLMenu     VirtualKey = 0xA4
	VKRMenu     VirtualKey = 0xA5
	VKOEM1      VirtualKey = 0xBA
	VKOEMPlus   VirtualKey = 0xBB
	VKOEMComma  VirtualKey = 0xBC
	VKOEMMinus  VirtualKey = 0xBD
	VKOEMPeriod VirtualKey = 0xBE
	VKOEM2      VirtualKey = 0xBF
	VKOEM3      VirtualKey = 0xC0
	VKOEM4      VirtualKey = 0xDB
	VKOEM5      VirtualKey = 0xDC
	VKOEM6      VirtualKey = 0xDD
	VKOEM7      VirtualKey = 0xDE
)

// Letter returns the virtual key of an ASCII letter.
func Letter(c byte) VirtualKey {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return VKA + VirtualKey(c-'A')
}

// Digit returns the virtual key of a top-row digit.
func Digit(n int) VirtualKey {
	return VK0 + VirtualKey(n)
}

// Function returns the virtual key of function key Fn, 1 <= n <= 24.
func Function(n int) VirtualKey {
	return VKF1 + VirtualKey(n-1)
}

// keyNames lists the canonical name first, then accepted aliases.
var keyNames = map[VirtualKey][]string{
	VKBack:      {"BACKSPACE", "BACK"},
	VKTab:       {"TAB"},
	VKReturn:    {"ENTER", "RETURN"},
	VKShift:     {"SHIFT"},
	VKControl:   {"CTRL", "CONTROL"},
	VKMenu:      {"ALT", "MENU"},
	VKPause:     {"PAUSE"},
	VKCapital:   {"CAPSLOCK", "CAPITAL"},
	VKEscape:    {"ESC", "ESCAPE"},
	VKSpace:     {"SPACE"},
	VKPrior:     {"PAGEUP", "PRIOR"},
	VKNext:      {"PAGEDOWN", "NEXT"},
	VKEnd:       {"END"},
	VKHome:      {"HOME"},
	VKLeft:      {"LEFT"},
	VKUp:        {"UP"},
	VKRight:     {"RIGHT"},
	VKDown:      {"DOWN"},
	VKSnapshot:  {"PRINTSCREEN", "SNAPSHOT"},
	VKInsert:    {"INSERT"},
	VKDelete:    {"DELETE", "DEL"},
	VKLWin:      {"LWIN", "SUPER", "WIN"},
	VKRWin:      {"RWIN"},
	VKApps:      {"APPS", "MENUKEY"},
	VKMultiply:  {"MULTIPLY"},
	VKAdd:       {"ADD"},
	VKSubtract:  {"SUBTRACT"},
	VKDecimal:   {"DECIMAL"},
	VKDivide:    {"DIVIDE"},
	VKNumLock:   {"NUMLOCK"},
	VKScroll:    {"SCROLLLOCK", "SCROLL"},
	VKLShift:    {"LSHIFT"},
	VKRShift:    {"RSHIFT"},
	VKLControl:  {"LCTRL", "LCONTROL"},
	VKRControl:  {"RCTRL", "RCONTROL"},
	VKLMenu:     {"LALT", "LMENU"},
	VKRMenu:     {"RALT", "RMENU"},
	VKOEM1:      {"SEMICOLON", "OEM_1"},
	VKOEMPlus:   {"EQUAL", "OEM_PLUS"},
	VKOEMComma:  {"COMMA", "OEM_COMMA"},
	VKOEMMinus:  {"MINUS", "OEM_MINUS"},
	VKOEMPeriod: {"PERIOD", "OEM_PERIOD"},
	VKOEM2:      {"SLASH", "OEM_2"},
	VKOEM3:      {"GRAVE", "OEM_3"},
	VKOEM4:      {"LBRACKET", "OEM_4"},
	VKOEM5:      {"BACKSLASH", "OEM_5"},
	VKOEM6:      {"RBRACKET", "OEM_6"},
	VKOEM7:      {"APOSTROPHE", "OEM_7"},
}

var nameKeys = map[string]VirtualKey{}

func init() {
	for c := byte('A'); c <= 'Z'; c++ {
		keyNames[Letter(c)] = []string{string(c)}
	}
	for n := 0; n <= 9; n++ {
		keyNames[Digit(n)] = []string{fmt.Sprint(n)}
		keyNames[VKNumpad0+VirtualKey(n)] = []string{fmt.Sprintf("NUMPAD%d", n)}
	}
	for n := 1; n <= 24; n++ {
		keyNames[Function(n)] = []string{fmt.Sprintf("F%d", n)}
	}
	for vk, names := range keyNames {
		for _, name := range names {
			nameKeys[name] = vk
		}
	}
}

func (k VirtualKey) String() string {
	if names, ok := keyNames[k]; ok {
		return names[0]
	}
	return fmt.Sprintf("VK(%#02x)", uint16(k))
}

// ParseVirtualKey resolves a key name such as "ctrl", "F10" or "a". Names
// are case-insensitive; hexadecimal codes like "0x5B" are accepted too.
func ParseVirtualKey(name string) (VirtualKey, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if vk, ok := nameKeys[upper]; ok {
		return vk, nil
	}
	if hex, ok := strings.CutPrefix(upper, "0X"); ok {
		code, err := strconv.ParseUint(hex, 16, 16)
		if err == nil && code != 0 {
			return VirtualKey(code), nil
		}
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}
