package key

import "fmt"

// Key is a logical key code.
type Key int

// Byte-valued keys.
const (
	KeyNone      Key = 0
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 127
)

// Special keys, numbered past the byte range.
const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlArrowLeft
	KeyCtrlArrowRight
	KeyCtrlHome
	KeyCtrlEnd
)

var specialNames = map[Key]string{
	KeyArrowLeft:      "Left",
	KeyArrowRight:     "Right",
	KeyArrowUp:        "Up",
	KeyArrowDown:      "Down",
	KeyDelete:         "Delete",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyCtrlArrowLeft:  "Ctrl+Left",
	KeyCtrlArrowRight: "Ctrl+Right",
	KeyCtrlHome:       "Ctrl+Home",
	KeyCtrlEnd:        "Ctrl+End",
}

// Ctrl returns the key code produced by holding Ctrl with c.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsSpecial reports whether k is outside the byte range.
func (k Key) IsSpecial() bool {
	return k >= KeyArrowLeft
}

// IsPrintable reports whether k inserts itself as text.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7f
}

// IsControl reports whether k is a control combination or other
// non-printable byte.
func (k Key) IsControl() bool {
	return (k >= 0 && k < 0x20) || k == KeyBackspace
}

// Byte returns the byte value of a byte-valued key.
func (k Key) Byte() byte {
	return byte(k)
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	}
	if name, ok := specialNames[k]; ok {
		return name
	}
	if k > 0 && k < 0x20 {
		return fmt.Sprintf("Ctrl+%c", byte(k)|0x40)
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
