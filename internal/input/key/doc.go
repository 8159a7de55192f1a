// Package key provides logical key codes and the decoder that produces
// them from raw terminal input.
//
// A Key is either a byte value (printable characters and control
// combinations such as Ctrl-S) or one of a fixed set of special keys
// (arrows, Home, End, Page-Up/Down, Delete) numbered above the byte range.
//
// # Escape Sequences
//
// The Decoder recognises the common VT100/xterm forms:
//
//   - "ESC [ A" .. "ESC [ D" and "ESC O A" .. "ESC O D" for arrows
//   - "ESC [ H", "ESC [ F", "ESC O H", "ESC O F" for Home/End
//   - "ESC [ n ~" for Home (1, 7), Delete (3), End (4, 8), Page-Up (5), Page-Down (6)
//   - "ESC [ 1 ; 5 X" for Ctrl-modified arrows, Home and End
//
// Anything else starting with ESC decodes as Escape.
package key
