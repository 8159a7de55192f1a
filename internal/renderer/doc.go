// Package renderer draws the active buffer to the terminal.
//
// The renderer is responsible for:
//   - Snapping the scroll offsets so the cursor stays visible
//   - Drawing the visible rows with their highlight colors
//   - Drawing the gutter, the status bar and the message bar
//   - Emitting the whole frame in a single write
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Viewport │ Gutter │ StatusLine         │
//	├─────────────────────────────────────────┤
//	│  AppendBuffer (frame assembly)          │
//	├─────────────────────────────────────────┤
//	│  Backend: Terminal (tcell tty) │ Null   │
//	└─────────────────────────────────────────┘
//
// A frame is built as raw escape sequences. Color changes are emitted
// only when the color differs from the previous byte, and control bytes
// are shown in reverse video as '@'+b (or '?' above 26).
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Resize(term.Size())
//	r.Render(renderer.Frame{Buffer: b, Count: 1, Message: msg.Text()})
package renderer
