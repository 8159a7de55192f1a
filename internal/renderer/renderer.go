package renderer

import (
	"errors"
	"io"
	"strconv"

	"github.com/dshills/jdedit/internal/engine/buffer"
	"github.com/dshills/jdedit/internal/renderer/backend"
	"github.com/dshills/jdedit/internal/renderer/gutter"
	"github.com/dshills/jdedit/internal/renderer/highlight"
	"github.com/dshills/jdedit/internal/renderer/statusline"
	"github.com/dshills/jdedit/internal/renderer/viewport"
)

// ErrNoBuffer is returned when a frame has no buffer to draw.
var ErrNoBuffer = errors.New("no buffer to render")

// Rows taken by the status bar and the message bar.
const barRows = 2

// Options configures the renderer.
type Options struct {
	// Theme maps highlight classes to colors.
	Theme *highlight.Theme

	// Welcome is drawn centered one third down an empty buffer.
	// Empty disables the banner.
	Welcome string

	// FrameLimit caps the frame size in bytes (0 = unlimited).
	FrameLimit int

	// GutterSeparator follows each line number.
	GutterSeparator byte
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Theme:           highlight.DefaultTheme(),
		Welcome:         "jdedit",
		GutterSeparator: ' ',
	}
}

// Frame is everything drawn in one refresh.
type Frame struct {
	Buffer *buffer.Buffer

	// Index and Count position the buffer among the open buffers.
	Index int
	Count int

	// Message is the message bar text, already filtered for expiry.
	Message string
}

// Renderer assembles frames and writes them to out.
type Renderer struct {
	opts Options
	out  io.Writer
	ab   *backend.AppendBuffer

	gutter *gutter.Gutter

	// Terminal size.
	rows, cols int

	frameCount  uint64
	lastDropped int
	num         []byte
}

// New creates a renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	if opts.Theme == nil {
		opts.Theme = highlight.DefaultTheme()
	}
	if opts.GutterSeparator == 0 {
		opts.GutterSeparator = ' '
	}
	ab := backend.NewAppendBuffer(16 * 1024)
	ab.Limit = opts.FrameLimit
	return &Renderer{
		opts:   opts,
		out:    out,
		ab:     ab,
		gutter: gutter.New(gutter.Config{ShowLineNumbers: true, Separator: opts.GutterSeparator}),
	}
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Resize sets the terminal size.
func (r *Renderer) Resize(rows, cols int) {
	r.rows = max(rows, 0)
	r.cols = max(cols, 0)
}

// Size returns the terminal size.
func (r *Renderer) Size() (rows, cols int) {
	return r.rows, r.cols
}

// TextRows returns the number of rows available for text.
func (r *Renderer) TextRows() int {
	return max(r.rows-barRows, 0)
}

// FrameCount returns the number of frames written.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// LastDropped returns how many appends the last frame lost to FrameLimit.
func (r *Renderer) LastDropped() int {
	return r.lastDropped
}

// prepareGutter configures the gutter for b and returns its width.
func (r *Renderer) prepareGutter(b *buffer.Buffer) int {
	r.gutter.SetConfig(gutter.Config{
		ShowLineNumbers: b.GutterEnabled(),
		Separator:       r.opts.GutterSeparator,
	})
	r.gutter.SetLineCount(b.NumRows())
	return r.gutter.Width()
}

// Viewport returns the text area for b, excluding its gutter.
func (r *Renderer) Viewport(b *buffer.Buffer) viewport.Viewport {
	return viewport.New(r.TextRows(), r.cols).Shrink(r.prepareGutter(b))
}

// Scroll updates b's visual column and snaps its offsets so the cursor
// is visible.
func (r *Renderer) Scroll(b *buffer.Buffer) {
	_, cy := b.Cursor()
	rx := b.UpdateRX()
	row, col := b.Offsets()
	o := r.Viewport(b).Scroll(viewport.Offsets{Row: row, Col: col}, cy, rx)
	b.SetOffsets(o.Row, o.Col)
}

// Render scrolls, assembles and writes one frame.
func (r *Renderer) Render(f Frame) error {
	b := f.Buffer
	if b == nil {
		return ErrNoBuffer
	}

	r.Scroll(b)
	vp := r.Viewport(b)
	gutterWidth := r.gutter.Width()
	rowOff, colOff := b.Offsets()

	ab := r.ab
	ab.Reset()
	ab.AppendString(backend.SeqHideCursor)
	ab.AppendString(backend.SeqCursorHome)

	r.drawRows(b, vp, rowOff, colOff)
	r.drawStatusBar(f)
	r.drawMessageBar(f.Message)

	// No gutter is drawn on rows past the end of the buffer.
	_, cy := b.Cursor()
	if cy >= b.NumRows() {
		gutterWidth = 0
	}
	r.appendCursorPosition(cy-rowOff+1, b.RX()-colOff+gutterWidth+1)
	ab.AppendString(backend.SeqShowCursor)

	r.lastDropped = ab.Dropped()
	r.frameCount++
	return ab.Flush(r.out)
}

func (r *Renderer) drawRows(b *buffer.Buffer, vp viewport.Viewport, rowOff, colOff int) {
	ab := r.ab
	for y := 0; y < vp.Rows; y++ {
		fileRow := y + rowOff
		if fileRow >= b.NumRows() {
			if b.NumRows() == 0 && y == vp.Rows/3 && r.opts.Welcome != "" {
				r.drawWelcome()
			} else {
				ab.AppendByte('~')
			}
		} else {
			r.num = r.gutter.Append(r.num[:0], fileRow)
			ab.Append(r.num)
			r.drawRow(b.Row(fileRow), colOff, vp.Cols)
		}
		ab.AppendString(backend.SeqEraseLine)
		ab.AppendString("\r\n")
	}
}

func (r *Renderer) drawWelcome() {
	welcome := r.opts.Welcome
	if len(welcome) > r.cols {
		welcome = welcome[:r.cols]
	}
	padding := (r.cols - len(welcome)) / 2
	if padding > 0 {
		r.ab.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.ab.AppendByte(' ')
	}
	r.ab.AppendString(welcome)
}

// drawRow draws the part of row starting at render column colOff, at most
// width bytes.
func (r *Renderer) drawRow(row *buffer.Row, colOff, width int) {
	ab := r.ab
	render := row.Render()
	hl := row.Highlight()

	start := min(colOff, len(render))
	end := min(start+width, len(render))
	current := -1
	for j := start; j < end; j++ {
		c := render[j]
		switch {
		case isControl(c):
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			ab.AppendString(backend.SeqInvert)
			ab.AppendByte(sym)
			ab.AppendString(backend.SeqResetStyle)
			if current != -1 {
				r.appendColor(current)
			}
		case hl[j] == highlight.ClassNormal:
			if current != -1 {
				ab.AppendString(backend.SeqDefaultFG)
				current = -1
			}
			ab.AppendByte(c)
		default:
			color := r.opts.Theme.Color(hl[j])
			if color != current {
				current = color
				r.appendColor(color)
			}
			ab.AppendByte(c)
		}
	}
	ab.AppendString(backend.SeqDefaultFG)
}

func (r *Renderer) drawStatusBar(f Frame) {
	b := f.Buffer
	_, cy := b.Cursor()
	info := statusline.Info{
		Filename:    b.Filename(),
		NumRows:     b.NumRows(),
		Modified:    b.IsDirty(),
		FileType:    b.FileType(),
		Line:        cy,
		BufferIndex: f.Index,
		BufferCount: max(f.Count, 1),
	}
	r.ab.AppendString(backend.SeqInvert)
	r.num = statusline.Compose(r.num[:0], info, r.cols)
	r.ab.Append(r.num)
	r.ab.AppendString(backend.SeqResetStyle)
	r.ab.AppendString("\r\n")
}

func (r *Renderer) drawMessageBar(msg string) {
	r.ab.AppendString(backend.SeqEraseLine)
	if len(msg) > r.cols {
		msg = msg[:r.cols]
	}
	r.ab.AppendString(msg)
}

func (r *Renderer) appendColor(sgr int) {
	r.num = append(r.num[:0], "\x1b["...)
	r.num = strconv.AppendInt(r.num, int64(sgr), 10)
	r.num = append(r.num, 'm')
	r.ab.Append(r.num)
}

func (r *Renderer) appendCursorPosition(row, col int) {
	r.num = append(r.num[:0], "\x1b["...)
	r.num = strconv.AppendInt(r.num, int64(row), 10)
	r.num = append(r.num, ';')
	r.num = strconv.AppendInt(r.num, int64(col), 10)
	r.num = append(r.num, 'H')
	r.ab.Append(r.num)
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
