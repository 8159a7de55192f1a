// Package gutter draws the line-number column left of the text.
package gutter

import "strconv"

// Config configures the gutter.
type Config struct {
	// ShowLineNumbers enables the line-number column.
	ShowLineNumbers bool

	// Separator is written after each line number.
	Separator byte
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers: true,
		Separator:       ' ',
	}
}

// Gutter formats zero-padded line numbers.
type Gutter struct {
	config    Config
	lineCount int
	width     int
}

// New creates a new gutter.
func New(config Config) *Gutter {
	g := &Gutter{config: config}
	g.width = g.lineNumberWidth()
	return g
}

// Config returns the gutter configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetConfig replaces the configuration.
func (g *Gutter) SetConfig(config Config) {
	g.config = config
	g.width = g.lineNumberWidth()
}

// SetLineCount updates the number of lines, which determines the number
// of digits drawn.
func (g *Gutter) SetLineCount(count int) {
	g.lineCount = count
	g.width = g.lineNumberWidth()
}

// LineNumberWidth returns the number of digits in the line count, or 0
// when line numbers are hidden.
func (g *Gutter) LineNumberWidth() int {
	return g.width
}

// Width returns the total number of screen columns used, including the
// separator.
func (g *Gutter) Width() int {
	if g.width == 0 {
		return 0
	}
	return g.width + 1
}

// Append appends the gutter for the 0-based line to dst.
func (g *Gutter) Append(dst []byte, line int) []byte {
	if g.width == 0 {
		return dst
	}
	return append(AppendNumber(dst, line+1, g.width), g.config.Separator)
}

func (g *Gutter) lineNumberWidth() int {
	if !g.config.ShowLineNumbers {
		return 0
	}
	return CountDigits(g.lineCount)
}

// CountDigits returns the number of decimal digits in n. 0 has one digit.
func CountDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// AppendNumber appends n zero-padded to width digits.
func AppendNumber(dst []byte, n, width int) []byte {
	for pad := width - CountDigits(n); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(n), 10)
}
