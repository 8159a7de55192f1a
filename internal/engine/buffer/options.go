package buffer

import (
	"github.com/dshills/jdedit/internal/renderer/highlight"
	"github.com/dshills/jdedit/internal/renderer/layout"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabStop sets the buffer's tab stop width.
func WithTabStop(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabs = layout.NewTabExpander(width)
		}
	}
}

// WithGutter enables or disables the line-number gutter.
func WithGutter(enabled bool) Option {
	return func(b *Buffer) {
		b.gutter = enabled
	}
}

// WithFilename sets the buffer's filename without loading it.
func WithFilename(name string) Option {
	return func(b *Buffer) {
		b.filename = name
	}
}

// WithSyntax sets the buffer's highlighting rules.
func WithSyntax(s *highlight.Syntax) Option {
	return func(b *Buffer) {
		b.syntax = s
	}
}
