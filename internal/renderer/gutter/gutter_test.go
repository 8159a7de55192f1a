package gutter

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowLineNumbers {
		t.Error("ShowLineNumbers should be true by default")
	}
	if cfg.Separator != ' ' {
		t.Errorf("expected space separator, got %q", cfg.Separator)
	}
}

func TestGutterSetLineCount(t *testing.T) {
	g := New(DefaultConfig())

	if g.Width() != 2 {
		t.Errorf("expected width 2 for empty buffer, got %d", g.Width())
	}

	g.SetLineCount(9)
	if g.LineNumberWidth() != 1 {
		t.Errorf("expected 1 digit for 9 lines, got %d", g.LineNumberWidth())
	}

	g.SetLineCount(1000)
	if g.LineNumberWidth() != 4 {
		t.Errorf("expected 4 digits for 1000 lines, got %d", g.LineNumberWidth())
	}
	if g.Width() != 5 {
		t.Errorf("expected width 5 for 1000 lines, got %d", g.Width())
	}
}

func TestGutterHidden(t *testing.T) {
	g := New(Config{ShowLineNumbers: false, Separator: ' '})
	g.SetLineCount(500)

	if g.Width() != 0 {
		t.Errorf("expected hidden gutter to use no columns, got %d", g.Width())
	}
	if out := g.Append([]byte("x"), 3); string(out) != "x" {
		t.Errorf("hidden gutter should append nothing, got %q", out)
	}
}

func TestGutterAppend(t *testing.T) {
	g := New(DefaultConfig())
	g.SetLineCount(120)

	tests := []struct {
		line int
		want string
	}{
		{0, "001 "},
		{8, "009 "},
		{41, "042 "},
		{119, "120 "},
	}

	for _, tt := range tests {
		got := string(g.Append(nil, tt.line))
		if got != tt.want {
			t.Errorf("Append(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSetConfig(t *testing.T) {
	g := New(DefaultConfig())
	g.SetLineCount(50)

	g.SetConfig(Config{ShowLineNumbers: true, Separator: '|'})
	if got := string(g.Append(nil, 4)); got != "05|" {
		t.Errorf("expected custom separator, got %q", got)
	}
}

func TestCountDigits(t *testing.T) {
	tests := map[int]int{0: 1, 9: 1, 10: 2, 99: 2, 100: 3, 123456: 6}
	for n, want := range tests {
		if got := CountDigits(n); got != want {
			t.Errorf("CountDigits(%d) = %d, want %d", n, got, want)
		}
	}
}
