package highlight

import "sort"

// Theme maps highlight classes to SGR foreground color codes.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	colors [classCount]int
}

// DefaultTheme returns the standard 8-color theme.
func DefaultTheme() *Theme {
	t := &Theme{Name: "default"}
	t.colors = [classCount]int{
		ClassNormal:    37,
		ClassComment:   32,
		ClassMLComment: 32,
		ClassKeyword1:  34,
		ClassKeyword2:  35,
		ClassString:    33,
		ClassNumber:    31,
		ClassMatch:     36,
	}
	return t
}

// Color returns the SGR color code for a class.
// Unknown classes use the normal color.
func (t *Theme) Color(c Class) int {
	if c >= classCount {
		c = ClassNormal
	}
	return t.colors[c]
}

// WithColor returns a copy of the theme with one class recolored.
func (t *Theme) WithColor(c Class, sgr int) *Theme {
	nt := *t
	if c < classCount {
		nt.colors[c] = sgr
	}
	return &nt
}

// WithOverrides applies a name→SGR map on top of the theme.
// Unknown class names are returned so the caller can report them.
func (t *Theme) WithOverrides(overrides map[string]int) (*Theme, []string) {
	nt := t
	var unknown []string
	for name, sgr := range overrides {
		c, ok := ParseClass(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		nt = nt.WithColor(c, sgr)
	}
	sort.Strings(unknown)
	return nt, unknown
}
