package layout

// DefaultTabStop is the tab stop width used when none is configured.
const DefaultTabStop = 4

// TabExpander maps between raw byte columns and visual columns.
// The editor model is single-byte-per-column: every byte except a tab
// advances the visual column by exactly one.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabStop
	}
	return &TabExpander{tabWidth: tabWidth}
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// advance returns the visual column after drawing c at visual column col.
// CxToRx, RxToCx and Expand must all go through here so that cursor
// placement and search-result placement agree.
func (t *TabExpander) advance(col int, c byte) int {
	if c == '\t' {
		return t.NextTabStop(col)
	}
	return col + 1
}

// CxToRx converts a raw column into a visual column by replaying the
// characters before it.
func (t *TabExpander) CxToRx(chars []byte, cx int) int {
	if cx > len(chars) {
		cx = len(chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		rx = t.advance(rx, chars[j])
	}
	return rx
}

// RxToCx converts a visual column back into a raw column. It returns the
// first raw column whose post-advance visual position exceeds rx, or
// len(chars) when rx lies past the end of the row.
func (t *TabExpander) RxToCx(chars []byte, rx int) int {
	cur := 0
	for cx, c := range chars {
		cur = t.advance(cur, c)
		if cur > rx {
			return cx
		}
	}
	return len(chars)
}

// Expand returns chars with every tab replaced by spaces up to the next
// tab stop. dst is reused when it has enough capacity.
func (t *TabExpander) Expand(dst, chars []byte) []byte {
	dst = dst[:0]
	for _, c := range chars {
		if c != '\t' {
			dst = append(dst, c)
			continue
		}
		next := t.NextTabStop(len(dst))
		for len(dst) < next {
			dst = append(dst, ' ')
		}
	}
	return dst
}
