package highlight

import (
	"bytes"
	"strings"
)

const separatorPunct = ",.()+-/*=~%<>[];:"

// IsSeparator reports whether c delimits keywords and numbers.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separatorPunct, c) >= 0
}

// Scan classifies every byte of render into hl and returns whether a
// multiline comment is still open at the end of the row. inComment is the
// open-comment flag of the previous row. hl must have the same length as
// render. A nil Syntax classifies everything as normal.
func (s *Syntax) Scan(render []byte, hl []Class, inComment bool) bool {
	for i := range hl {
		hl[i] = ClassNormal
	}
	if s == nil {
		return false
	}

	scs := []byte(s.SingleLineComment)
	mcs := []byte(s.MultiLineCommentStart)
	mce := []byte(s.MultiLineCommentEnd)
	multiLine := s.hasMultiLine()
	strs := s.Has(HighlightStrings)
	nums := s.Has(HighlightNumbers)

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHL := ClassNormal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				fill(hl[i:], ClassComment)
				break
			}
		}

		if multiLine && inString == 0 {
			if inComment {
				hl[i] = ClassMLComment
				if bytes.HasPrefix(render[i:], mce) {
					fill(hl[i:i+len(mce)], ClassMLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				fill(hl[i:i+len(mcs)], ClassMLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if strs {
			if inString != 0 {
				hl[i] = ClassString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = ClassString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = ClassString
				i++
				continue
			}
		}

		if nums {
			if (isDigit(c) && (prevSep || prevHL == ClassNumber)) ||
				(c == '.' && prevHL == ClassNumber) {
				hl[i] = ClassNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, class, ok := s.matchKeyword(render, i); ok {
				fill(hl[i:i+n], class)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return inComment
}

// matchKeyword finds the first keyword starting at render[i] that is
// followed by a separator or the end of the row.
func (s *Syntax) matchKeyword(render []byte, i int) (int, Class, bool) {
	for _, entry := range s.Keywords {
		kw := splitKeyword(entry)
		n := len(kw.text)
		if n == 0 || i+n > len(render) {
			continue
		}
		if string(render[i:i+n]) != kw.text {
			continue
		}
		if i+n < len(render) && !IsSeparator(render[i+n]) {
			continue
		}
		return n, kw.class, true
	}
	return 0, ClassNormal, false
}

func fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
