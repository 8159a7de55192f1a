package highlight

import "strings"

// Flags selects optional highlighting features of a Syntax.
type Flags uint8

const (
	// HighlightNumbers enables number classification.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings enables quoted string classification.
	HighlightStrings
)

// Syntax is a static, read-only highlighting rule set for one file type.
// Values handed out by a Registry are shared between buffers and must not
// be modified.
type Syntax struct {
	// FileType is the name shown in the status bar.
	FileType string

	// FileMatch entries starting with '.' match the filename extension;
	// other entries match anywhere in the filename.
	FileMatch []string

	// Keywords are matched at separator boundaries. An entry ending in '|'
	// belongs to the secondary keyword class; the marker is not matched.
	Keywords []string

	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string

	Flags Flags
}

// Has reports whether all of the given flags are set.
func (s *Syntax) Has(f Flags) bool {
	return s.Flags&f == f
}

// hasMultiLine reports whether both block comment delimiters are set.
func (s *Syntax) hasMultiLine() bool {
	return s.MultiLineCommentStart != "" && s.MultiLineCommentEnd != ""
}

// Matches reports whether the syntax applies to filename.
func (s *Syntax) Matches(filename string) bool {
	if filename == "" {
		return false
	}
	ext := ""
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = filename[i:]
	}
	for _, m := range s.FileMatch {
		if m == "" {
			continue
		}
		if m[0] == '.' {
			if ext != "" && ext == m {
				return true
			}
			continue
		}
		if strings.Contains(filename, m) {
			return true
		}
	}
	return false
}

// clone returns a deep copy so a registry never aliases caller slices.
func (s Syntax) clone() *Syntax {
	c := s
	c.FileMatch = append([]string(nil), s.FileMatch...)
	c.Keywords = append([]string(nil), s.Keywords...)
	return &c
}

// keyword is a pre-split keyword entry.
type keyword struct {
	text  string
	class Class
}

// splitKeyword separates the secondary marker from a keyword entry.
func splitKeyword(kw string) keyword {
	if strings.HasSuffix(kw, "|") {
		return keyword{text: kw[:len(kw)-1], class: ClassKeyword2}
	}
	return keyword{text: kw, class: ClassKeyword1}
}

// builtins are the syntaxes every registry starts with.
func builtins() []Syntax {
	return []Syntax{
		{
			FileType:  "c",
			FileMatch: []string{".c", ".h", ".cpp", ".hpp"},
			Keywords: []string{
				"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case",

				"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
				"void|",
			},
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			Flags:                 HighlightNumbers | HighlightStrings,
		},
		{
			FileType:  "Py",
			FileMatch: []string{".py"},
			Keywords: []string{
				"and", "assert", "break", "class", "continue", "def", "del", "elif",
				"else", "except", "exec", "finally", "for", "from", "global", "if",
				"import", "in", "is", "lambda", "not", "or", "pass", "print", "raise",
				"return", "try", "while", "with", "yield",
			},
			SingleLineComment: "#",
			Flags:             HighlightNumbers | HighlightStrings,
		},
		{
			FileType:  "go",
			FileMatch: []string{".go"},
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer",
				"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
				"interface", "map", "package", "range", "return", "select", "struct",
				"switch", "type", "var",

				"bool|", "byte|", "error|", "int|", "int64|", "rune|", "string|",
				"uint|", "float64|", "any|", "nil|", "true|", "false|",
			},
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			Flags:                 HighlightNumbers | HighlightStrings,
		},
	}
}
