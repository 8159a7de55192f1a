// Package highlight provides syntax highlighting for the renderer.
//
// Highlighting is a per-byte classification of a row's rendered text. A
// Syntax describes the rules for one file type; Scan applies them to one
// row, carrying only the open-multiline-comment flag between rows.
package highlight

// Class is the highlight class of a single rendered byte.
type Class uint8

// Highlight classes.
const (
	ClassNormal Class = iota
	ClassComment
	ClassMLComment
	ClassKeyword1
	ClassKeyword2
	ClassString
	ClassNumber
	ClassMatch

	// Sentinel for iteration
	classCount
)

var classNames = [classCount]string{
	ClassNormal:    "normal",
	ClassComment:   "comment",
	ClassMLComment: "mlcomment",
	ClassKeyword1:  "keyword1",
	ClassKeyword2:  "keyword2",
	ClassString:    "string",
	ClassNumber:    "number",
	ClassMatch:     "match",
}

// String returns the string representation of a class.
func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return "unknown"
}

// IsComment returns true for single-line and multiline comment classes.
func (c Class) IsComment() bool {
	return c == ClassComment || c == ClassMLComment
}

// ParseClass converts a class name back into a Class.
func ParseClass(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return ClassNormal, false
}
