package highlight

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry is the process-wide set of syntaxes. It is built once at
// startup and is read-only afterwards.
type Registry struct {
	entries []*Syntax
}

// NewRegistry creates a registry holding the built-in syntaxes followed
// by extra. Earlier entries win when several match a filename.
func NewRegistry(extra ...Syntax) *Registry {
	r := &Registry{}
	for _, s := range builtins() {
		r.entries = append(r.entries, s.clone())
	}
	for _, s := range extra {
		r.entries = append(r.entries, s.clone())
	}
	return r
}

// Len returns the number of registered syntaxes.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Select returns the first syntax matching filename, or nil.
func (r *Registry) Select(filename string) *Syntax {
	if r == nil || filename == "" {
		return nil
	}
	for _, s := range r.entries {
		if s.Matches(filename) {
			return s
		}
	}
	return nil
}

// Lookup returns the syntax with the given file type name, or nil.
func (r *Registry) Lookup(fileType string) *Syntax {
	if r == nil {
		return nil
	}
	for _, s := range r.entries {
		if s.FileType == fileType {
			return s
		}
	}
	return nil
}

// definition is the on-disk form of a user syntax.
type definition struct {
	FileType          string   `yaml:"filetype"`
	FileMatch         []string `yaml:"filematch"`
	Keywords          []string `yaml:"keywords"`
	SingleLineComment string   `yaml:"singleline_comment"`
	MultiLineComment  []string `yaml:"multiline_comment"`
	Numbers           bool     `yaml:"highlight_numbers"`
	Strings           bool     `yaml:"highlight_strings"`
}

// definitionFile is the top-level document of a syntax file.
type definitionFile struct {
	Syntaxes []definition `yaml:"syntaxes"`
}

func (d definition) toSyntax() (Syntax, error) {
	if d.FileType == "" {
		return Syntax{}, fmt.Errorf("syntax definition missing filetype")
	}
	if len(d.FileMatch) == 0 {
		return Syntax{}, fmt.Errorf("syntax %q: filematch is empty", d.FileType)
	}
	s := Syntax{
		FileType:          d.FileType,
		FileMatch:         d.FileMatch,
		Keywords:          d.Keywords,
		SingleLineComment: d.SingleLineComment,
	}
	switch len(d.MultiLineComment) {
	case 0:
	case 2:
		s.MultiLineCommentStart = d.MultiLineComment[0]
		s.MultiLineCommentEnd = d.MultiLineComment[1]
	default:
		return Syntax{}, fmt.Errorf("syntax %q: multiline_comment needs start and end", d.FileType)
	}
	if d.Numbers {
		s.Flags |= HighlightNumbers
	}
	if d.Strings {
		s.Flags |= HighlightStrings
	}
	return s, nil
}

// LoadDefinitions parses user syntax definitions from YAML.
//
// Example:
//
//	syntaxes:
//	  - filetype: rust
//	    filematch: [".rs"]
//	    keywords: [fn, let, match, "i32|"]
//	    singleline_comment: "//"
//	    multiline_comment: ["/*", "*/"]
//	    highlight_numbers: true
//	    highlight_strings: true
func LoadDefinitions(r io.Reader) ([]Syntax, error) {
	var file definitionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing syntax definitions: %w", err)
	}

	syntaxes := make([]Syntax, 0, len(file.Syntaxes))
	for _, d := range file.Syntaxes {
		s, err := d.toSyntax()
		if err != nil {
			return nil, err
		}
		syntaxes = append(syntaxes, s)
	}
	return syntaxes, nil
}

// LoadDefinitionsFile reads user syntax definitions from path.
// A missing file yields no definitions and no error.
func LoadDefinitionsFile(path string) ([]Syntax, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening syntax file %s: %w", path, err)
	}
	defer f.Close()

	return LoadDefinitions(f)
}
