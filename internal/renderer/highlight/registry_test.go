package highlight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"include/util.h", "c"},
		{"widget.cpp", "c"},
		{"script.py", "Py"},
		{"cmd/main.go", "go"},
		{"README", ""},
		{"notes.txt", ""},
		{"", ""},
	}

	for _, tt := range tests {
		s := r.Select(tt.filename)
		if tt.want == "" {
			assert.Nil(t, s, "Select(%q)", tt.filename)
			continue
		}
		require.NotNil(t, s, "Select(%q)", tt.filename)
		assert.Equal(t, tt.want, s.FileType)
	}
}

func TestRegistrySubstringMatch(t *testing.T) {
	r := NewRegistry(Syntax{FileType: "make", FileMatch: []string{"Makefile"}})
	s := r.Select("build/Makefile")
	require.NotNil(t, s)
	assert.Equal(t, "make", s.FileType)
}

func TestRegistryDoesNotAliasCaller(t *testing.T) {
	kws := []string{"alpha"}
	r := NewRegistry(Syntax{FileType: "x", FileMatch: []string{".x"}, Keywords: kws})
	kws[0] = "beta"
	assert.Equal(t, "alpha", r.Lookup("x").Keywords[0])
}

func TestLoadDefinitions(t *testing.T) {
	doc := `
syntaxes:
  - filetype: rust
    filematch: [".rs"]
    keywords: [fn, let, "i32|"]
    singleline_comment: "//"
    multiline_comment: ["/*", "*/"]
    highlight_numbers: true
    highlight_strings: true
`
	defs, err := LoadDefinitions(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	rs := defs[0]
	assert.Equal(t, "rust", rs.FileType)
	assert.Equal(t, "/*", rs.MultiLineCommentStart)
	assert.Equal(t, "*/", rs.MultiLineCommentEnd)
	assert.True(t, rs.Has(HighlightNumbers|HighlightStrings))

	r := NewRegistry(defs...)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "rust", r.Select("lib.rs").FileType)
}

func TestLoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing filetype", "syntaxes:\n  - filematch: [\".x\"]\n"},
		{"missing filematch", "syntaxes:\n  - filetype: x\n"},
		{"bad delimiters", "syntaxes:\n  - filetype: x\n    filematch: [\".x\"]\n    multiline_comment: [\"/*\"]\n"},
		{"unknown field", "syntaxes:\n  - filetype: x\n    colour: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDefinitions(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefinitionsEmpty(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadDefinitionsFile(t *testing.T) {
	dir := t.TempDir()

	defs, err := LoadDefinitionsFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, defs)

	path := filepath.Join(dir, "syntax.yaml")
	require.NoError(t, os.WriteFile(path, []byte("syntaxes:\n  - filetype: sh\n    filematch: [\".sh\"]\n    singleline_comment: \"#\"\n"), 0o644))
	defs, err = LoadDefinitionsFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "#", defs[0].SingleLineComment)
}
