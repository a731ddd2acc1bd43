package source

import "strings"

// File holds one source file's text, split into lines for diagnostic
// rendering. This compiler takes exactly one input file per invocation (see
// the repo's non-goals on multi-file modules), so unlike the teacher's
// FileSet-indexed File this is a single, ungrouped value.
type File struct {
	Path  string
	lines []string
}

// NewFile splits content into lines, ready for positional lookup.
func NewFile(path, content string) *File {
	return &File{Path: path, lines: strings.Split(content, "\n")}
}

// Line returns the 0-based line n, or "" if n is out of range.
func (f *File) Line(n int) string {
	if n < 0 || n >= len(f.lines) {
		return ""
	}
	return f.lines[n]
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lines)
}
