package filemap

import (
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// FileMap is a line-start index over a source text.
//
// positions[i] is the byte offset where the i-th recorded line starts and
// lines[i] its 1-based line number. The last entry is a sentinel holding
// the end-of-text offset and the number of the final line.
type FileMap struct {
	source    string
	positions []int
	lines     []int
}

// OfString scans text once and records the start of every line.
func OfString(text string) *FileMap {
	positions := []int{0}
	lines := []int{1}
	line := 1

	for i := 0; ; {
		nl := strings.IndexByte(text[i:], '\n')
		if nl < 0 {
			break
		}
		i += nl + 1
		line++
		positions = append(positions, i)
		lines = append(lines, line)
	}
	positions = append(positions, len(text))
	lines = append(lines, line)

	return &FileMap{source: text, positions: positions, lines: lines}
}

// ToFileMap is an alias of OfString.
func ToFileMap(text string) *FileMap {
	return OfString(text)
}

// Source returns the indexed text.
func (m *FileMap) Source() string {
	if m == nil {
		return ""
	}
	return m.source
}

// LineCount returns the number of lines in the text. An empty text has one.
func (m *FileMap) LineCount() int {
	if m == nil || len(m.lines) == 0 {
		return 1
	}
	return m.lines[len(m.lines)-1]
}

// ToPosition returns the line and column of the byte at offset.
//
// A map without a line table (the zero value) treats the text as a single
// line, so the column is the offset itself. Offsets past the end of the
// text resolve to the end of the last line; negative offsets to the start.
func (m *FileMap) ToPosition(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if m == nil || len(m.positions) < 2 {
		return Position{Line: 1, Column: offset}
	}

	last := len(m.positions) - 1
	if offset > m.positions[last] {
		offset = m.positions[last]
	}

	lo, hi := 0, last
	for hi != lo+1 {
		mid := (lo + hi) / 2
		p := m.positions[mid]
		if offset == p {
			return Position{Line: m.lines[mid], Column: 0}
		}
		if offset > p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Position{Line: m.lines[lo], Column: m.toColumn(m.positions[lo], offset)}
}

// toColumn counts the runes between from and offset, stopping early at the
// end of the text.
func (m *FileMap) toColumn(from, offset int) int {
	col := 0
	for i := from; i < offset && i < len(m.source); col++ {
		_, size := utf8.DecodeRuneInString(m.source[i:])
		i += size
	}
	return col
}

// HCLPos converts offset into an hcl.Pos. HCL columns are 1-based.
func (m *FileMap) HCLPos(offset int) hcl.Pos {
	p := m.ToPosition(offset)
	if offset < 0 {
		offset = 0
	}
	if end := len(m.Source()); m != nil && len(m.positions) >= 2 && offset > end {
		offset = end
	}
	return hcl.Pos{Line: p.Line, Column: p.Column + 1, Byte: offset}
}

// Range builds an hcl.Range covering [start, end) in filename.
func (m *FileMap) Range(filename string, start, end int) hcl.Range {
	if end < start {
		end = start
	}
	return hcl.Range{
		Filename: filename,
		Start:    m.HCLPos(start),
		End:      m.HCLPos(end),
	}
}
