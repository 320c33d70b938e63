package filemap

import "fmt"

// Position is a location in a source text. Line is 1-based, Column counts
// runes from the start of the line and is 0-based.
type Position struct {
	Line   int
	Column int
}

// Start is the position of the first character of a text.
var Start = Position{Line: 1, Column: 0}

// Less orders positions by line, then column.
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

func (p Position) String() string {
	return fmt.Sprintf("⟨%d, %d⟩", p.Line, p.Column)
}
