package grammar

import "fmt"

// Pos represents a position in the grammar source file.
// The zero value is an invalid position.
type Pos struct {
	line int // 1-based line number
	col  int // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given line and column.
// Line and column numbers are 1-based.
func NewPos(line, col int) Pos {
	return Pos{line: line, col: col}
}

// String returns a string representation of the position in the
// format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if both line and column are >= 1.
func (p Pos) IsValid() bool {
	return p.line > 0 && p.col > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() int {
	return p.col
}
