package token

import "fmt"

// Position is a byte-accurate location in a preprocessed translation unit.
//
// Row and Col are 1-indexed and track #line-adjusted source coordinates;
// Offset is the raw byte offset into the input buffer and is never
// affected by #line (it always reflects the physical position).
type Position struct {
	File   string
	Row    int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Row, p.Col)
}

// WithLine returns a copy of p with Row/Col replaced per a #line directive.
// If file equals p.File the receiver's File value is reused so callers
// sharing one input do not accumulate duplicate file-name strings.
func (p Position) WithLine(row int, file string) Position {
	if file == p.File {
		file = p.File
	}
	return Position{File: file, Row: row, Col: 1, Offset: p.Offset}
}
