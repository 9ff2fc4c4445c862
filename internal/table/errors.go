package table

import "fmt"

// ColumnNotFoundError reports a reference to a column the table does not
// have. The reference files do not share a column set, so every aggregation
// entry point checks its required columns before doing any work.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// MalformedInputError reports a row whose field count disagrees with the
// header under strict parsing.
type MalformedInputError struct {
	Line int // 1-based line number in the source, header is line 1
	Want int
	Got  int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("line %d: %d fields, header has %d", e.Line, e.Got, e.Want)
}
