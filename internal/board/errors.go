package board

import "fmt"

// IndexOutOfBoundsError reports an attempt to address a column or card
// position that does not exist.
type IndexOutOfBoundsError struct {
	Index int
	Max   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, max %d", e.Index, e.Max)
}

// InvalidFormatError reports a board file whose contents could not be
// decoded.
type InvalidFormatError struct {
	FileName string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid file format: %s: %v", e.FileName, e.Err)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

func outOfBounds(index, size int) *IndexOutOfBoundsError {
	return &IndexOutOfBoundsError{Index: index, Max: max(size-1, 0)}
}
