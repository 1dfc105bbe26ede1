package hexdump

import (
	"fmt"

	"github.com/jebreimo/HexPic/pkg/errors"
)

// PositionError reports a failure at a specific byte of the sweep.
// Err is a coded *errors.Error (DATA_INTEGRITY or DRAW_FAILURE), so
// errors.Is(err, code) works through a PositionError.
type PositionError struct {
	Offset  int   // index into the data
	Address int64 // logical address of the byte, or of the label being drawn
	Row     int   // grid row
	Column  int   // grid column, -1 for the address label
	Value   int   // byte value at Offset, or the label value
	Err     error
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	where := fmt.Sprintf("column %d", e.Column)
	if e.Column < 0 {
		where = "address label"
	}
	return fmt.Sprintf("offset %d (address %#x, row %d, %s, value %d): %v",
		e.Offset, e.Address, e.Row, where, e.Value, e.Err)
}

// Unwrap returns the coded cause.
func (e *PositionError) Unwrap() error {
	return e.Err
}

func dataIntegrityError(offset int, address int64, row, col, value int) error {
	return &PositionError{
		Offset:  offset,
		Address: address,
		Row:     row,
		Column:  col,
		Value:   value,
		Err:     errors.New(errors.ErrCodeDataIntegrity, "byte value %d out of range 0..255", value),
	}
}

func drawError(cause error, offset int, address int64, row, col, value int) error {
	return &PositionError{
		Offset:  offset,
		Address: address,
		Row:     row,
		Column:  col,
		Value:   value,
		Err:     errors.Wrap(errors.ErrCodeDrawFailure, cause, "draw glyph"),
	}
}
