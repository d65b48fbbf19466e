package list

import "github.com/sirkon/errors"

const (
	// ErrIndexOutOfRange is returned when an index lies outside the valid range of an operation.
	ErrIndexOutOfRange errors.Const = "index out of range"

	// ErrInvalidOperand is returned when a list operand is missing.
	ErrInvalidOperand errors.Const = "invalid list operand"
)

func errIndex(op string, index, length int) error {
	return errors.Wrap(ErrIndexOutOfRange, op).Int("index", index).Int("length", length)
}

func errOperand(op string) error {
	return errors.Wrap(ErrInvalidOperand, op)
}
