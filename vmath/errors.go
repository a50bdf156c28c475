package vmath

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOverflow reports a result outside the representable Q32.32 range
	ErrOverflow = errors.New("fixed-point overflow")
	// ErrDivideByZero reports division or normalization by zero
	ErrDivideByZero = errors.New("division by zero")
	// ErrDomain reports an argument outside the function's domain
	ErrDomain = errors.New("argument outside domain")
	// ErrSingularMatrix reports inversion of a matrix with zero determinant
	ErrSingularMatrix = errors.New("singular matrix")
)

func overflowf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

func divideByZerof(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDivideByZero, format, args...)
}

func domainf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDomain, format, args...)
}
