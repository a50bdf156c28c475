// Package vmath implements deterministic Q32.32 fixed-point math: the Fixed scalar, its
// elementary functions, 3/4-component vectors and 4x4 matrices.
//
// A Fixed is an int64 holding value × 2^32. The high 32 bits are the signed integer part, the
// low 32 bits the unsigned fraction. Every operation is integer arithmetic on that
// representation, so results are bit-identical on any platform and optimization level.
//
// Data-dependent failures (overflow, division by zero, domain, singular matrix) are returned
// as errors matching ErrOverflow, ErrDivideByZero, ErrDomain and ErrSingularMatrix under
// errors.Is. Violated internal preconditions panic.
//
// Asin, Acos, Atan, Atan2 and Vec3.Angle go through float64 and are not deterministic.
package vmath
