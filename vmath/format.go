package vmath

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// String returns the exact decimal expansion of f; a 32-bit binary fraction needs at most
// 32 decimal digits
func (f Fixed) String() string {
	var sb strings.Builder
	m := magnitude(f)
	if f < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(m>>Shift, 10))

	frac := m & uint64(FracMask)
	if frac != 0 {
		sb.WriteByte('.')
		for frac != 0 {
			frac *= 10
			sb.WriteByte(byte('0' + frac>>Shift))
			frac &= uint64(FracMask)
		}
	}
	return sb.String()
}

var (
	parseCtx = apd.BaseContext.WithPrecision(64)
	twoTo32  = apd.New(int64(One), 0)
)

// ParseFixed converts a decimal string to Fixed, truncating digits below 2^-32 toward zero
// like FromFloat
func ParseFixed(s string) (Fixed, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "parse fixed %q", s)
	}
	if d.Form != apd.Finite {
		return 0, errors.Wrapf(ErrDomain, "parse fixed %q", s)
	}

	var scaled, whole, frac apd.Decimal
	if _, err := parseCtx.Mul(&scaled, d, twoTo32); err != nil {
		return 0, errors.Wrapf(err, "parse fixed %q", s)
	}
	scaled.Modf(&whole, &frac)
	raw, err := whole.Int64()
	if err != nil {
		return 0, overflowf("parse fixed %q", s)
	}
	return Fixed(raw), nil
}

// MustParseFixed is ParseFixed for constants known to be valid; it panics on error
func MustParseFixed(s string) Fixed {
	v, err := ParseFixed(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fixed) UnmarshalText(text []byte) error {
	v, err := ParseFixed(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
