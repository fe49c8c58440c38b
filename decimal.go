package measure

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by [Decimal.Quo] when the divisor is 0.
var ErrDivisionByZero = errors.New("division by zero")

var (
	errInvalidRounding = errors.New("invalid rounding mode")
	errInvalidBackend  = errors.New("invalid decimal backend")
)

// RoundingMode selects how [Decimal.Round] resolves digits beyond the
// requested number of decimal places.
// The zero value is [HalfUp].
type RoundingMode uint8

const (
	HalfUp  RoundingMode = iota // ties away from zero
	Floor                       // toward negative infinity
	Ceil                        // toward positive infinity
	Bankers                     // ties to even
)

var roundingNames = [...]string{
	HalfUp:  "halfUp",
	Floor:   "floor",
	Ceil:    "ceil",
	Bankers: "bankers",
}

// ParseRoundingMode converts a string to a rounding mode.
// The input is matched case-insensitively against
//
//	halfUp
//	floor
//	ceil
//	bankers
//
// ParseRoundingMode returns an error if the string is not one of these names.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingNames {
		if strings.EqualFold(s, name) {
			return RoundingMode(m), nil //nolint:gosec
		}
	}
	return HalfUp, fmt.Errorf("%w: %q", errInvalidRounding, s)
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(roundingNames) {
		return nil, fmt.Errorf("marshaling %v: %w", m, errInvalidRounding)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", HalfUp, err)
	}
	return nil
}

// Decimal is an immutable decimal number produced by a [Backend].
// Every operation returns a new value and leaves its operands untouched,
// so decimals are safe for concurrent use by multiple goroutines.
//
// Operands are expected to come from the same backend.
// When they do not, the operation is carried out in float64 and the result
// belongs to [FloatBackend].
type Decimal interface {
	// Add returns d + e.
	Add(e Decimal) Decimal
	// Sub returns d - e.
	Sub(e Decimal) Decimal
	// Mul returns d * e.
	Mul(e Decimal) Decimal
	// Quo returns d / e, or an error if e is 0.
	Quo(e Decimal) (Decimal, error)
	// Abs returns |d|.
	Abs() Decimal
	// Sign returns -1, 0 or +1.
	Sign() int
	// Cmp compares d and e numerically.
	Cmp(e Decimal) int
	// Round returns d rounded to the given number of decimal places.
	Round(places int, mode RoundingMode) Decimal
	// FixedString renders d in fixed-point notation with exactly the given
	// number of decimal places, rounding half up.
	FixedString(places int) string
	// ExpString renders d in exponential notation with the given number of
	// mantissa decimal places, rounding half up.
	ExpString(places int) string
	// Float64 returns the nearest float64.
	Float64() float64
	// String returns a lossless representation accepted by [Sanitize].
	String() string
}

// Backend creates decimals of one implementation.
type Backend interface {
	// Name returns the name accepted by [ParseBackend].
	Name() string
	// Parse converts a canonical decimal string, as returned by [Sanitize],
	// to a decimal.
	Parse(s string) (Decimal, error)
}

// ParseBackend returns the backend with the given name:
//
//	big      arbitrary precision, 34 significant digits (default)
//	compact  19 significant digits, allocation free
//	float    native float64
//
// ParseBackend returns an error for any other name.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BigBackend.Name():
		return BigBackend, nil
	case CompactBackend.Name():
		return CompactBackend, nil
	case FloatBackend.Name():
		return FloatBackend, nil
	}
	return nil, fmt.Errorf("%w: %q", errInvalidBackend, name)
}

// MustParseBackend is like [ParseBackend] but panics if the name is unknown.
func MustParseBackend(name string) Backend {
	b, err := ParseBackend(name)
	if err != nil {
		panic(fmt.Sprintf("ParseBackend(%q) failed: %v", name, err))
	}
	return b
}

// backendOf returns the backend that produced d, or nil for foreign
// implementations.
func backendOf(d Decimal) Backend {
	switch d.(type) {
	case bigDecimal:
		return BigBackend
	case compactDecimal:
		return CompactBackend
	case floatDecimal:
		return FloatBackend
	}
	return nil
}

// fixedDigits renders coef / 10^scale with exactly scale fraction digits.
// Zero is rendered without a sign.
func fixedDigits(coef *big.Int, scale int) string {
	digs := new(big.Int).Abs(coef).String()
	if scale > 0 && len(digs) <= scale {
		digs = strings.Repeat("0", scale-len(digs)+1) + digs
	}
	var b strings.Builder
	b.Grow(len(digs) + 2)
	if coef.Sign() < 0 {
		b.WriteByte('-')
	}
	if scale <= 0 {
		b.WriteString(digs)
		return b.String()
	}
	b.WriteString(digs[:len(digs)-scale])
	b.WriteByte('.')
	b.WriteString(digs[len(digs)-scale:])
	return b.String()
}

// expSuffix returns the exponent part of an exponential string, e.g. "e+15".
func expSuffix(exp int) string {
	if exp < 0 {
		return "e-" + strconv.Itoa(-exp)
	}
	return "e+" + strconv.Itoa(exp)
}
