package measure

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type floatBackend struct{}

// FloatBackend uses native binary floating-point numbers.
// It is the degraded backend: results carry about 15 significant digits and
// decimal fractions such as 0.1 are not represented exactly.
var FloatBackend Backend = floatBackend{}

func (floatBackend) Name() string { return "float" }

func (floatBackend) Parse(s string) (Decimal, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	return floatDecimal(f), nil
}

type floatDecimal float64

func (d floatDecimal) Add(e Decimal) Decimal {
	return floatDecimal(float64(d) + e.Float64())
}

func (d floatDecimal) Sub(e Decimal) Decimal {
	return floatDecimal(float64(d) - e.Float64())
}

func (d floatDecimal) Mul(e Decimal) Decimal {
	return floatDecimal(float64(d) * e.Float64())
}

func (d floatDecimal) Quo(e Decimal) (Decimal, error) {
	if e.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	return floatDecimal(float64(d) / e.Float64()), nil
}

func (d floatDecimal) Abs() Decimal {
	return floatDecimal(math.Abs(float64(d)))
}

func (d floatDecimal) Sign() int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func (d floatDecimal) Cmp(e Decimal) int {
	return cmp.Compare(float64(d), e.Float64())
}

// Round scales d by 10^places, rounds to an integer and scales back.
// The scaled value is first cut to 15 significant digits so that binary
// noise such as 0.29 * 100 = 28.999999999999996 does not leak through
// floor and ceil.
func (d floatDecimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	p := math.Pow10(places)
	x := float64(d) * p
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return d
	}
	x, _ = strconv.ParseFloat(strconv.FormatFloat(x, 'g', 15, 64), 64)
	switch mode {
	case Floor:
		x = math.Floor(x)
	case Ceil:
		x = math.Ceil(x)
	case Bankers:
		x = math.RoundToEven(x)
	default:
		x = math.Round(x)
	}
	return floatDecimal(x / p)
}

func (d floatDecimal) FixedString(places int) string {
	if places < 0 {
		places = 0
	}
	f := float64(d.Round(places, HalfUp).(floatDecimal))
	s := strconv.FormatFloat(f, 'f', places, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

// ExpString rounds the shortest decimal mantissa of d half-up, like the
// decimal backends, instead of rounding the binary value to even.
func (d floatDecimal) ExpString(places int) string {
	if places < 0 {
		places = 0
	}
	if d == 0 || math.IsInf(float64(d), 0) || math.IsNaN(float64(d)) {
		return floatDecimal(0).FixedString(places) + expSuffix(0)
	}
	s := strconv.FormatFloat(float64(d), 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	m, err := strconv.ParseFloat(mant, 64)
	if err != nil {
		return s
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	r := floatDecimal(m).Round(places, HalfUp)
	// 9.996 rounds to 10.00
	if math.Abs(r.Float64()) >= 10 {
		e++
		r = floatDecimal(m / 10).Round(places, HalfUp)
	}
	return r.FixedString(places) + expSuffix(e)
}

func (d floatDecimal) Float64() float64 {
	return float64(d)
}

func (d floatDecimal) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}
