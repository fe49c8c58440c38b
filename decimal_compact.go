package measure

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

type compactBackend struct{}

// CompactBackend uses 19-digit decimal floating-point numbers that never
// allocate during arithmetic.
// Values that do not fit into 19 digits, such as light-years expressed in
// nanometers, continue in float64 with the precision caveats of
// [FloatBackend].
var CompactBackend Backend = compactBackend{}

func (compactBackend) Name() string { return "compact" }

func (compactBackend) Parse(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err == nil {
		return compactDecimal{d: d}, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	return floatDecimal(f), nil
}

type compactDecimal struct {
	d decimal.Decimal
}

func (d compactDecimal) Add(e Decimal) Decimal {
	if f, ok := e.(compactDecimal); ok {
		if r, err := d.d.Add(f.d); err == nil {
			return compactDecimal{d: r}
		}
	}
	return floatDecimal(d.Float64()).Add(e)
}

func (d compactDecimal) Sub(e Decimal) Decimal {
	if f, ok := e.(compactDecimal); ok {
		if r, err := d.d.Sub(f.d); err == nil {
			return compactDecimal{d: r}
		}
	}
	return floatDecimal(d.Float64()).Sub(e)
}

func (d compactDecimal) Mul(e Decimal) Decimal {
	if f, ok := e.(compactDecimal); ok {
		if r, err := d.d.Mul(f.d); err == nil {
			return compactDecimal{d: r}
		}
	}
	return floatDecimal(d.Float64()).Mul(e)
}

func (d compactDecimal) Quo(e Decimal) (Decimal, error) {
	if e.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	if f, ok := e.(compactDecimal); ok {
		if r, err := d.d.Quo(f.d); err == nil {
			return compactDecimal{d: r}, nil
		}
	}
	return floatDecimal(d.Float64()).Quo(e)
}

func (d compactDecimal) Abs() Decimal {
	return compactDecimal{d: d.d.Abs()}
}

func (d compactDecimal) Sign() int {
	return d.d.Sign()
}

func (d compactDecimal) Cmp(e Decimal) int {
	if f, ok := e.(compactDecimal); ok {
		return d.d.Cmp(f.d)
	}
	return floatDecimal(d.Float64()).Cmp(e)
}

func (d compactDecimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	if places >= d.d.Scale() {
		return d
	}
	switch mode {
	case Floor:
		return compactDecimal{d: d.d.Floor(places)}
	case Ceil:
		return compactDecimal{d: d.d.Ceil(places)}
	case Bankers:
		return compactDecimal{d: d.d.Round(places)}
	}
	return d.roundHalfUp(places)
}

// roundHalfUp rounds ties away from zero, which the decimal package
// does not offer directly: the value is truncated and one unit in the last
// place is added back when the discarded part is at least one half.
func (d compactDecimal) roundHalfUp(places int) Decimal {
	t := d.d.Trunc(places)
	rem, err := d.d.Sub(t)
	if err != nil {
		return floatDecimal(d.Float64()).Round(places, HalfUp)
	}
	half := decimal.MustNew(5, places+1)
	if rem.CmpAbs(half) < 0 {
		return compactDecimal{d: t}
	}
	ulp := decimal.MustNew(1, places).CopySign(d.d)
	t, err = t.Add(ulp)
	if err != nil {
		return floatDecimal(d.Float64()).Round(places, HalfUp)
	}
	return compactDecimal{d: t}
}

func (d compactDecimal) FixedString(places int) string {
	if places < 0 {
		places = 0
	}
	r, ok := d.Round(places, HalfUp).(compactDecimal)
	if !ok {
		return floatDecimal(d.Float64()).FixedString(places)
	}
	// Zero-padding to the requested scale may need more than 19 digits.
	coef := new(big.Int).SetUint64(r.d.Coef())
	if pad := places - r.d.Scale(); pad > 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pad)), nil))
	}
	if r.d.IsNeg() {
		coef.Neg(coef)
	}
	return fixedDigits(coef, places)
}

// ExpString is delegated to [BigBackend], which holds every compact value
// exactly.
func (d compactDecimal) ExpString(places int) string {
	b, err := BigBackend.Parse(d.d.String())
	if err != nil {
		return floatDecimal(d.Float64()).ExpString(places)
	}
	return b.ExpString(places)
}

func (d compactDecimal) Float64() float64 {
	f, _ := d.d.Float64()
	return f
}

func (d compactDecimal) String() string {
	return d.d.String()
}
