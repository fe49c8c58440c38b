package measure

import (
	"fmt"
	"math/big"

	"github.com/ericlagergren/decimal"
)

// workContext is used by every arithmetic operation of [BigBackend].
// It carries 34 significant digits and rounds half to even.
var workContext = decimal.Context128

var bigModes = [...]decimal.RoundingMode{
	HalfUp:  decimal.ToNearestAway,
	Floor:   decimal.ToNegativeInf,
	Ceil:    decimal.ToPositiveInf,
	Bankers: decimal.ToNearestEven,
}

var bigTen = decimal.New(10, 0)

type bigBackend struct{}

// BigBackend is the default backend.
// It uses arbitrary-precision decimal floating-point numbers with
// 34 significant digits of working precision.
var BigBackend Backend = bigBackend{}

func (bigBackend) Name() string { return "big" }

func (bigBackend) Parse(s string) (Decimal, error) {
	b := newBig()
	if _, ok := b.SetString(s); !ok || !b.IsFinite() {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	return bigDecimal{b: b}, nil
}

// bigDecimal never mutates b after construction.
type bigDecimal struct {
	b *decimal.Big
}

func newBig() *decimal.Big {
	z := new(decimal.Big)
	z.Context = workContext
	return z
}

func (d bigDecimal) Add(e Decimal) Decimal {
	f, ok := e.(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).Add(e)
	}
	return bigDecimal{b: newBig().Add(d.b, f.b)}
}

func (d bigDecimal) Sub(e Decimal) Decimal {
	f, ok := e.(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).Sub(e)
	}
	return bigDecimal{b: newBig().Sub(d.b, f.b)}
}

func (d bigDecimal) Mul(e Decimal) Decimal {
	f, ok := e.(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).Mul(e)
	}
	return bigDecimal{b: newBig().Mul(d.b, f.b)}
}

func (d bigDecimal) Quo(e Decimal) (Decimal, error) {
	if e.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	f, ok := e.(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).Quo(e)
	}
	return bigDecimal{b: newBig().Quo(d.b, f.b)}, nil
}

func (d bigDecimal) Abs() Decimal {
	return bigDecimal{b: newBig().Abs(d.b)}
}

func (d bigDecimal) Sign() int {
	return d.b.Sign()
}

func (d bigDecimal) Cmp(e Decimal) int {
	f, ok := e.(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).Cmp(e)
	}
	return d.b.Cmp(f.b)
}

// Round quantizes d to the given scale.
// The rounding context is built per call with one digit more than the
// integer digits of d, which leaves room for a carry such as 9.999 → 10.00.
// Quantize drops a trailing zero on such a carry, so the coefficient is
// rescaled until the result has exactly the requested scale.
func (d bigDecimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	intdigs := d.b.Precision() - d.b.Scale()
	if intdigs < 0 {
		intdigs = 0
	}
	ctx := workContext
	ctx.Precision = intdigs + places + 1
	if int(mode) < len(bigModes) {
		ctx.RoundingMode = bigModes[mode]
	}
	z := new(decimal.Big).Copy(d.b)
	z.Context = ctx
	z.Quantize(places)
	if !z.IsFinite() {
		return floatDecimal(d.Float64()).Round(places, mode)
	}
	if s := z.Scale(); s < places {
		coef := bigDecimal{b: z}.unscaled()
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places-s)), nil))
		z = newBig().SetBigMantScale(coef, places)
	}
	return bigDecimal{b: z}
}

func (d bigDecimal) FixedString(places int) string {
	if places < 0 {
		places = 0
	}
	r, ok := d.Round(places, HalfUp).(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).FixedString(places)
	}
	return fixedDigits(r.unscaled(), places)
}

func (d bigDecimal) ExpString(places int) string {
	if places < 0 {
		places = 0
	}
	if d.b.Sign() == 0 {
		return fixedDigits(new(big.Int), places) + expSuffix(0)
	}
	exp := d.b.Precision() - d.b.Scale() - 1
	m := new(decimal.Big).Copy(d.b)
	m.Context = workContext
	m.SetScale(d.b.Scale() + exp)
	r, ok := bigDecimal{b: m}.Round(places, HalfUp).(bigDecimal)
	if !ok {
		return floatDecimal(d.Float64()).ExpString(places)
	}
	// 9.996 rounds to 10.00
	if newBig().Abs(r.b).Cmp(bigTen) >= 0 {
		exp++
		m = new(decimal.Big).Copy(r.b)
		m.Context = workContext
		m.SetScale(r.b.Scale() + 1)
		r, ok = bigDecimal{b: m}.Round(places, HalfUp).(bigDecimal)
		if !ok {
			return floatDecimal(d.Float64()).ExpString(places)
		}
	}
	return fixedDigits(r.unscaled(), places) + expSuffix(exp)
}

// unscaled returns the coefficient of d, that is d * 10^scale.
func (d bigDecimal) unscaled() *big.Int {
	z := new(decimal.Big).Copy(d.b)
	z.SetScale(0)
	return z.Int(new(big.Int))
}

func (d bigDecimal) Float64() float64 {
	f, _ := d.b.Float64()
	return f
}

func (d bigDecimal) String() string {
	return d.b.String()
}
