package measure

import (
	"math"
	"strconv"
)

const (
	maxDecimals              = 12
	defaultDecimals          = 6
	defaultScientificMinimum = 1e12
)

// FormatOptions control how a decimal is rendered.
// Use [DefaultFormatOptions] to get the defaults; the zero value is not
// equivalent to them.
type FormatOptions struct {
	// Decimals is the number of fraction digits.
	// It is clamped to the range [0, 12].
	Decimals int
	// Rounding is applied once, before rendering.
	Rounding RoundingMode
	// Grouping inserts the locale's group separators into the integer part.
	Grouping bool
	// Locale is a BCP 47 tag, such as "de" or "en-IN".
	// The empty string means English.
	Locale string
	// ScientificThreshold switches to exponential notation when the absolute
	// value is greater than or equal to it.
	// Non-finite and non-positive values mean the default of 1e12.
	ScientificThreshold float64
}

// DefaultFormatOptions returns 6 decimals, [HalfUp] rounding, grouping,
// the English locale and a scientific threshold of 1e12.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Decimals:            defaultDecimals,
		Rounding:            HalfUp,
		Grouping:            true,
		ScientificThreshold: defaultScientificMinimum,
	}
}

// Option overrides a single field of the default format options.
type Option func(*FormatOptions)

// WithDecimals sets the number of fraction digits.
func WithDecimals(n int) Option {
	return func(o *FormatOptions) { o.Decimals = n }
}

// WithRounding sets the rounding mode.
func WithRounding(m RoundingMode) Option {
	return func(o *FormatOptions) { o.Rounding = m }
}

// WithGrouping turns group separators on or off.
func WithGrouping(on bool) Option {
	return func(o *FormatOptions) { o.Grouping = on }
}

// WithLocale sets the locale tag.
func WithLocale(tag string) Option {
	return func(o *FormatOptions) { o.Locale = tag }
}

// WithScientificThreshold sets the magnitude at which exponential notation
// is used.
func WithScientificThreshold(t float64) Option {
	return func(o *FormatOptions) { o.ScientificThreshold = t }
}

// WithFormatOptions replaces all options at once.
func WithFormatOptions(f FormatOptions) Option {
	return func(o *FormatOptions) { *o = f }
}

func resolveOptions(opts []Option) FormatOptions {
	o := DefaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o.normalized()
}

func (o FormatOptions) normalized() FormatOptions {
	o.Decimals = min(max(o.Decimals, 0), maxDecimals)
	t := o.ScientificThreshold
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		o.ScientificThreshold = defaultScientificMinimum
	}
	return o
}

// FormatDecimal renders a value with the given options.
// The value is used as is if it is a [Decimal]; anything else is passed
// through [Sanitize] and parsed by the converter's backend.
//
// Rounding happens once, with the requested mode.
// Values whose magnitude reaches the scientific threshold are rendered in
// exponential notation with Decimals mantissa digits, such as "1.00e+15".
// All other values are rendered in fixed-point notation with exactly
// Decimals fraction digits, using the locale's digits and separators.
// Locale data that cannot be resolved falls back to plain fixed-point
// notation.
//
// Only plain and English-grouped text can be formatted again: [Sanitize]
// rejects or misreads output of a locale with other separators, such as
// "1.234.567,89" for "de".
func (c *Converter) FormatDecimal(value any, opts ...Option) (string, error) {
	d, err := c.coerce(value)
	if err != nil {
		return "", err
	}
	return c.format(d, resolveOptions(opts)), nil
}

func (c *Converter) format(d Decimal, o FormatOptions) string {
	r := d.Round(o.Decimals, o.Rounding)
	if c.scientific(d, o.ScientificThreshold) {
		return r.ExpString(o.Decimals)
	}
	s := r.FixedString(o.Decimals)
	if o.Locale == "" && !o.Grouping {
		return s
	}
	sym, err := lookupLocale(o.Locale)
	if err != nil {
		return s
	}
	return sym.apply(s, o.Grouping)
}

func (c *Converter) scientific(d Decimal, threshold float64) bool {
	t, err := c.backend.Parse(strconv.FormatFloat(threshold, 'g', -1, 64))
	if err != nil {
		return d.Abs().Float64() >= threshold
	}
	return d.Abs().Cmp(t) >= 0
}

// FormatDecimal renders a value with the default converter.
// See also method [Converter.FormatDecimal].
func FormatDecimal(value any, opts ...Option) (string, error) {
	return defaultConverter.FormatDecimal(value, opts...)
}
