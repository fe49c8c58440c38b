package measure

import (
	"fmt"
)

// coeffs holds the parsed literals of a unit.
// A value x of the unit equals (x + off) * num / den base units.
type coeffs struct {
	num, den, off Decimal
}

// Converter converts values between units of a registry using a single
// decimal backend.
// It is immutable and safe for concurrent use by multiple goroutines.
type Converter struct {
	reg     *Registry
	backend Backend
	coeffs  map[string]coeffs
}

// Conversion is a single entry of the result of [Converter.MultiConvert].
type Conversion struct {
	UnitID string `json:"unitId"`
	Value  string `json:"value"`
}

// NewConverter returns a converter over the units of reg.
// A nil registry means [DefaultRegistry] and a nil backend means [BigBackend].
// Unit factors and offsets are parsed once, here.
func NewConverter(reg *Registry, backend Backend) (*Converter, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if backend == nil {
		backend = BigBackend
	}
	c := &Converter{
		reg:     reg,
		backend: backend,
		coeffs:  make(map[string]coeffs, len(reg.units)),
	}
	for _, u := range reg.units {
		k, err := parseCoeffs(backend, u)
		if err != nil {
			return nil, fmt.Errorf("preparing unit %q for %v backend: %w", u.ID, backend.Name(), err)
		}
		c.coeffs[u.ID] = k
	}
	return c, nil
}

// MustNewConverter is like [NewConverter] but panics if a unit cannot be
// prepared.
func MustNewConverter(reg *Registry, backend Backend) *Converter {
	c, err := NewConverter(reg, backend)
	if err != nil {
		panic(fmt.Sprintf("NewConverter() failed: %v", err))
	}
	return c
}

func parseCoeffs(backend Backend, u UnitDef) (coeffs, error) {
	var k coeffs
	num, den := u.factorParts()
	lits := [...]string{num, den, u.offsetLiteral()}
	dsts := [...]*Decimal{&k.num, &k.den, &k.off}
	for i, lit := range lits {
		s, err := Sanitize(lit)
		if err != nil {
			return coeffs{}, err
		}
		*dsts[i], err = backend.Parse(s)
		if err != nil {
			return coeffs{}, err
		}
	}
	return k, nil
}

// Registry returns the registry the converter was built from.
func (c *Converter) Registry() *Registry {
	return c.reg
}

// Backend returns the decimal backend of the converter.
func (c *Converter) Backend() Backend {
	return c.backend
}

// ConvertRaw converts a value from one unit to another and returns the
// unrounded result.
// The value may be anything accepted by [Sanitize].
//
// The value is moved to the base unit and then to the target unit,
// evaluated as a single quotient:
//
//	((x + from.Offset) * from.num * to.den) / (from.den * to.num) - to.Offset
//
// where num/den is the unit's factor.
//
// ConvertRaw returns an error wrapping:
//   - [ErrUnknownUnit] if either unit is not in the registry;
//   - [ErrCategoryMismatch] if the units belong to different categories;
//   - [ErrInvalidInput] if the value is not a number.
func (c *Converter) ConvertRaw(value any, fromID, toID string) (Decimal, error) {
	d, err := c.convertRaw(value, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("converting %v from %q to %q: %w", value, fromID, toID, err)
	}
	return d, nil
}

func (c *Converter) convertRaw(value any, fromID, toID string) (Decimal, error) {
	from, to, err := c.pair(fromID, toID)
	if err != nil {
		return nil, err
	}
	v, err := c.coerce(value)
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return v, nil
	}
	n := v.Add(from.off).Mul(from.num).Mul(to.den)
	q, err := n.Quo(from.den.Mul(to.num))
	if err != nil {
		return nil, err
	}
	return q.Sub(to.off), nil
}

// pair resolves and category-checks two units.
func (c *Converter) pair(fromID, toID string) (from, to coeffs, err error) {
	fu, ok := c.reg.UnitByID(fromID)
	if !ok {
		return coeffs{}, coeffs{}, fmt.Errorf("%w %q", ErrUnknownUnit, fromID)
	}
	tu, ok := c.reg.UnitByID(toID)
	if !ok {
		return coeffs{}, coeffs{}, fmt.Errorf("%w %q", ErrUnknownUnit, toID)
	}
	if fu.CategoryID != tu.CategoryID {
		return coeffs{}, coeffs{}, fmt.Errorf("%w: %v and %v", ErrCategoryMismatch, fu.CategoryID, tu.CategoryID)
	}
	return c.coeffs[fromID], c.coeffs[toID], nil
}

// coerce turns a raw value into a decimal of the converter's backend.
func (c *Converter) coerce(value any) (Decimal, error) {
	if d, ok := value.(Decimal); ok && backendOf(d) == c.backend {
		return d, nil
	}
	s, err := Sanitize(value)
	if err != nil {
		return nil, err
	}
	return c.backend.Parse(s)
}

// Convert converts a value from one unit to another and formats the result.
// See [Converter.ConvertRaw] for the conversion and [Converter.FormatDecimal]
// for the formatting.
func (c *Converter) Convert(value any, fromID, toID string, opts ...Option) (string, error) {
	d, err := c.ConvertRaw(value, fromID, toID)
	if err != nil {
		return "", err
	}
	return c.format(d, resolveOptions(opts)), nil
}

// MultiConvert converts a value into every unit of a category, in
// registry order.
// The empty category means the category of the source unit.
// Each entry is computed independently, exactly like [Converter.Convert].
//
// MultiConvert returns an error wrapping [ErrUnknownCategory] if the
// category is not in the registry, or any error of [Converter.ConvertRaw].
func (c *Converter) MultiConvert(value any, fromID, categoryID string, opts ...Option) ([]Conversion, error) {
	if categoryID == "" {
		u, ok := c.reg.UnitByID(fromID)
		if !ok {
			return nil, fmt.Errorf("converting %v from %q: %w %q", value, fromID, ErrUnknownUnit, fromID)
		}
		categoryID = u.CategoryID
	}
	if _, ok := c.reg.CategoryByID(categoryID); !ok {
		return nil, fmt.Errorf("converting %v from %q: %w %q", value, fromID, ErrUnknownCategory, categoryID)
	}
	o := resolveOptions(opts)
	units := c.reg.UnitsByCategory(categoryID)
	res := make([]Conversion, 0, len(units))
	for _, u := range units {
		d, err := c.ConvertRaw(value, fromID, u.ID)
		if err != nil {
			return nil, err
		}
		res = append(res, Conversion{UnitID: u.ID, Value: c.format(d, o)})
	}
	return res, nil
}

var defaultConverter = MustNewConverter(defaultRegistry, BigBackend)

// DefaultConverter returns the converter over [DefaultRegistry] and
// [BigBackend] used by the package-level functions.
func DefaultConverter() *Converter {
	return defaultConverter
}

// ConvertRaw converts a value with the default converter.
// See also method [Converter.ConvertRaw].
func ConvertRaw(value any, fromID, toID string) (Decimal, error) {
	return defaultConverter.ConvertRaw(value, fromID, toID)
}

// Convert converts and formats a value with the default converter.
// See also method [Converter.Convert].
func Convert(value any, fromID, toID string, opts ...Option) (string, error) {
	return defaultConverter.Convert(value, fromID, toID, opts...)
}

// MultiConvert converts a value into every unit of a category with the
// default converter.
// See also method [Converter.MultiConvert].
func MultiConvert(value any, fromID, categoryID string, opts ...Option) ([]Conversion, error) {
	return defaultConverter.MultiConvert(value, fromID, categoryID, opts...)
}
