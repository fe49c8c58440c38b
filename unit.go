package measure

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

//go:generate go run scripts/units/codegen.go

var (
	// ErrUnknownUnit is returned when a unit identifier is not in the registry.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownCategory is returned when a category identifier is not in the registry.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCategoryMismatch is returned when units of different categories are converted.
	ErrCategoryMismatch = errors.New("category mismatch")
	// ErrInvalidUnitDef is returned by [NewRegistry] for inconsistent catalog data.
	ErrInvalidUnitDef = errors.New("invalid unit definition")
)

// Category represents a physical quantity, such as length or temperature.
// All units of a category are mutually convertible through its base unit.
type Category struct {
	ID          string
	Name        string
	BaseUnitID  string // unit with factor 1 and offset 0
	Description string
	DefaultFrom string // optional, preselected source unit
	DefaultTo   string // optional, preselected target unit
}

// DefaultPair returns the source and target units that are preselected when
// the category is opened.
// Categories without a preset pair use the base unit on both sides.
func (c Category) DefaultPair() (from, to string) {
	from, to = c.DefaultFrom, c.DefaultTo
	if from == "" {
		from = c.BaseUnitID
	}
	if to == "" {
		to = c.BaseUnitID
	}
	return from, to
}

// UnitDef represents a unit of exactly one category.
//
// A value x of the unit equals (x + Offset) * Factor units of the category's
// base unit.
// Factor is an exact decimal literal, such as "0.3048" or "1e-5", or a ratio
// of two such literals, such as "5/9".
// Offset is an exact decimal literal; the empty string means 0.
// Literals are kept as text so that no binary rounding happens before
// a [Backend] parses them.
type UnitDef struct {
	ID         string
	CategoryID string
	Name       string
	Symbol     string
	Aliases    []string
	Factor     string
	Offset     string
}

// Label returns the display label of the unit, e.g. "Meter (m)".
func (u UnitDef) Label() string {
	if u.Symbol == "" {
		return u.Name
	}
	return u.Name + " (" + u.Symbol + ")"
}

// factorParts splits a factor into its numerator and denominator literals.
func (u UnitDef) factorParts() (num, den string) {
	num, den, ok := strings.Cut(u.Factor, "/")
	if !ok {
		den = "1"
	}
	return strings.TrimSpace(num), strings.TrimSpace(den)
}

func (u UnitDef) offsetLiteral() string {
	if s := strings.TrimSpace(u.Offset); s != "" {
		return s
	}
	return "0"
}

// Registry is an immutable catalog of categories and units.
// Lookups preserve declaration order and are safe for concurrent use by
// multiple goroutines.
type Registry struct {
	categories []Category
	units      []UnitDef
	catIndex   map[string]int
	unitIndex  map[string]int
	byCategory map[string][]int
	tokens     [][]string // normalized id, symbol and aliases of each unit
}

// NewRegistry returns a registry of the given categories and units.
// The slices are copied.
//
// NewRegistry returns an error wrapping [ErrInvalidUnitDef] if:
//   - category or unit identifiers are empty or not unique;
//   - a unit refers to an unknown category;
//   - a factor is not a positive finite number, or an offset is not a number;
//   - a category's base unit is missing, belongs to another category, or
//     does not have factor 1 and offset 0.
func NewRegistry(categories []Category, units []UnitDef) (*Registry, error) {
	r, err := newRegistry(categories, units)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	return r, nil
}

// MustNewRegistry is like [NewRegistry] but panics if the catalog is invalid.
// It simplifies safe initialization of global variables holding registries.
func MustNewRegistry(categories []Category, units []UnitDef) *Registry {
	r, err := NewRegistry(categories, units)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry(%v categories, %v units) failed: %v", len(categories), len(units), err))
	}
	return r
}

func newRegistry(categories []Category, units []UnitDef) (*Registry, error) {
	r := &Registry{
		categories: append([]Category(nil), categories...),
		units:      make([]UnitDef, len(units)),
		catIndex:   make(map[string]int, len(categories)),
		unitIndex:  make(map[string]int, len(units)),
		byCategory: make(map[string][]int, len(categories)),
		tokens:     make([][]string, len(units)),
	}
	for i, c := range r.categories {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: category %d has an empty id", ErrInvalidUnitDef, i)
		}
		if _, ok := r.catIndex[c.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidUnitDef, c.ID)
		}
		r.catIndex[c.ID] = i
	}
	for i, u := range units {
		u.Aliases = append([]string(nil), u.Aliases...)
		if err := validateUnit(u); err != nil {
			return nil, err
		}
		if _, ok := r.unitIndex[u.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate unit %q", ErrInvalidUnitDef, u.ID)
		}
		if _, ok := r.catIndex[u.CategoryID]; !ok {
			return nil, fmt.Errorf("%w: unit %q: %w %q", ErrInvalidUnitDef, u.ID, ErrUnknownCategory, u.CategoryID)
		}
		r.units[i] = u
		r.unitIndex[u.ID] = i
		r.byCategory[u.CategoryID] = append(r.byCategory[u.CategoryID], i)
		r.tokens[i] = unitTokens(u)
	}
	for _, c := range r.categories {
		i, ok := r.unitIndex[c.BaseUnitID]
		if !ok {
			return nil, fmt.Errorf("%w: category %q: base unit %q not found", ErrInvalidUnitDef, c.ID, c.BaseUnitID)
		}
		if err := validateBase(c, r.units[i]); err != nil {
			return nil, err
		}
		from, to := c.DefaultPair()
		for _, id := range [...]string{from, to} {
			if j, ok := r.unitIndex[id]; !ok || r.units[j].CategoryID != c.ID {
				return nil, fmt.Errorf("%w: category %q: default unit %q not found", ErrInvalidUnitDef, c.ID, id)
			}
		}
	}
	return r, nil
}

func validateUnit(u UnitDef) error {
	if u.ID == "" {
		return fmt.Errorf("%w: unit %q has an empty id", ErrInvalidUnitDef, u.Name)
	}
	num, den := u.factorParts()
	for _, lit := range [...]string{num, den} {
		q, ok := exactRat(lit)
		if !ok || q.Sign() <= 0 {
			return fmt.Errorf("%w: unit %q: factor %q must be a positive number", ErrInvalidUnitDef, u.ID, u.Factor)
		}
	}
	if _, ok := exactRat(u.offsetLiteral()); !ok {
		return fmt.Errorf("%w: unit %q: offset %q is not a number", ErrInvalidUnitDef, u.ID, u.Offset)
	}
	return nil
}

func validateBase(c Category, u UnitDef) error {
	if u.CategoryID != c.ID {
		return fmt.Errorf("%w: category %q: base unit %q belongs to %q", ErrInvalidUnitDef, c.ID, u.ID, u.CategoryID)
	}
	num, den := u.factorParts()
	n, _ := exactRat(num)
	d, _ := exactRat(den)
	off, _ := exactRat(u.offsetLiteral())
	if n.Cmp(d) != 0 || off.Sign() != 0 {
		return fmt.Errorf("%w: category %q: base unit %q must have factor 1 and offset 0", ErrInvalidUnitDef, c.ID, u.ID)
	}
	return nil
}

// exactRat parses a decimal literal without rounding.
func exactRat(lit string) (*big.Rat, bool) {
	if !numberPattern.MatchString(lit) {
		return nil, false
	}
	return new(big.Rat).SetString(canonical(lit))
}

// With returns a new registry with custom units appended after the
// built-in ones.
// Custom units have the same shape as static units and must belong to one
// of the registry's categories.
func (r *Registry) With(custom ...UnitDef) (*Registry, error) {
	units := make([]UnitDef, 0, len(r.units)+len(custom))
	units = append(units, r.units...)
	units = append(units, custom...)
	return NewRegistry(r.categories, units)
}

// Categories returns all categories in declaration order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// Units returns all units in declaration order.
func (r *Registry) Units() []UnitDef {
	res := make([]UnitDef, len(r.units))
	for i := range r.units {
		res[i] = r.unit(i)
	}
	return res
}

// CategoryByID returns the category with the given identifier.
func (r *Registry) CategoryByID(id string) (Category, bool) {
	i, ok := r.catIndex[id]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// UnitByID returns the unit with the given identifier.
func (r *Registry) UnitByID(id string) (UnitDef, bool) {
	i, ok := r.unitIndex[id]
	if !ok {
		return UnitDef{}, false
	}
	return r.unit(i), true
}

// UnitsByCategory returns the units of a category in declaration order.
// The result is empty for an unknown category.
func (r *Registry) UnitsByCategory(categoryID string) []UnitDef {
	idx := r.byCategory[categoryID]
	res := make([]UnitDef, len(idx))
	for j, i := range idx {
		res[j] = r.unit(i)
	}
	return res
}

// FindUnitByToken returns the first unit, in declaration order, whose
// identifier, symbol or alias equals the token.
// Comparison ignores case and diacritics, so "µs", "US" and "feet" resolve
// to microsecond, microsecond and foot.
func (r *Registry) FindUnitByToken(token string) (UnitDef, bool) {
	t := normalize(strings.TrimSpace(token))
	if t == "" {
		return UnitDef{}, false
	}
	for i, toks := range r.tokens {
		for _, tok := range toks {
			if tok == t {
				return r.unit(i), true
			}
		}
	}
	return UnitDef{}, false
}

// unit returns a copy of the i-th unit that does not share its aliases.
func (r *Registry) unit(i int) UnitDef {
	u := r.units[i]
	u.Aliases = append([]string(nil), u.Aliases...)
	return u
}

func unitTokens(u UnitDef) []string {
	toks := make([]string, 0, 2+len(u.Aliases))
	toks = append(toks, normalize(u.ID), normalize(u.Symbol))
	for _, a := range u.Aliases {
		toks = append(toks, normalize(a))
	}
	return toks
}

var defaultRegistry = MustNewRegistry(categoryData, unitData)

// DefaultRegistry returns the built-in catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// CategoryByID returns a category of the built-in catalog.
// See also method [Registry.CategoryByID].
func CategoryByID(id string) (Category, bool) {
	return defaultRegistry.CategoryByID(id)
}

// UnitByID returns a unit of the built-in catalog.
// See also method [Registry.UnitByID].
func UnitByID(id string) (UnitDef, bool) {
	return defaultRegistry.UnitByID(id)
}

// UnitsByCategory returns the units of a category of the built-in catalog.
// See also method [Registry.UnitsByCategory].
func UnitsByCategory(categoryID string) []UnitDef {
	return defaultRegistry.UnitsByCategory(categoryID)
}

// FindUnitByToken looks up a unit of the built-in catalog by token.
// See also method [Registry.FindUnitByToken].
func FindUnitByToken(token string) (UnitDef, bool) {
	return defaultRegistry.FindUnitByToken(token)
}

// Categories returns all categories of the built-in catalog.
// See also method [Registry.Categories].
func Categories() []Category {
	return defaultRegistry.Categories()
}

// Units returns all units of the built-in catalog.
// See also method [Registry.Units].
func Units() []UnitDef {
	return defaultRegistry.Units()
}
