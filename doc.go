/*
Package measure implements precise conversion of physical quantities between
units of the same category, such as meters and feet or Celsius and Fahrenheit.
It combines a static catalog of units with pluggable decimal arithmetic and
locale-aware formatting.

# Features

  - Immutable catalog of categories and units, safe for concurrent use
  - Exact unit factors, including ratios such as 5/9, kept as decimal text
  - Conversions through a base unit with affine offsets for temperatures
  - Arbitrary-precision arithmetic with 34 significant digits by default
  - Rounding modes half up, floor, ceil and bankers
  - Fixed-point and exponential rendering with locale digits and grouping
  - Fuzzy unit search and exact token lookup that ignore case and diacritics

# Representation

A [UnitDef] belongs to exactly one [Category].
Each category names a base unit with factor 1 and offset 0, and every other
unit is defined relative to it:

	base = (value + Offset) * Factor

Factors and offsets are written as decimal literals, so that values such as
0.3048 or 1e-9 are exact.
A [Registry] validates these invariants when it is built; the built-in
catalog is returned by [DefaultRegistry] and custom units can be added with
[Registry.With].

# Arithmetic

Arithmetic is performed by a [Backend] that produces [Decimal] values:

  - [BigBackend] uses arbitrary-precision decimals with 34 significant digits.
  - [CompactBackend] uses 19-digit decimals and continues in float64 when
    a value does not fit.
  - [FloatBackend] uses native float64 numbers.

A [Converter] is bound to one registry and one backend for its lifetime.
The package-level functions use [DefaultConverter], which combines the
built-in catalog with [BigBackend].

# Input

Raw values are normalized by [Sanitize] before they reach a backend.
Surrounding spaces and thousands-separator commas are removed, and partial
inputs such as "-" or "." are read as zero.

# Formatting

[FormatOptions] control the number of decimals, the [RoundingMode],
grouping, the locale and the threshold of exponential notation.
Rounding happens exactly once, with the requested mode.
Locale separators and digits are applied to the exact decimal text, so
formatting never passes a value through float64.

# Errors

Lookups report absence with a boolean.
Conversions return errors wrapping [ErrUnknownUnit], [ErrUnknownCategory],
[ErrCategoryMismatch] or [ErrInvalidInput], which can be tested with
[errors.Is].
Formatting never fails once a value has been parsed: unresolvable locales
fall back to plain fixed-point notation.
*/
package measure
