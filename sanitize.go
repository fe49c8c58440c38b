package measure

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a raw value is not a number.
var ErrInvalidInput = errors.New("invalid numeric input")

var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Sanitize converts raw user input to a canonical decimal string that every
// [Backend] accepts.
//
// Strings are trimmed and stripped of thousands-separator commas.
// The empty string and the partial inputs "-", ".", "-." and "+" are
// treated as zero, since they appear while a number is being typed.
// Anything else must be a decimal number with an optional sign, an optional
// single decimal point and an optional exponent.
// Go integer and floating-point kinds are accepted directly; floats must be
// finite.
// Values implementing [fmt.Stringer], including [Decimal], are sanitized
// through their string form.
//
// Sanitize returns an error wrapping [ErrInvalidInput] for any other input.
func Sanitize(raw any) (string, error) {
	s, err := sanitize(raw)
	if err != nil {
		return "", fmt.Errorf("sanitizing %v: %w", raw, err)
	}
	return s, nil
}

func sanitize(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return sanitizeString(v)
	case float64:
		return sanitizeFloat(v, 64)
	case float32:
		return sanitizeFloat(float64(v), 32)
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case fmt.Stringer:
		return sanitizeString(v.String())
	case nil:
		return "", fmt.Errorf("%w: nil value", ErrInvalidInput)
	}
	return "", fmt.Errorf("%w: type %T is not supported", ErrInvalidInput, raw)
}

func sanitizeFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: special value %v", ErrInvalidInput, f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits), nil
}

func sanitizeString(s string) (string, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	switch s {
	case "", "-", ".", "-.", "+":
		return "0", nil
	}
	if !numberPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return canonical(s), nil
}

// canonical rewrites a validated number so that it has no leading plus sign,
// at least one integer digit and no dangling decimal point.
func canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		b.WriteByte('-')
		s = s[1:]
	}
	mant, exp := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp = s[:i], s[i:]
	}
	if strings.HasPrefix(mant, ".") {
		b.WriteByte('0')
	}
	b.WriteString(strings.TrimSuffix(mant, "."))
	b.WriteString(exp)
	return b.String()
}
