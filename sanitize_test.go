package measure

import (
	"errors"
	"math"
	"testing"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestSanitize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			raw  any
			want string
		}{
			// Partial input
			{"", "0"},
			{"-", "0"},
			{".", "0"},
			{"-.", "0"},
			{"+", "0"},
			{"   ", "0"},
			// Strings
			{"42", "42"},
			{" 3.14 ", "3.14"},
			{"+7", "7"},
			{"-0.5", "-0.5"},
			{".5", "0.5"},
			{"-.5", "-0.5"},
			{"5.", "5"},
			{"1,234,567.89", "1234567.89"},
			{"1e15", "1e15"},
			{"2.5E-3", "2.5E-3"},
			{"6.e2", "6e2"},
			// Numbers
			{0, "0"},
			{int8(-8), "-8"},
			{int64(math.MaxInt64), "9223372036854775807"},
			{uint64(math.MaxUint64), "18446744073709551615"},
			{1.5, "1.5"},
			{float32(0.25), "0.25"},
			{1e21, "1e+21"},
			// Stringers
			{stringer("1,000"), "1000"},
			{mustParse(t, BigBackend, "0.1"), "0.1"},
		}
		for _, tt := range tests {
			got, err := Sanitize(tt.raw)
			if err != nil {
				t.Errorf("Sanitize(%v) failed: %v", tt.raw, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Sanitize(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"letters":        "abc",
			"two points":     "1.2.3",
			"unit suffix":    "12m",
			"inner space":    "1 000",
			"dangling exp":   "1e",
			"sign only exp":  "1e+",
			"double sign":    "--1",
			"hex":            "0x10",
			"nan":            math.NaN(),
			"positive inf":   math.Inf(1),
			"negative inf":   math.Inf(-1),
			"nil":            nil,
			"bool":           true,
			"slice":          []int{1},
			"bad stringer":   stringer("one"),
			"text infinity":  "Infinity",
			"text nan":       "NaN",
			"unicode digits": "١٢",
		}
		for name, raw := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Sanitize(raw)
				if err == nil {
					t.Errorf("Sanitize(%v) did not fail", raw)
					return
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Sanitize(%v) failed with %v, want %v", raw, err, ErrInvalidInput)
				}
			})
		}
	})
}

func TestSanitize_Idempotent(t *testing.T) {
	for _, s := range []string{"-.5", "1,000.", "+3e2", "0.000001"} {
		once, err := Sanitize(s)
		if err != nil {
			t.Errorf("Sanitize(%q) failed: %v", s, err)
			continue
		}
		twice, err := Sanitize(once)
		if err != nil {
			t.Errorf("Sanitize(%q) failed: %v", once, err)
			continue
		}
		if once != twice {
			t.Errorf("Sanitize(Sanitize(%q)) = %q, want %q", s, twice, once)
		}
	}
}
