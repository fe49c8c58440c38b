package measure

import (
	"errors"
	"math"
	"testing"
)

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		opts          []Option
		wantDecimals  int
		wantThreshold float64
	}{
		{nil, 6, 1e12},
		{[]Option{WithDecimals(-3)}, 0, 1e12},
		{[]Option{WithDecimals(20)}, 12, 1e12},
		{[]Option{WithDecimals(12)}, 12, 1e12},
		{[]Option{WithScientificThreshold(math.NaN())}, 6, 1e12},
		{[]Option{WithScientificThreshold(math.Inf(1))}, 6, 1e12},
		{[]Option{WithScientificThreshold(0)}, 6, 1e12},
		{[]Option{WithScientificThreshold(-5)}, 6, 1e12},
		{[]Option{WithScientificThreshold(1e6)}, 6, 1e6},
		{[]Option{nil, WithDecimals(2)}, 2, 1e12},
		{[]Option{WithFormatOptions(FormatOptions{Decimals: 3})}, 3, 1e12},
	}
	for _, tt := range tests {
		got := resolveOptions(tt.opts)
		if got.Decimals != tt.wantDecimals || got.ScientificThreshold != tt.wantThreshold {
			t.Errorf("resolveOptions(%v options) = %v, %v, want %v, %v", len(tt.opts), got.Decimals, got.ScientificThreshold, tt.wantDecimals, tt.wantThreshold)
		}
	}
	if got := DefaultFormatOptions(); got.Rounding != HalfUp || !got.Grouping || got.Locale != "" {
		t.Errorf("DefaultFormatOptions() = %+v", got)
	}
}

func TestFormatDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			opts  []Option
			want  string
		}{
			// Scientific
			{"1e15", []Option{WithDecimals(2)}, "1.00e+15"},
			{"-1e12", []Option{WithDecimals(1)}, "-1.0e+12"},
			{"123", []Option{WithDecimals(2), WithScientificThreshold(100)}, "1.23e+2"},
			{"999999999999.5", []Option{WithDecimals(0)}, "1,000,000,000,000"},
			// Fixed
			{"1234567.891", nil, "1,234,567.891000"},
			{"1234.5", []Option{WithGrouping(false)}, "1234.500000"},
			{"999", []Option{WithDecimals(0)}, "999"},
			{"-1234", []Option{WithDecimals(1)}, "-1,234.0"},
			{"-0.0000001", []Option{WithDecimals(2)}, "0.00"},
			{"0.5", []Option{WithDecimals(20)}, "0.500000000000"},
			{"", []Option{WithDecimals(2)}, "0.00"},
			{1.005, []Option{WithDecimals(2)}, "1.01"},
			// Rounding
			{"2.5", []Option{WithDecimals(0), WithRounding(Bankers)}, "2"},
			{"3.5", []Option{WithDecimals(0), WithRounding(Bankers)}, "4"},
			{"1.99", []Option{WithDecimals(1), WithRounding(Floor)}, "1.9"},
			{"-1.91", []Option{WithDecimals(1), WithRounding(Ceil)}, "-1.9"},
			// Locales
			{"1234567.891", []Option{WithDecimals(2), WithLocale("en")}, "1,234,567.89"},
			{"1234567.891", []Option{WithDecimals(2), WithLocale("de")}, "1.234.567,89"},
			{"1234567.891", []Option{WithDecimals(2), WithLocale("de"), WithGrouping(false)}, "1234567,89"},
			{"1234567.891", []Option{WithDecimals(2), WithLocale("not a locale")}, "1234567.89"},
		}
		for _, tt := range tests {
			got, err := FormatDecimal(tt.value, tt.opts...)
			if err != nil {
				t.Errorf("FormatDecimal(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("FormatDecimal(%v) = %q, want %q", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, v := range []any{"abc", math.Inf(1), nil} {
			_, err := FormatDecimal(v)
			if err == nil {
				t.Errorf("FormatDecimal(%v) did not fail", v)
			}
		}
	})
}

func TestFormatDecimal_Idempotent(t *testing.T) {
	for _, v := range []string{"0", "-2.5", "1234567.891", "0.000001", "123456789012"} {
		once, err := FormatDecimal(v)
		if err != nil {
			t.Errorf("FormatDecimal(%q) failed: %v", v, err)
			continue
		}
		twice, err := FormatDecimal(once)
		if err != nil {
			t.Errorf("FormatDecimal(%q) failed: %v", once, err)
			continue
		}
		if once != twice {
			t.Errorf("FormatDecimal(FormatDecimal(%q)) = %q, want %q", v, twice, once)
		}
	}

	// Locale separators other than English ones are not parsed back.
	once, err := FormatDecimal("1234567.891", WithDecimals(2), WithLocale("de"))
	if err != nil {
		t.Fatalf("FormatDecimal(%q) failed: %v", "1234567.891", err)
	}
	if _, err := FormatDecimal(once); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FormatDecimal(%q) failed with %v, want %v", once, err, ErrInvalidInput)
	}
}

func TestParseSymbols(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name        string
			long, short string
			fixed       string
			want        string
		}{
			{"english", "1,234,567,890.5", "1,234.5", "1234567.50", "1,234,567.50"},
			{"indian", "1,23,45,67,890.5", "1,234.5", "1234567.50", "12,34,567.50"},
			{"indian short", "1,23,45,67,890.5", "1,234.5", "1234.50", "1,234.50"},
			{"min grouping", "1.234.567.890,5", "1234,5", "1234.00", "1234,00"},
			{"min grouping long", "1.234.567.890,5", "1234,5", "12345.00", "12.345,00"},
			{"narrow space", "1\u202f234\u202f567\u202f890,5", "1\u202f234,5", "-98765.4", "-98\u202f765,4"},
			{"directional marks", "\u200e1,234,567,890.5\u200e", "1,234.5", "1000", "1,000"},
			{"no grouping", "1234567890.5", "1234.5", "1234567.5", "1234567.5"},
			{"arabic digits", "١٬٢٣٤٬٥٦٧٬٨٩٠٫٥", "١٬٢٣٤٫٥", "1234.05", "١٬٢٣٤٫٠٥"},
			{"short integer", "1,234,567,890.5", "1,234.5", "123", "123"},
		}
		for _, tt := range tests {
			sym, err := parseSymbols(tt.long, tt.short)
			if err != nil {
				t.Errorf("%v: parseSymbols(%q, %q) failed: %v", tt.name, tt.long, tt.short, err)
				continue
			}
			got := sym.apply(tt.fixed, true)
			if got != tt.want {
				t.Errorf("%v: apply(%q) = %q, want %q", tt.name, tt.fixed, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"no digits":        "abc",
			"missing fraction": "1,234,567,890",
			"long fraction":    "1,234,567,890.50",
			"wrong digits":     "9,999,999,999.9",
			"mixed groups":     "1,234.567,890.5",
			"too short":        "12345",
		}
		for name, long := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := parseSymbols(long, "1,234.5")
				if err == nil {
					t.Errorf("parseSymbols(%q) did not fail", long)
				}
			})
		}
	})
}

func TestLookupLocale(t *testing.T) {
	sym, err := lookupLocale("")
	if err != nil {
		t.Fatalf("lookupLocale(\"\") failed: %v", err)
	}
	if sym != englishSymbols {
		t.Errorf("lookupLocale(\"\") = %+v, want %+v", sym, englishSymbols)
	}
	if _, err := lookupLocale("de"); err != nil {
		t.Fatalf("lookupLocale(\"de\") failed: %v", err)
	}
	if !localeCache.Contains("de") {
		t.Errorf("lookupLocale(\"de\") was not cached")
	}
	if _, err := lookupLocale("!!"); err == nil {
		t.Errorf("lookupLocale(\"!!\") did not fail")
	}
}
