package measure

import (
	"errors"
	"testing"
)

var backends = []Backend{BigBackend, CompactBackend, FloatBackend}

func mustParse(t *testing.T, b Backend, s string) Decimal {
	t.Helper()
	d, err := b.Parse(s)
	if err != nil {
		t.Fatalf("%v.Parse(%q) failed: %v", b.Name(), s, err)
	}
	return d
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"halfUp", HalfUp},
			{"HALFUP", HalfUp},
			{"floor", Floor},
			{"Ceil", Ceil},
			{"bankers", Bankers},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "half-up", "trunc", "even"}
		for _, s := range tests {
			_, err := ParseRoundingMode(s)
			if err == nil {
				t.Errorf("ParseRoundingMode(%q) did not fail", s)
			}
		}
	})
}

func TestRoundingMode_Text(t *testing.T) {
	for _, m := range []RoundingMode{HalfUp, Floor, Ceil, Bankers} {
		text, err := m.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", m, err)
			continue
		}
		var got RoundingMode
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != m {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, m)
		}
	}
	if _, err := RoundingMode(9).MarshalText(); err == nil {
		t.Errorf("RoundingMode(9).MarshalText() did not fail")
	}
	if got, want := RoundingMode(9).String(), "RoundingMode(9)"; got != want {
		t.Errorf("RoundingMode(9).String() = %q, want %q", got, want)
	}
}

func TestParseBackend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want Backend
		}{
			{"", BigBackend},
			{"big", BigBackend},
			{" Compact ", CompactBackend},
			{"float", FloatBackend},
		}
		for _, tt := range tests {
			got, err := ParseBackend(tt.name)
			if err != nil {
				t.Errorf("ParseBackend(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseBackend(%q) = %v, want %v", tt.name, got.Name(), tt.want.Name())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := ParseBackend("decimal128")
		if err == nil {
			t.Errorf("ParseBackend(\"decimal128\") did not fail")
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseBackend(\"x\") did not panic")
			}
		}()
		MustParseBackend("x")
	})
}

func TestBackend_Parse(t *testing.T) {
	for _, b := range backends {
		for _, s := range []string{"", "abc", "1.2.3", "inf", "NaN"} {
			_, err := b.Parse(s)
			if err == nil {
				t.Errorf("%v.Parse(%q) did not fail", b.Name(), s)
				continue
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("%v.Parse(%q) failed with %v, want %v", b.Name(), s, err, ErrInvalidInput)
			}
		}
	}
}

func TestDecimal_Arithmetic(t *testing.T) {
	tests := []struct {
		d, e                string
		add, sub, mul, quo string
	}{
		{"1", "2", "3.00", "-1.00", "2.00", "0.50"},
		{"0.1", "0.2", "0.30", "-0.10", "0.02", "0.50"},
		{"-7.5", "2.5", "-5.00", "-10.00", "-18.75", "-3.00"},
		{"1000", "0.001", "1000.00", "1000.00", "1.00", "1000000.00"},
	}
	for _, b := range backends {
		for _, tt := range tests {
			d := mustParse(t, b, tt.d)
			e := mustParse(t, b, tt.e)
			if got := d.Add(e).FixedString(2); got != tt.add {
				t.Errorf("%v: %v.Add(%v) = %v, want %v", b.Name(), d, e, got, tt.add)
			}
			if got := d.Sub(e).FixedString(2); got != tt.sub {
				t.Errorf("%v: %v.Sub(%v) = %v, want %v", b.Name(), d, e, got, tt.sub)
			}
			if got := d.Mul(e).FixedString(2); got != tt.mul {
				t.Errorf("%v: %v.Mul(%v) = %v, want %v", b.Name(), d, e, got, tt.mul)
			}
			q, err := d.Quo(e)
			if err != nil {
				t.Errorf("%v: %v.Quo(%v) failed: %v", b.Name(), d, e, err)
				continue
			}
			if got := q.FixedString(2); got != tt.quo {
				t.Errorf("%v: %v.Quo(%v) = %v, want %v", b.Name(), d, e, got, tt.quo)
			}
		}
	}
}

func TestDecimal_Quo(t *testing.T) {
	t.Run("precision", func(t *testing.T) {
		d := mustParse(t, BigBackend, "1")
		e := mustParse(t, BigBackend, "3")
		q, err := d.Quo(e)
		if err != nil {
			t.Fatalf("%v.Quo(%v) failed: %v", d, e, err)
		}
		got := q.FixedString(30)
		want := "0.333333333333333333333333333333"
		if got != want {
			t.Errorf("%v.Quo(%v).FixedString(30) = %v, want %v", d, e, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, b := range backends {
			d := mustParse(t, b, "1")
			e := mustParse(t, b, "0")
			_, err := d.Quo(e)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%v: %v.Quo(%v) failed with %v, want %v", b.Name(), d, e, err, ErrDivisionByZero)
			}
		}
	})
}

func TestDecimal_Round(t *testing.T) {
	tests := []struct {
		d      string
		places int
		mode   RoundingMode
		want   string
	}{
		{"2.5", 0, Bankers, "2"},
		{"3.5", 0, Bankers, "4"},
		{"0.125", 2, Bankers, "0.12"},
		{"0.135", 2, Bankers, "0.14"},
		{"2.5", 0, HalfUp, "3"},
		{"-2.5", 0, HalfUp, "-3"},
		{"2.4999", 0, HalfUp, "2"},
		{"1.239", 2, Floor, "1.23"},
		{"-1.231", 2, Floor, "-1.24"},
		{"1.231", 2, Ceil, "1.24"},
		{"-1.239", 2, Ceil, "-1.23"},
		{"7", 2, Floor, "7.00"},
		{"-0.0001", 2, HalfUp, "0.00"},
		{"0.999", 2, HalfUp, "1.00"},
		{"9.999", 2, HalfUp, "10.00"},
		{"999.999", 2, HalfUp, "1000.00"},
		{"-9.999", 2, HalfUp, "-10.00"},
		{"9.991", 2, Ceil, "10.00"},
		{"-9.991", 2, Floor, "-10.00"},
		{"99.95", 1, Bankers, "100.0"},
	}
	for _, b := range backends {
		for _, tt := range tests {
			d := mustParse(t, b, tt.d)
			got := d.Round(tt.places, tt.mode).FixedString(tt.places)
			if got != tt.want {
				t.Errorf("%v: %v.Round(%v, %v) = %v, want %v", b.Name(), d, tt.places, tt.mode, got, tt.want)
			}
		}
	}

	// A carry must keep the requested scale.
	carries := []struct {
		d      string
		places int
		want   string
	}{
		{"0.999", 2, "1.00"},
		{"9.999", 2, "10.00"},
		{"999.999", 2, "1000.00"},
		{"-99.96", 1, "-100.0"},
	}
	for _, b := range []Backend{BigBackend, CompactBackend} {
		for _, tt := range carries {
			d := mustParse(t, b, tt.d)
			got := d.Round(tt.places, HalfUp).String()
			if got != tt.want {
				t.Errorf("%v: %v.Round(%v, %v).String() = %v, want %v", b.Name(), d, tt.places, HalfUp, got, tt.want)
			}
		}
	}
}

func TestDecimal_FixedString(t *testing.T) {
	tests := []struct {
		d      string
		places int
		want   string
	}{
		{"1", 3, "1.000"},
		{"0.000123", 8, "0.00012300"},
		{"3.2808398950131", 6, "3.280840"},
		{"-12.5", 0, "-13"},
		{"1234567.891", 1, "1234567.9"},
		{"0", 0, "0"},
		{"0.999", 2, "1.00"},
		{"9.999", 2, "10.00"},
		{"999.999", 2, "1000.00"},
		{"-0.9995", 3, "-1.000"},
	}
	for _, b := range backends {
		for _, tt := range tests {
			d := mustParse(t, b, tt.d)
			got := d.FixedString(tt.places)
			if got != tt.want {
				t.Errorf("%v: %v.FixedString(%v) = %v, want %v", b.Name(), d, tt.places, got, tt.want)
			}
		}
	}
}

func TestDecimal_ExpString(t *testing.T) {
	tests := []struct {
		d      string
		places int
		want   string
	}{
		{"1000000000000000", 2, "1.00e+15"},
		{"123456", 2, "1.23e+5"},
		{"-123456", 1, "-1.2e+5"},
		{"0.0000005", 1, "5.0e-7"},
		{"9.996", 2, "1.00e+1"},
		{"0", 2, "0.00e+0"},
		{"1.25", 1, "1.3e+0"},
		{"-2.5e13", 0, "-3e+13"},
		{"9.5e-3", 0, "1e-2"},
	}
	for _, b := range backends {
		for _, tt := range tests {
			d := mustParse(t, b, tt.d)
			got := d.ExpString(tt.places)
			if got != tt.want {
				t.Errorf("%v: %v.ExpString(%v) = %v, want %v", b.Name(), d, tt.places, got, tt.want)
			}
		}
	}
}

func TestDecimal_Mixed(t *testing.T) {
	d := mustParse(t, BigBackend, "1.5")
	e := mustParse(t, FloatBackend, "2")
	got := d.Mul(e)
	if backendOf(got) != FloatBackend {
		t.Errorf("%v.Mul(%v) is not a float decimal", d, e)
	}
	if got.Float64() != 3 {
		t.Errorf("%v.Mul(%v) = %v, want 3", d, e, got)
	}
	if d.Cmp(e) != -1 {
		t.Errorf("%v.Cmp(%v) = %v, want -1", d, e, d.Cmp(e))
	}
}

func TestDecimal_Sign(t *testing.T) {
	for _, b := range backends {
		for s, want := range map[string]int{"-3": -1, "0": 0, "0.01": 1} {
			d := mustParse(t, b, s)
			if got := d.Sign(); got != want {
				t.Errorf("%v: %v.Sign() = %v, want %v", b.Name(), d, got, want)
			}
			if got := d.Abs().Sign(); got != want*want {
				t.Errorf("%v: %v.Abs().Sign() = %v, want %v", b.Name(), d, got, want*want)
			}
		}
	}
}
