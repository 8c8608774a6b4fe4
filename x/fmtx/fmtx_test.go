package fmtx

import (
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{75.2, 2, "75.20"},
		{55.006, 2, "55.01"},
		{0, 2, "0.00"},
		{-3.456, 2, "-3.46"},
		{12.3, 0, "12"},
		{0.994, 2, "0.99"},
		{99.999, 2, "100.00"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(1), 2, "+Inf"},
		{math.Inf(-1), 2, "-Inf"},
	}
	for _, c := range cases {
		if got := FormatFixed(c.v, c.prec); got != c.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", c.v, c.prec, got, c.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ON", 5); got != "ON   " {
		t.Errorf("PadRight(ON, 5) = %q", got)
	}
	if got := PadRight("ERROR", 3); got != "ERROR" {
		t.Errorf("PadRight(ERROR, 3) = %q", got)
	}
}
