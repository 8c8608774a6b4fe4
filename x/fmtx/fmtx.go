// Package fmtx provides the small formatting helpers the display and log
// rendering need, implemented with integer math so MCU builds do not pull
// in fmt or the full strconv float path.
package fmtx

import "math"

// FormatFixed renders v with exactly prec fractional digits (round half
// away from zero). Non-finite values render as "NaN", "+Inf" or "-Inf".
// prec is capped at 9.
func FormatFixed(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	if prec < 0 {
		prec = 0
	}
	if prec > 9 {
		prec = 9
	}

	neg := v < 0
	if neg {
		v = -v
	}
	scale := int64(1)
	for i := 0; i < prec; i++ {
		scale *= 10
	}
	// Round in the scaled integer domain.
	scaled := int64(v*float64(scale) + 0.5)
	whole := scaled / scale
	frac := scaled % scale

	var buf [32]byte
	i := len(buf)
	for p := 0; p < prec; p++ {
		i--
		buf[i] = byte('0' + frac%10)
		frac /= 10
	}
	if prec > 0 {
		i--
		buf[i] = '.'
	}
	if whole == 0 {
		i--
		buf[i] = '0'
	}
	for whole > 0 {
		i--
		buf[i] = byte('0' + whole%10)
		whole /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// PadRight extends s with spaces to width. Strings already at or beyond
// width are returned unchanged; the display rows rely on the padding to
// overwrite stale characters.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	b := make([]byte, width)
	copy(b, s)
	for i := len(s); i < width; i++ {
		b[i] = ' '
	}
	return string(b)
}
