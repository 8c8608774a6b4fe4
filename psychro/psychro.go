// Package psychro provides the psychrometric derivation used by the
// condenser control law: dew point from dry-bulb temperature and relative
// humidity via the Magnus approximation.
//
// The coefficients (17.271, 237.3) and the 1.8x+32 Celsius-to-Fahrenheit
// conversion are fixed; reference computations in the tests depend on them
// bit for bit.
package psychro

import "math"

const (
	magnusB = 17.271
	magnusC = 237.3 // °C
)

// DewPointF returns the dew point in °F for a dry-bulb temperature in °C
// and relative humidity in percent.
//
// The formula is evaluated in Celsius and converted:
//
//	γ      = (ln(RH/100) + B·Tc/(C+Tc)) / B
//	Tdew_C = C·γ / (1−γ)
//
// RH = 0 is outside the domain of the logarithmic term and yields NaN;
// the actuator decision treats a NaN dew point as its error branch, so no
// guard is applied here. RH > 100 is evaluated as-is, not clamped.
func DewPointF(dryBulbC, relHumidity float64) float64 {
	g := (math.Log(relHumidity/100.0) + (magnusB*dryBulbC)/(magnusC+dryBulbC)) / magnusB
	dewC := (magnusC * g) / (1.0 - g)
	return dewC*1.8 + 32.0
}

// CToF converts a Celsius temperature to Fahrenheit.
func CToF(c float64) float64 { return c*1.8 + 32.0 }
