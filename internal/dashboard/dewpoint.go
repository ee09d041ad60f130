package dashboard

import "math"

// Magnus coefficients for water, valid roughly between -45°C and 60°C.
const (
	magnusA = 17.27
	magnusB = 237.7
)

// MagnusDewPoint approximates the dew point in °C from the air temperature in
// °C and relative humidity in percent. rh must be positive.
func MagnusDewPoint(tempC, rh float64) float64 {
	gamma := math.Log(rh/100) + (magnusA*tempC)/(magnusB+tempC)
	return (magnusB * gamma) / (magnusA - gamma)
}
