package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnusDewPoint(t *testing.T) {
	assert.InDelta(t, 9.254, MagnusDewPoint(20, 50), 0.001)
	assert.InDelta(t, 20.0, MagnusDewPoint(20, 100), 1e-6)
	assert.InDelta(t, 0.056, MagnusDewPoint(10, 50), 0.001)
	assert.Less(t, MagnusDewPoint(25, 30), 25.0)
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 2, round(2.5))
	assert.Equal(t, 4, round(3.5))
	assert.Equal(t, 10, round(10.4))
	assert.Equal(t, 9, round(8.9))
	assert.Equal(t, -3, round(-2.6))
	assert.Equal(t, 0, round(-0.4))
}

func TestUnitConversions(t *testing.T) {
	cases := []struct {
		meters, speed  float64
		wantVis, wantW string
	}{
		{9000, 5.0, "9 km", "18 km/h"},
		{10000, 0, "10 km", "0 km/h"},
		{2500, 2.5, "2 km", "9 km/h"},
		{3499, 10.3, "3 km", "37 km/h"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.wantVis, formatVisibility(tc.meters))
		assert.Equal(t, tc.wantW, formatWind(tc.speed))
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "10°C", formatTemp(10.4))
	assert.Equal(t, "-4°C", formatTemp(-3.7))
	assert.Equal(t, "9°", formatDegrees(8.9))
	assert.Equal(t, "80%", formatPercent(80))
	assert.Equal(t, "1013 mb", formatPressure(1013))
	assert.Equal(t, "https://openweathermap.org/img/wn/01n@2x.png", iconURL("01n"))
}

func TestFormatLocalTime(t *testing.T) {
	// 2023-11-14 22:13:20 UTC
	assert.Equal(t, "10:13 PM", formatLocalTime(1700000000, 0))
	assert.Equal(t, "5:13 PM", formatLocalTime(1700000000, -5*3600))
	assert.Equal(t, "3:43 AM", formatLocalTime(1700000000, 5*3600+30*60))
	assert.Equal(t, "12:00 AM", formatLocalTime(0, 0))
	assert.Equal(t, "12:05 PM", formatLocalTime(12*3600+5*60, 0))
}
