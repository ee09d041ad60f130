package dashboard

import (
	"fmt"
	"math"
	"time"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// round uses half-to-even so 2.5 becomes 2 and 3.5 becomes 4.
func round(v float64) int {
	return int(math.RoundToEven(v))
}

func ptr[T any](v T) *T { return &v }

func formatTemp(c float64) string       { return fmt.Sprintf("%d°C", round(c)) }
func formatDegrees(c float64) string    { return fmt.Sprintf("%d°", round(c)) }
func formatPercent(p float64) string    { return fmt.Sprintf("%d%%", round(p)) }
func formatPressure(hpa float64) string { return fmt.Sprintf("%d mb", round(hpa)) }

func formatVisibility(meters float64) string {
	return fmt.Sprintf("%d km", round(meters/1000))
}

func formatWind(metersPerSecond float64) string {
	return fmt.Sprintf("%d km/h", round(metersPerSecond*3.6))
}

// formatLocalTime shifts the UTC epoch by the location's offset and prints the
// wall clock as e.g. "3:45 PM".
func formatLocalTime(epoch, offsetSeconds int64) string {
	return time.Unix(epoch+offsetSeconds, 0).UTC().Format("3:04 PM")
}

func iconURL(code string) string {
	return fmt.Sprintf(iconURLFormat, code)
}
