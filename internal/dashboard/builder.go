package dashboard

import (
	"context"
	"log/slog"
	"strings"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/models"
)

// WeatherSource is the subset of the OpenWeatherMap client the dashboard
// needs. *owm.Client satisfies it.
type WeatherSource interface {
	CurrentWeather(ctx context.Context, loc location.Location, apiKey string) (map[string]any, error)
	DailyForecast(ctx context.Context, lat, lon float64, apiKey string) (map[string]any, error)
}

// Builder turns a submitted location into a DisplayContext. It keeps no state
// between calls, so one Builder serves all requests.
type Builder struct {
	source          WeatherSource
	apiKey          func() string
	defaultLocation string
	logger          *slog.Logger
}

type Option func(*Builder)

// WithAPIKey replaces the per-request key lookup, config.APIKey by default.
func WithAPIKey(fn func() string) Option {
	return func(b *Builder) { b.apiKey = fn }
}

func WithDefaultLocation(raw string) Option {
	return func(b *Builder) {
		if strings.TrimSpace(raw) != "" {
			b.defaultLocation = strings.TrimSpace(raw)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func NewBuilder(source WeatherSource, opts ...Option) *Builder {
	b := &Builder{
		source:          source,
		apiKey:          config.APIKey,
		defaultLocation: config.DefaultLocation,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build never fails: errors end up in ErrorMessage and leave every weather
// field nil. The Outcome is for logging and metrics only.
func (b *Builder) Build(ctx context.Context, submitted string) (models.DisplayContext, Outcome) {
	selected := strings.TrimSpace(submitted)
	if selected == "" {
		selected = b.defaultLocation
	}
	out := models.DisplayContext{SelectedLocation: selected}

	data, apiKey, err := b.fetch(ctx, selected)
	if err != nil {
		out.ErrorMessage = ptr(UserMessage(err))
		outcome := outcomeOf(err)
		b.logger.DebugContext(ctx, "dashboard build failed", "location", selected, "outcome", outcome, "error", err)
		return out, outcome
	}

	b.fill(ctx, &out, data, apiKey)
	return out, OutcomeSuccess
}

// fetch validates the location, resolves the API key and performs the
// current-weather call. The key is returned so the One Call lookup uses the
// same value.
func (b *Builder) fetch(ctx context.Context, selected string) (map[string]any, string, error) {
	loc := location.Parse(selected)
	if err := loc.Validate(); err != nil {
		return nil, "", ErrValidation
	}

	apiKey := strings.TrimSpace(b.apiKey())
	if apiKey == "" {
		return nil, "", ErrConfig
	}

	data, err := b.source.CurrentWeather(ctx, loc, apiKey)
	if err != nil {
		return nil, "", classifyFetch(err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, apiKey, nil
}

func (b *Builder) fill(ctx context.Context, out *models.DisplayContext, data map[string]any, apiKey string) {
	out.WeatherData = data

	weather := getFirstInArray(data, "weather")
	mainBlock := getMap(data, "main")

	if icon := strings.TrimSpace(getString(weather, "icon")); icon != "" {
		out.CurrentIconURL = ptr(iconURL(icon))
	}

	longDesc := strings.TrimSpace(getString(weather, "description"))
	if label := strings.TrimSpace(getString(weather, "main")); label != "" {
		out.CurrentDesc = ptr(label)
	} else if longDesc != "" {
		out.CurrentDesc = ptr(longDesc)
	}
	if longDesc != "" {
		out.CurrentSummary = ptr("It is " + longDesc + ".")
	}

	temp, hasTemp := getFloat(mainBlock, "temp")
	feels, _ := getFloat(mainBlock, "feels_like")
	humidity, hasHumidity := getFloat(mainBlock, "humidity")
	pressure, _ := getFloat(mainBlock, "pressure")

	out.CurrentTemp = ptr(formatTemp(temp))
	out.FeelsLike = ptr(formatDegrees(feels))
	out.Humidity = ptr(formatPercent(humidity))
	out.Pressure = ptr(formatPressure(pressure))

	if meters, ok := getFloat(data, "visibility"); ok {
		out.Visibility = ptr(formatVisibility(meters))
	}
	if speed, ok := getFloat(getMap(data, "wind"), "speed"); ok {
		out.WindSpeed = ptr(formatWind(speed))
	}
	if dt, ok := getFloat(data, "dt"); ok {
		offset, _ := getFloat(data, "timezone")
		out.CurrentTime = ptr(formatLocalTime(int64(dt), int64(offset)))
	}

	coord := getMap(data, "coord")
	lat, hasLat := getFloat(coord, "lat")
	lon, hasLon := getFloat(coord, "lon")
	if hasLat {
		out.MapLat = ptr(lat)
	}
	if hasLon {
		out.MapLon = ptr(lon)
	}

	if hasLat && hasLon {
		if dp, ok := b.forecastDewPoint(ctx, lat, lon, apiKey); ok {
			out.DewPoint = ptr(formatDegrees(dp))
		}
	}
	if out.DewPoint == nil && hasTemp && hasHumidity && humidity > 0 {
		out.DewPoint = ptr(formatDegrees(MagnusDewPoint(temp, humidity)))
	}
}

// forecastDewPoint asks One Call for today's dew point. Any failure is
// swallowed; the caller falls back to the Magnus approximation.
func (b *Builder) forecastDewPoint(ctx context.Context, lat, lon float64, apiKey string) (float64, bool) {
	resp, err := b.source.DailyForecast(ctx, lat, lon, apiKey)
	if err != nil {
		b.logger.WarnContext(ctx, "daily forecast unavailable, approximating dew point", "lat", lat, "lon", lon, "error", err)
		return 0, false
	}
	dp, ok := getFloat(getFirstInArray(resp, "daily"), "dew_point")
	if !ok {
		b.logger.DebugContext(ctx, "daily forecast has no dew point", "lat", lat, "lon", lon)
	}
	return dp, ok
}
