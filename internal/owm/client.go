package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/location"
)

const (
	DefaultCurrentURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultOneCallURL = "https://api.openweathermap.org/data/3.0/onecall"
	DefaultTimeout    = 8 * time.Second
)

// ErrTransport wraps every failure that is not an HTTP status: connection
// errors, timeouts and undecodable bodies.
var ErrTransport = errors.New("owm: transport failure")

type Options struct {
	CurrentURL string
	OneCallURL string
	Timeout    time.Duration
	Transport  http.RoundTripper
}

type Client struct {
	currentURL string
	oneCallURL string
	httpClient *http.Client
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.Status)
	}
	return fmt.Sprintf("API returned status %d: %s", e.Status, e.Body)
}

func IsAuthFailure(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden
}

func New(opts Options) *Client {
	if opts.CurrentURL == "" {
		opts.CurrentURL = DefaultCurrentURL
	}
	if opts.OneCallURL == "" {
		opts.OneCallURL = DefaultOneCallURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		currentURL: opts.CurrentURL,
		oneCallURL: opts.OneCallURL,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
	}
}

// CurrentWeather fetches current conditions for loc. An empty region is sent
// as an empty slot in q.
func (c *Client) CurrentWeather(ctx context.Context, loc location.Location, apiKey string) (map[string]any, error) {
	return c.CurrentWeatherByQuery(ctx, loc.Query(), apiKey)
}

func (c *Client) CurrentWeatherByQuery(ctx context.Context, q, apiKey string) (map[string]any, error) {
	u := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", c.currentURL, escapeQuery(q), url.QueryEscape(apiKey))
	resp, err := c.fetchJSON(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetching current weather: %w", err)
	}
	return resp, nil
}

// DailyForecast fetches the One Call document for lat/lon with only the
// current and daily blocks.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64, apiKey string) (map[string]any, error) {
	u := fmt.Sprintf(
		"%s?lat=%s&lon=%s&exclude=minutely,hourly,alerts&appid=%s&units=metric",
		c.oneCallURL, formatCoord(lat), formatCoord(lon), url.QueryEscape(apiKey),
	)
	resp, err := c.fetchJSON(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetching daily forecast: %w", err)
	}
	return resp, nil
}

func (c *Client) fetchJSON(ctx context.Context, u string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}
	return result, nil
}

// escapeQuery escapes each part of a comma separated q value but keeps the
// commas literal.
func escapeQuery(q string) string {
	parts := strings.Split(q, ",")
	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts, ",")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
