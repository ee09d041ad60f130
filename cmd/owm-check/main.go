// Command owm-check fetches current conditions for one location and prints
// the fields the dashboard relies on. It is a quick way to confirm that an
// OpenWeatherMap key is active.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/owm"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("owm-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	city := fs.String("city", "Waterville", "city name")
	region := fs.String("region", "ME", "state or region code, may be empty")
	country := fs.String("country", "US", "ISO country code")
	endpoint := fs.String("url", owm.DefaultCurrentURL, "current weather endpoint")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_ = godotenv.Load()
	apiKey := config.APIKey()
	if apiKey == "" {
		fmt.Fprintf(stderr, "Missing environment variable: %s\n", config.APIKeyEnv)
		return 1
	}

	loc := location.Location{City: *city, Region: *region, Country: *country}
	client := owm.New(owm.Options{CurrentURL: *endpoint, Timeout: 10 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Fprintf(stdout, "Request location: %s\n", loc.CompactQuery())
	data, err := client.CurrentWeatherByQuery(ctx, loc.CompactQuery(), apiKey)
	if err != nil {
		fmt.Fprintf(stderr, "request failed: %v\n", err)
		return 1
	}

	weather := firstMap(data["weather"])
	mainBlock, _ := data["main"].(map[string]any)
	wind, _ := data["wind"].(map[string]any)

	fmt.Fprintln(stdout, "\nSuccess! Key fields:")
	fmt.Fprintln(stdout, "name:", show(data["name"]))
	fmt.Fprintln(stdout, "weather:", show(weather["description"]))
	fmt.Fprintln(stdout, "temp (C):", show(mainBlock["temp"]))
	fmt.Fprintln(stdout, "feels_like (C):", show(mainBlock["feels_like"]))
	fmt.Fprintln(stdout, "humidity:", show(mainBlock["humidity"]))
	fmt.Fprintln(stdout, "pressure:", show(mainBlock["pressure"]))
	fmt.Fprintln(stdout, "wind speed (m/s):", show(wind["speed"]))
	fmt.Fprintln(stdout, "visibility (m):", show(data["visibility"]))
	return 0
}

func firstMap(v any) map[string]any {
	if arr, ok := v.([]any); ok && len(arr) > 0 {
		if m, ok := arr[0].(map[string]any); ok {
			return m
		}
	}
	return nil
}

func show(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(v)
}
