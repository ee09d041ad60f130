package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// APIKeyEnv names the variable holding the OpenWeatherMap key. It is read on
// every request through APIKey rather than captured in Config.
const APIKeyEnv = "OPENWEATHER_API_KEY"

const DefaultLocation = "Waterville,ME,US"

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	DefaultLocation   string        `envconfig:"DEFAULT_LOCATION" default:"Waterville,ME,US" validate:"required"`
	CurrentWeatherURL string        `envconfig:"OWM_CURRENT_URL" default:"https://api.openweathermap.org/data/2.5/weather" validate:"required,url"`
	OneCallURL        string        `envconfig:"OWM_ONECALL_URL" default:"https://api.openweathermap.org/data/3.0/onecall" validate:"required,url"`
	UpstreamTimeout   time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"8s" validate:"gt=0"`
	OTLPEndpoint      string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,url"`
}

type ErrorKind string

const (
	ErrParsing    ErrorKind = "PARSING"
	ErrValidation ErrorKind = "VALIDATION"
)

// Error is returned by Load when the environment cannot be turned into a
// usable Config.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config [%s]: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load primes the process environment from a .env file when one exists and
// then reads Config from it. Variables already set in the environment win
// over the .env file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads Config from the current environment without touching .env.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, &Error{Kind: ErrParsing, Err: err}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, &Error{Kind: ErrValidation, Err: err}
	}
	return cfg, nil
}

// APIKey returns the OpenWeatherMap key from the environment, or "" when it
// is unset or blank.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}
