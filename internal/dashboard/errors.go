package dashboard

import (
	"errors"

	"weather-dashboard/internal/location"
	"weather-dashboard/internal/owm"
)

var (
	ErrValidation   = errors.New("dashboard: city and country are required")
	ErrConfig       = errors.New("dashboard: api key not configured")
	ErrUpstreamHTTP = errors.New("dashboard: upstream returned an error status")
	ErrNetwork      = errors.New("dashboard: network failure")
)

const (
	MsgValidation   = "City and Country are required."
	MsgConfig       = "API key not configured."
	MsgUpstreamHTTP = "Unable to fetch weather data."
	MsgNetwork      = "Network error. Please try again."
)

// Outcome is the terminal state of one dashboard build.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeValidationError Outcome = "validation_error"
	OutcomeConfigError     Outcome = "config_error"
	OutcomeFetchError      Outcome = "fetch_error"
	OutcomeNetworkError    Outcome = "network_error"
)

// UserMessage maps an error from the taxonomy above to the text shown on the
// page. Unknown errors are reported as network failures.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, location.ErrCityCountryRequired):
		return MsgValidation
	case errors.Is(err, ErrConfig):
		return MsgConfig
	case errors.Is(err, ErrUpstreamHTTP):
		return MsgUpstreamHTTP
	default:
		return MsgNetwork
	}
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrValidation), errors.Is(err, location.ErrCityCountryRequired):
		return OutcomeValidationError
	case errors.Is(err, ErrConfig):
		return OutcomeConfigError
	case errors.Is(err, ErrUpstreamHTTP):
		return OutcomeFetchError
	default:
		return OutcomeNetworkError
	}
}

// classifyFetch sorts a client error into ErrUpstreamHTTP or ErrNetwork while
// keeping the client error in the chain.
func classifyFetch(err error) error {
	var se *owm.StatusError
	if errors.As(err, &se) {
		return errors.Join(ErrUpstreamHTTP, err)
	}
	return errors.Join(ErrNetwork, err)
}
