package models

// DisplayContext is everything the dashboard template renders for one
// request. Nil pointers render as absent values.
type DisplayContext struct {
	WeatherData      map[string]any `json:"weather_data"`
	ErrorMessage     *string        `json:"error_message"`
	SelectedLocation string         `json:"selected_location"`

	CurrentTime    *string `json:"current_time"`
	CurrentIconURL *string `json:"current_icon_url"`
	CurrentTemp    *string `json:"current_temp"`
	CurrentDesc    *string `json:"current_desc"`
	FeelsLike      *string `json:"feels_like"`
	CurrentSummary *string `json:"current_summary"`
	WindSpeed      *string `json:"wind_speed"`
	Humidity       *string `json:"humidity"`
	Visibility     *string `json:"visibility"`
	Pressure       *string `json:"pressure"`
	DewPoint       *string `json:"dew_point"`

	MapLat *float64 `json:"map_lat"`
	MapLon *float64 `json:"map_lon"`
}

// HasWeather reports whether the primary lookup succeeded.
func (d DisplayContext) HasWeather() bool {
	return d.WeatherData != nil
}
