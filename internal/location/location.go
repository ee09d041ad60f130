package location

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrCityCountryRequired = errors.New("city and country are required")

var validate = validator.New()

// Location is a "City,Region,Country" triple. Region is optional.
type Location struct {
	City    string `validate:"required"`
	Region  string
	Country string `validate:"required"`
}

// Parse splits raw on commas into trimmed city, region and country parts.
// Missing parts are left empty and anything past the third part is ignored.
func Parse(raw string) Location {
	parts := strings.Split(raw, ",")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return Location{
		City:    strings.TrimSpace(parts[0]),
		Region:  strings.TrimSpace(parts[1]),
		Country: strings.TrimSpace(parts[2]),
	}
}

func (l Location) Validate() error {
	if err := validate.Struct(l); err != nil {
		return ErrCityCountryRequired
	}
	return nil
}

// Query renders the location for the upstream q parameter. An empty region
// is kept as an empty slot, e.g. "Paris,,FR".
func (l Location) Query() string {
	return l.City + "," + l.Region + "," + l.Country
}

// CompactQuery joins only the non-empty parts.
func (l Location) CompactQuery() string {
	var parts []string
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ",")
}

func (l Location) String() string { return l.Query() }
