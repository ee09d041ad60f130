package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Location
	}{
		{"Waterville,ME,US", Location{City: "Waterville", Region: "ME", Country: "US"}},
		{"  Paris , , FR ", Location{City: "Paris", Country: "FR"}},
		{"Paris,FR", Location{City: "Paris", Region: "FR"}},
		{"Berlin", Location{City: "Berlin"}},
		{"", Location{}},
		{"A,B,C,D", Location{City: "A", Region: "B", Country: "C"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.in), "input %q", tc.in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Parse("Waterville,ME,US").Validate())
	assert.NoError(t, Parse("Paris,,FR").Validate())

	assert.ErrorIs(t, Parse("Waterville,ME,").Validate(), ErrCityCountryRequired)
	assert.ErrorIs(t, Parse(",ME,US").Validate(), ErrCityCountryRequired)
	assert.ErrorIs(t, Parse("   ").Validate(), ErrCityCountryRequired)
}

func TestQueryKeepsEmptyRegion(t *testing.T) {
	assert.Equal(t, "Waterville,ME,US", Parse("Waterville,ME,US").Query())
	assert.Equal(t, "Paris,,FR", Parse("Paris, ,FR").Query())
}

func TestCompactQuerySkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "Paris,FR", Location{City: "Paris", Country: "FR"}.CompactQuery())
	assert.Equal(t, "Waterville,ME,US", Location{City: "Waterville", Region: "ME", Country: "US"}.CompactQuery())
}
