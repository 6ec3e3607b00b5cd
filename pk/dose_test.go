package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDoses_MassAndRate(t *testing.T) {
	opts := ModelOptions{KaPerHour: 2.4, FoodFactor: 0.8, CarbonationFactor: 1.1}
	catalog := DefaultCatalog()

	doses := []DoseEvent{
		{TimeH: 0, VolumeML: 40, Beverage: "liquor"},
		{TimeH: 0.75, VolumeML: 330, Beverage: "beer", KaScale: 0.9},
	}

	resolved, err := resolveDoses(doses, opts, catalog)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	// 40 mL x 0.40 ethanol x 0.789 g/mL
	assert.InDelta(t, 12.624, resolved[0].massGrams, 1e-9)
	assert.InDelta(t, 2.4*0.8*1.1, resolved[0].kaPerHour, 1e-12)
	assert.Equal(t, 0.0, resolved[0].t0)

	// 330 mL x 0.05 ethanol x 0.789 g/mL, local ka scale applied on top
	assert.InDelta(t, 13.0185, resolved[1].massGrams, 1e-9)
	assert.InDelta(t, 2.4*0.8*1.1*0.9, resolved[1].kaPerHour, 1e-12)
	assert.Equal(t, 0.75, resolved[1].t0)
}

func TestResolveDoses_ZeroKaScaleMeansDefault(t *testing.T) {
	opts := DefaultModelOptions()

	resolved, err := resolveDoses([]DoseEvent{{TimeH: 0, VolumeML: 100, Beverage: "wine"}}, opts, DefaultCatalog())
	require.NoError(t, err)
	assert.InDelta(t, opts.KaPerHour, resolved[0].kaPerHour, 1e-12)
}

func TestResolveDoses_RejectsInvalidDose(t *testing.T) {
	tests := []struct {
		name string
		dose DoseEvent
	}{
		{"zero volume", DoseEvent{TimeH: 0, VolumeML: 0, Beverage: "beer"}},
		{"negative volume", DoseEvent{TimeH: 0, VolumeML: -40, Beverage: "beer"}},
		{"negative time", DoseEvent{TimeH: -0.5, VolumeML: 40, Beverage: "beer"}},
		{"negative ka scale", DoseEvent{TimeH: 0, VolumeML: 40, Beverage: "beer", KaScale: -1}},
		{"unknown beverage", DoseEvent{TimeH: 0, VolumeML: 40, Beverage: "soda"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A single bad dose fails the whole batch, even with valid rows around it.
			doses := []DoseEvent{
				{TimeH: 0, VolumeML: 40, Beverage: "liquor"},
				tt.dose,
			}
			_, err := resolveDoses(doses, DefaultModelOptions(), DefaultCatalog())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), "dose 1")
		})
	}
}
