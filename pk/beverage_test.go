package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LookupNormalization(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		query    string
		wantFrac float64
		wantOK   bool
	}{
		{"exact name", "beer", 0.05, true},
		{"upper case", "BEER", 0.05, true},
		{"mixed case with spaces", "  Wine ", 0.12, true},
		{"spanish alias", "cerveza", 0.05, true},
		{"spirit equals liquor", "spirit", 0.40, true},
		{"unknown beverage", "soda", 0, false},
		{"empty name", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frac, ok := catalog.Fraction(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFrac, frac)
			}
		})
	}
}

func TestNewCatalog_RejectsBadFractions(t *testing.T) {
	tests := []struct {
		name string
		frac float64
	}{
		{"zero fraction", 0},
		{"negative fraction", -0.1},
		{"above one", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(map[string]float64{"test": tt.frac})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewCatalog_NormalizesKeys(t *testing.T) {
	catalog, err := NewCatalog(map[string]float64{"  Cider ": 0.045})
	require.NoError(t, err)

	frac, ok := catalog.Fraction("cider")
	require.True(t, ok)
	assert.Equal(t, 0.045, frac)
}

func TestCatalog_NamesSorted(t *testing.T) {
	names := DefaultCatalog().Names()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "beer")
	assert.Contains(t, names, "absinthe")
}
