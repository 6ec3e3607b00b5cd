package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminationLaw_Rates(t *testing.T) {
	tests := []struct {
		name string
		law  EliminationLaw
		c    float64
		want float64
	}{
		{"saturable at Km is half Vmax", Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}, 0.15, 0.10},
		{"saturable at zero", Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}, 0, 0},
		{"zero-order constant", ZeroOrder{BetaGPerLH: 0.18}, 0.5, 0.18},
		{"zero-order off at zero", ZeroOrder{BetaGPerLH: 0.18}, 0, 0},
		{"first-order proportional", FirstOrder{KePerHour: 0.15}, 0.8, 0.12},
		{"first-order at zero", FirstOrder{KePerHour: 0.15}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.law.Rate(tt.c), 1e-12)
		})
	}
}

func TestEliminationLaw_SaturableApproachesVmax(t *testing.T) {
	law := Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}

	// Rate saturates toward Vmax as concentration grows but never reaches it.
	assert.Less(t, law.Rate(5.0), law.VmaxGPerLH)
	assert.InDelta(t, law.VmaxGPerLH, law.Rate(100.0), 0.001)
}

func TestEliminationLaw_WithTolerance(t *testing.T) {
	t.Run("identity at level zero", func(t *testing.T) {
		assert.Equal(t, Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15},
			Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}.WithTolerance(0))
		assert.Equal(t, ZeroOrder{BetaGPerLH: 0.18}, ZeroOrder{BetaGPerLH: 0.18}.WithTolerance(0))
		assert.Equal(t, FirstOrder{KePerHour: 0.15}, FirstOrder{KePerHour: 0.15}.WithTolerance(0))
	})

	t.Run("capacity increases monotonically with level", func(t *testing.T) {
		laws := []EliminationLaw{
			Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15},
			ZeroOrder{BetaGPerLH: 0.18},
		}
		for _, law := range laws {
			prev := law.WithTolerance(0).Rate(0.5)
			for _, level := range []float64{0.25, 0.5, 0.75, 1.0} {
				cur := law.WithTolerance(level).Rate(0.5)
				assert.Greater(t, cur, prev, "%s rate at level %g", law.Mode(), level)
				prev = cur
			}
		}
	})

	t.Run("saturable capacity gain is bounded", func(t *testing.T) {
		base := Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}
		adjusted := base.WithTolerance(1.0).(Saturable)
		assert.InDelta(t, 0.32, adjusted.VmaxGPerLH, 1e-12) // +60% at full tolerance
		assert.InDelta(t, 0.18, adjusted.KmGPerL, 1e-12)    // +20% at full tolerance
	})

	t.Run("level clamped to unit interval", func(t *testing.T) {
		base := ZeroOrder{BetaGPerLH: 0.18}
		assert.Equal(t, base.WithTolerance(1.0), base.WithTolerance(5.0))
		assert.Equal(t, base.WithTolerance(0), base.WithTolerance(-1))
	})
}

func TestEliminationLaw_Validate(t *testing.T) {
	tests := []struct {
		name   string
		law    EliminationLaw
		wantOK bool
	}{
		{"valid saturable", Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15}, true},
		{"valid zero-order", ZeroOrder{BetaGPerLH: 0.18}, true},
		{"valid first-order", FirstOrder{KePerHour: 0.15}, true},
		{"saturable zero Vmax", Saturable{VmaxGPerLH: 0, KmGPerL: 0.15}, false},
		{"saturable zero Km", Saturable{VmaxGPerLH: 0.20, KmGPerL: 0}, false},
		{"zero-order zero beta", ZeroOrder{}, false},
		{"first-order negative ke", FirstOrder{KePerHour: -0.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.law.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
			}
		})
	}
}

func TestModelOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ModelOptions)
		wantErr error
	}{
		{"defaults are valid", func(o *ModelOptions) {}, nil},
		{"zero ka", func(o *ModelOptions) { o.KaPerHour = 0 }, ErrValidation},
		{"negative food factor", func(o *ModelOptions) { o.FoodFactor = -1 }, ErrValidation},
		{"zero carbonation factor", func(o *ModelOptions) { o.CarbonationFactor = 0 }, ErrValidation},
		{"missing elimination law", func(o *ModelOptions) { o.Elimination = nil }, ErrConfiguration},
		{"invalid elimination parameters", func(o *ModelOptions) { o.Elimination = Saturable{} }, ErrConfiguration},
		{"non-positive base BBR", func(o *ModelOptions) { o.BBRBase = 0 }, ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultModelOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
