package pk

import (
	"fmt"
	"strings"
)

// EthanolDensityGPerML is the density of pure ethanol (g/mL).
const EthanolDensityGPerML = 0.789

// DoseEvent is one ingestion: a volume of a catalog beverage swallowed at a
// time offset from the start of the simulation. KaScale adjusts the absorption
// rate for this intake only (e.g. a slowly sipped drink); zero means the
// default of 1.0.
type DoseEvent struct {
	TimeH    float64 // ingestion time offset from t=0 (h, >= 0)
	VolumeML float64 // beverage volume (mL, > 0)
	Beverage string  // beverage name, must resolve in the catalog
	KaScale  float64 // local absorption multiplier (default 1.0)
}

// resolvedDose is a DoseEvent converted to engine terms: absolute ethanol mass
// and the effective absorption rate constant for this intake.
type resolvedDose struct {
	t0        float64 // ingestion time (h)
	massGrams float64 // ethanol delivered to the GI compartment (g)
	kaPerHour float64 // effective first-order absorption constant (1/h)
}

// resolveDoses converts the dose batch into engine terms. Any invalid dose
// fails the whole batch; doses are never silently skipped.
func resolveDoses(doses []DoseEvent, opts ModelOptions, catalog Catalog) ([]resolvedDose, error) {
	resolved := make([]resolvedDose, 0, len(doses))
	baseKa := opts.KaPerHour * opts.FoodFactor * opts.CarbonationFactor
	for i, d := range doses {
		if d.VolumeML <= 0 {
			return nil, fmt.Errorf("%w: dose %d: volume must be > 0 mL, got %g", ErrValidation, i, d.VolumeML)
		}
		if d.TimeH < 0 {
			return nil, fmt.Errorf("%w: dose %d: ingestion time must be >= 0 h, got %g", ErrValidation, i, d.TimeH)
		}
		if d.KaScale < 0 {
			return nil, fmt.Errorf("%w: dose %d: ka scale must not be negative, got %g", ErrValidation, i, d.KaScale)
		}
		frac, ok := catalog.Fraction(d.Beverage)
		if !ok {
			return nil, fmt.Errorf("%w: dose %d: unknown beverage %q (catalog: %s)",
				ErrValidation, i, d.Beverage, strings.Join(catalog.Names(), ", "))
		}
		scale := d.KaScale
		if scale == 0 {
			scale = 1.0
		}
		resolved = append(resolved, resolvedDose{
			t0:        d.TimeH,
			massGrams: d.VolumeML * frac * EthanolDensityGPerML,
			kaPerHour: baseKa * scale,
		})
	}
	return resolved, nil
}
