package pk

import (
	"fmt"
	"math"
)

// ReferenceBreathTempC is the physiological reference temperature (deg C) for
// the blood:breath ratio correction. Reference BBR tables assume exhaled air
// at this temperature.
const ReferenceBreathTempC = 34.0

// EliminationLaw is the elimination side of the central compartment. Each
// implementation carries only its own parameters, so a parameter set that does
// not belong to the selected law cannot be expressed.
type EliminationLaw interface {
	// Rate returns the elimination rate (g/L/h) at concentration c (g/L).
	Rate(c float64) float64
	// WithTolerance returns a copy of the law with its elimination capacity
	// scaled for a habitual drinker. level is in [0,1]; level 0 returns the
	// law unchanged, higher levels raise capacity monotonically, modeling
	// enzymatic induction.
	WithTolerance(level float64) EliminationLaw
	// Validate checks the law's parameters against their documented ranges.
	Validate() error
	// Mode returns the law's name for error messages and scenario files.
	Mode() string
}

// Saturable is Michaelis-Menten elimination: the rate saturates toward Vmax as
// concentration grows, approximating zero-order kinetics at high concentration
// and first-order at low concentration.
type Saturable struct {
	VmaxGPerLH float64 // maximum elimination rate (g/L/h, > 0)
	KmGPerL    float64 // half-saturation concentration (g/L, > 0)
}

func (l Saturable) Rate(c float64) float64 {
	if c <= 0 {
		return 0
	}
	return l.VmaxGPerLH * c / (l.KmGPerL + c)
}

func (l Saturable) WithTolerance(level float64) EliminationLaw {
	tol := clamp01(level)
	return Saturable{
		VmaxGPerLH: l.VmaxGPerLH * (1.0 + 0.6*tol),
		KmGPerL:    math.Max(1e-6, l.KmGPerL*(1.0+0.2*tol)),
	}
}

func (l Saturable) Validate() error {
	if l.VmaxGPerLH <= 0 {
		return fmt.Errorf("%w: saturable Vmax must be > 0 g/L/h, got %g", ErrConfiguration, l.VmaxGPerLH)
	}
	if l.KmGPerL <= 0 {
		return fmt.Errorf("%w: saturable Km must be > 0 g/L, got %g", ErrConfiguration, l.KmGPerL)
	}
	return nil
}

func (l Saturable) Mode() string { return "saturable" }

// ZeroOrder is constant-rate elimination, the classical clinical
// approximation. The integration loop clamps the rate so a single step cannot
// drive the concentration below zero.
type ZeroOrder struct {
	BetaGPerLH float64 // elimination rate (g/L/h, > 0)
}

func (l ZeroOrder) Rate(c float64) float64 {
	if c <= 0 {
		return 0
	}
	return l.BetaGPerLH
}

func (l ZeroOrder) WithTolerance(level float64) EliminationLaw {
	return ZeroOrder{BetaGPerLH: l.BetaGPerLH * (1.0 + 0.4*clamp01(level))}
}

func (l ZeroOrder) Validate() error {
	if l.BetaGPerLH <= 0 {
		return fmt.Errorf("%w: zero-order beta must be > 0 g/L/h, got %g", ErrConfiguration, l.BetaGPerLH)
	}
	return nil
}

func (l ZeroOrder) Mode() string { return "zero-order" }

// FirstOrder is elimination proportional to the current concentration.
// Capacity is unbounded, so the tolerance adjustment leaves it unchanged.
type FirstOrder struct {
	KePerHour float64 // elimination rate constant (1/h, > 0)
}

func (l FirstOrder) Rate(c float64) float64 {
	if c <= 0 {
		return 0
	}
	return l.KePerHour * c
}

func (l FirstOrder) WithTolerance(level float64) EliminationLaw { return l }

func (l FirstOrder) Validate() error {
	if l.KePerHour <= 0 {
		return fmt.Errorf("%w: first-order ke must be > 0 1/h, got %g", ErrConfiguration, l.KePerHour)
	}
	return nil
}

func (l FirstOrder) Mode() string { return "first-order" }

// ModelOptions holds the configurable kinetic constants for one simulation
// call. Immutable once constructed.
type ModelOptions struct {
	KaPerHour          float64        // base first-order absorption rate constant (1/h, > 0)
	FoodFactor         float64        // multiplicative ka modifier, < 1 slows absorption (> 0)
	CarbonationFactor  float64        // multiplicative ka modifier, > 1 speeds absorption (> 0)
	Elimination        EliminationLaw // selected elimination law with its parameters
	BBRBase            float64        // blood:breath ratio at the reference breath temperature
	BBRTempCoeffPerDeg float64        // additive BBR correction per deg C away from reference
}

// DefaultModelOptions returns fasting-state kinetics with Michaelis-Menten
// elimination and the conventional 2100:1 blood:breath ratio.
func DefaultModelOptions() ModelOptions {
	return ModelOptions{
		KaPerHour:          2.4,
		FoodFactor:         1.0,
		CarbonationFactor:  1.0,
		Elimination:        Saturable{VmaxGPerLH: 0.20, KmGPerL: 0.15},
		BBRBase:            2100.0,
		BBRTempCoeffPerDeg: 0.0,
	}
}

// Validate checks the options against their documented ranges and delegates to
// the elimination law. The effective BBR is checked separately because it
// depends on the subject's breath temperature.
func (o ModelOptions) Validate() error {
	if o.KaPerHour <= 0 {
		return fmt.Errorf("%w: base ka must be > 0 1/h, got %g", ErrValidation, o.KaPerHour)
	}
	if o.FoodFactor <= 0 {
		return fmt.Errorf("%w: food factor must be > 0, got %g", ErrValidation, o.FoodFactor)
	}
	if o.CarbonationFactor <= 0 {
		return fmt.Errorf("%w: carbonation factor must be > 0, got %g", ErrValidation, o.CarbonationFactor)
	}
	if o.Elimination == nil {
		return fmt.Errorf("%w: elimination law not set", ErrConfiguration)
	}
	if err := o.Elimination.Validate(); err != nil {
		return err
	}
	if o.BBRBase <= 0 {
		return fmt.Errorf("%w: base BBR must be > 0, got %g", ErrConfiguration, o.BBRBase)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
