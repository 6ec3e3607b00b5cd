package pk

import "fmt"

// Sex selects the coefficient set in the anthropometric distribution-volume
// formula. It has no other role in the model.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// VdMethod selects how the volume of distribution is derived.
type VdMethod string

const (
	// VdAnthropometric estimates total body water from the Watson formulas
	// (weight, height, age, sex).
	VdAnthropometric VdMethod = "anthropometric"
	// VdFixedRatio multiplies body weight by a fixed Widmark r (L/kg).
	VdFixedRatio VdMethod = "fixed-ratio"
)

// Subject holds one person's physiological attributes for a single simulation
// call. Constructed once from caller input and immutable thereafter.
type Subject struct {
	WeightKg      float64  // body weight (kg, > 0)
	HeightCm      float64  // height (cm, > 0)
	AgeYears      float64  // age (years, > 0)
	Sex           Sex      // coefficient selector for the Watson formulas
	BreathTempC   float64  // exhaled air temperature (deg C)
	HabitualLevel float64  // habitual consumption 0 (naive) .. 1 (chronic)
	VdMethod      VdMethod // distribution-volume derivation method
	WidmarkR      float64  // L/kg, used only with VdFixedRatio
}

// Validate checks the subject's attributes against their documented ranges,
// including that the derived distribution volume is positive.
func (s Subject) Validate() error {
	if s.WeightKg <= 0 {
		return fmt.Errorf("%w: subject weight must be > 0 kg, got %g", ErrValidation, s.WeightKg)
	}
	if s.HeightCm <= 0 {
		return fmt.Errorf("%w: subject height must be > 0 cm, got %g", ErrValidation, s.HeightCm)
	}
	if s.AgeYears <= 0 {
		return fmt.Errorf("%w: subject age must be > 0 years, got %g", ErrValidation, s.AgeYears)
	}
	if s.Sex != Male && s.Sex != Female {
		return fmt.Errorf("%w: unknown sex %q", ErrValidation, s.Sex)
	}
	if s.HabitualLevel < 0 || s.HabitualLevel > 1 {
		return fmt.Errorf("%w: habitual level must be in [0,1], got %g", ErrValidation, s.HabitualLevel)
	}
	switch s.VdMethod {
	case VdAnthropometric:
	case VdFixedRatio:
		if s.WidmarkR <= 0 {
			return fmt.Errorf("%w: Widmark r must be > 0 L/kg, got %g", ErrValidation, s.WidmarkR)
		}
	default:
		return fmt.Errorf("%w: unknown distribution-volume method %q", ErrValidation, s.VdMethod)
	}
	vd, err := s.DistributionVolume()
	if err != nil {
		return err
	}
	if vd <= 0 {
		return fmt.Errorf("%w: derived distribution volume must be > 0 L, got %g", ErrValidation, vd)
	}
	return nil
}

// DistributionVolume derives the apparent volume (liters) ethanol distributes
// into, per the configured method.
func (s Subject) DistributionVolume() (float64, error) {
	switch s.VdMethod {
	case VdAnthropometric:
		return watsonTBWLiters(s.Sex, s.AgeYears, s.HeightCm, s.WeightKg), nil
	case VdFixedRatio:
		return s.WidmarkR * s.WeightKg, nil
	default:
		return 0, fmt.Errorf("%w: unknown distribution-volume method %q", ErrValidation, s.VdMethod)
	}
}

// watsonTBWLiters estimates total body water (liters) with the Watson
// formulas, the standard clinical anthropometric approximation.
func watsonTBWLiters(sex Sex, ageYears, heightCm, weightKg float64) float64 {
	if sex == Male {
		return 2.447 - 0.09516*ageYears + 0.1074*heightCm + 0.3362*weightKg
	}
	return -2.097 + 0.1069*heightCm + 0.2466*weightKg
}
