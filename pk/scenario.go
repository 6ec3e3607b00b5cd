package pk

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML file format for a complete simulation setup: subject,
// model options, dose list and time grid. Nil pointer fields mean "not set" —
// they fall back to the engine defaults when the scenario is built.
type Scenario struct {
	Subject   ScenarioSubject `yaml:"subject"`
	Options   ScenarioOptions `yaml:"options"`
	Doses     []ScenarioDose  `yaml:"doses"`
	DurationH *float64        `yaml:"duration_h"`
	DtH       *float64        `yaml:"dt_h"`
}

// ScenarioSubject mirrors Subject with YAML tags.
type ScenarioSubject struct {
	WeightKg      float64  `yaml:"weight_kg"`
	HeightCm      float64  `yaml:"height_cm"`
	AgeYears      float64  `yaml:"age_years"`
	Sex           string   `yaml:"sex"`
	BreathTempC   *float64 `yaml:"breath_temp_c"`
	HabitualLevel float64  `yaml:"habitual_level"`
	VdMethod      string   `yaml:"vd_method"`
	WidmarkR      *float64 `yaml:"widmark_r"`
}

// ScenarioOptions mirrors ModelOptions; the elimination law is selected by a
// mode string carrying only its own parameters.
type ScenarioOptions struct {
	KaPerHour          *float64            `yaml:"ka_per_hour"`
	FoodFactor         *float64            `yaml:"food_factor"`
	CarbonationFactor  *float64            `yaml:"carbonation_factor"`
	Elimination        ScenarioElimination `yaml:"elimination"`
	BBRBase            *float64            `yaml:"bbr_base"`
	BBRTempCoeffPerDeg *float64            `yaml:"bbr_temp_coeff_per_deg"`
}

// ScenarioElimination selects the elimination law. Parameters belonging to a
// mode other than the selected one are rejected at build time.
type ScenarioElimination struct {
	Mode       string   `yaml:"mode"`
	VmaxGPerLH *float64 `yaml:"vmax_g_per_l_h"`
	KmGPerL    *float64 `yaml:"km_g_per_l"`
	BetaGPerLH *float64 `yaml:"beta_g_per_l_h"`
	KePerHour  *float64 `yaml:"ke_per_hour"`
}

// ScenarioDose mirrors DoseEvent with YAML tags.
type ScenarioDose struct {
	TimeH    float64 `yaml:"time_h"`
	VolumeML float64 `yaml:"volume_ml"`
	Beverage string  `yaml:"beverage"`
	KaScale  float64 `yaml:"ka_scale"`
}

// LoadScenario reads and parses a YAML scenario file with strict field
// checking, so typoed keys fail instead of being silently dropped.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Build converts the scenario into engine inputs, applying engine defaults for
// unset fields. Semantic validation of the built values is left to Simulate.
func (sc *Scenario) Build() (Subject, ModelOptions, []DoseEvent, Grid, error) {
	subject := Subject{
		WeightKg:      sc.Subject.WeightKg,
		HeightCm:      sc.Subject.HeightCm,
		AgeYears:      sc.Subject.AgeYears,
		Sex:           Sex(sc.Subject.Sex),
		BreathTempC:   orDefault(sc.Subject.BreathTempC, ReferenceBreathTempC),
		HabitualLevel: sc.Subject.HabitualLevel,
		VdMethod:      VdMethod(sc.Subject.VdMethod),
		WidmarkR:      orDefault(sc.Subject.WidmarkR, 0.6),
	}
	if sc.Subject.VdMethod == "" {
		subject.VdMethod = VdAnthropometric
	}

	defaults := DefaultModelOptions()
	law, err := sc.Options.Elimination.build()
	if err != nil {
		return Subject{}, ModelOptions{}, nil, Grid{}, err
	}
	opts := ModelOptions{
		KaPerHour:          orDefault(sc.Options.KaPerHour, defaults.KaPerHour),
		FoodFactor:         orDefault(sc.Options.FoodFactor, defaults.FoodFactor),
		CarbonationFactor:  orDefault(sc.Options.CarbonationFactor, defaults.CarbonationFactor),
		Elimination:        law,
		BBRBase:            orDefault(sc.Options.BBRBase, defaults.BBRBase),
		BBRTempCoeffPerDeg: orDefault(sc.Options.BBRTempCoeffPerDeg, defaults.BBRTempCoeffPerDeg),
	}

	doses := make([]DoseEvent, len(sc.Doses))
	for i, d := range sc.Doses {
		doses[i] = DoseEvent{TimeH: d.TimeH, VolumeML: d.VolumeML, Beverage: d.Beverage, KaScale: d.KaScale}
	}

	grid := Grid{
		DurationH: orDefault(sc.DurationH, 12.0),
		DtH:       orDefault(sc.DtH, 0.0025),
	}
	return subject, opts, doses, grid, nil
}

func (e ScenarioElimination) build() (EliminationLaw, error) {
	defaults := DefaultModelOptions().Elimination.(Saturable)
	switch e.Mode {
	case "", "saturable":
		if e.BetaGPerLH != nil || e.KePerHour != nil {
			return nil, fmt.Errorf("%w: saturable mode accepts only vmax_g_per_l_h and km_g_per_l", ErrConfiguration)
		}
		return Saturable{
			VmaxGPerLH: orDefault(e.VmaxGPerLH, defaults.VmaxGPerLH),
			KmGPerL:    orDefault(e.KmGPerL, defaults.KmGPerL),
		}, nil
	case "zero-order":
		if e.VmaxGPerLH != nil || e.KmGPerL != nil || e.KePerHour != nil {
			return nil, fmt.Errorf("%w: zero-order mode accepts only beta_g_per_l_h", ErrConfiguration)
		}
		return ZeroOrder{BetaGPerLH: orDefault(e.BetaGPerLH, 0.18)}, nil
	case "first-order":
		if e.VmaxGPerLH != nil || e.KmGPerL != nil || e.BetaGPerLH != nil {
			return nil, fmt.Errorf("%w: first-order mode accepts only ke_per_hour", ErrConfiguration)
		}
		return FirstOrder{KePerHour: orDefault(e.KePerHour, 0.15)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown elimination mode %q", ErrConfiguration, e.Mode)
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
