package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pk "github.com/luisgoma4/bracsim/pk"
)

var (
	// CLI flags for the subject
	weightKg      float64 // Body weight (kg)
	heightCm      float64 // Height (cm)
	ageYears      float64 // Age (years)
	sex           string  // Biological sex (male/female)
	breathTempC   float64 // Exhaled air temperature (deg C)
	habitualLevel float64 // Habitual consumption 0 (naive) .. 1 (chronic)
	vdMethod      string  // Distribution-volume method (anthropometric/fixed-ratio)
	widmarkR      float64 // Widmark r (L/kg), fixed-ratio method only

	// CLI flags for the kinetic model
	kaPerHour         float64 // Base absorption rate constant (1/h)
	foodFactor        float64 // Meal modifier on ka
	carbonationFactor float64 // Carbonation modifier on ka
	eliminationMode   string  // Elimination law (saturable/zero-order/first-order)
	vmaxGPerLH        float64 // Saturable Vmax (g/L/h)
	kmGPerL           float64 // Saturable Km (g/L)
	betaGPerLH        float64 // Zero-order beta (g/L/h)
	kePerHour         float64 // First-order ke (1/h)
	bbrBase           float64 // Blood:breath ratio at 34 degC
	bbrTempCoeff      float64 // Additive BBR correction per degC

	// CLI flags for the time grid and run control
	durationH   float64  // Total simulated time (h)
	dtH         float64  // Step size (h)
	maxSteps    int      // Reject grids larger than this before simulating
	doseSpecs   []string // Repeated --dose specs (t=..,volume=..,beverage=..)
	scenarioSrc string   // Scenario YAML path (overrides subject/options/dose flags)
	csvOut      string   // Optional CSV output path
	bacLimit    float64  // Reference BAC limit for the summary (g/L)
	bracLimit   float64  // Reference BrAC limit for the summary (mg/L)
	logLevel    string   // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bracsim",
	Short: "Pharmacokinetic blood/breath alcohol concentration simulator",
	Long: "bracsim simulates a subject's blood (BAC) and breath (BrAC) alcohol " +
		"concentration over time from a timed sequence of drinks, using first-order " +
		"GI absorption and a configurable elimination law. Educational use only.",
}

// runCmd executes one simulation from CLI flags or a scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a BAC/BrAC simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		catalog := pk.DefaultCatalog()
		subject, opts, doses, grid, err := buildInputs()
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}

		if steps := grid.Steps(); steps > maxSteps {
			logrus.Fatalf("Grid of %d steps exceeds --max-steps=%d; raise dt or shorten duration", steps, maxSteps)
		}

		logrus.Infof("Starting simulation: %d doses over %g h at dt=%g h (%s elimination)",
			len(doses), grid.DurationH, grid.DtH, opts.Elimination.Mode())
		startTime := time.Now()

		result, err := pk.Simulate(subject, opts, doses, grid, catalog)
		if err != nil {
			logrus.Fatalf("Simulation rejected: %v", err)
		}
		logrus.Infof("Simulation finished in %s", time.Since(startTime))

		printSummary(result)

		if csvOut != "" {
			if err := writeCSVFile(result, csvOut); err != nil {
				logrus.Fatalf("Writing CSV %s: %v", csvOut, err)
			}
			fmt.Printf("Trajectory written to %s (%d points)\n", csvOut, len(result.TimesH))
		}
	},
}

// buildInputs assembles the engine inputs from either the scenario file or the
// individual CLI flags.
func buildInputs() (pk.Subject, pk.ModelOptions, []pk.DoseEvent, pk.Grid, error) {
	if scenarioSrc != "" {
		sc, err := pk.LoadScenario(scenarioSrc)
		if err != nil {
			return pk.Subject{}, pk.ModelOptions{}, nil, pk.Grid{}, err
		}
		return sc.Build()
	}

	law, err := eliminationFromFlags()
	if err != nil {
		return pk.Subject{}, pk.ModelOptions{}, nil, pk.Grid{}, err
	}

	doses := make([]pk.DoseEvent, 0, len(doseSpecs))
	for _, spec := range doseSpecs {
		d, err := parseDoseSpec(spec)
		if err != nil {
			return pk.Subject{}, pk.ModelOptions{}, nil, pk.Grid{}, err
		}
		doses = append(doses, d)
	}

	subject := pk.Subject{
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		AgeYears:      ageYears,
		Sex:           pk.Sex(sex),
		BreathTempC:   breathTempC,
		HabitualLevel: habitualLevel,
		VdMethod:      pk.VdMethod(vdMethod),
		WidmarkR:      widmarkR,
	}
	opts := pk.ModelOptions{
		KaPerHour:          kaPerHour,
		FoodFactor:         foodFactor,
		CarbonationFactor:  carbonationFactor,
		Elimination:        law,
		BBRBase:            bbrBase,
		BBRTempCoeffPerDeg: bbrTempCoeff,
	}
	grid := pk.Grid{DurationH: durationH, DtH: dtH}
	return subject, opts, doses, grid, nil
}

func eliminationFromFlags() (pk.EliminationLaw, error) {
	switch eliminationMode {
	case "saturable":
		return pk.Saturable{VmaxGPerLH: vmaxGPerLH, KmGPerL: kmGPerL}, nil
	case "zero-order":
		return pk.ZeroOrder{BetaGPerLH: betaGPerLH}, nil
	case "first-order":
		return pk.FirstOrder{KePerHour: kePerHour}, nil
	default:
		return nil, fmt.Errorf("unknown --elimination %q (want saturable, zero-order or first-order)", eliminationMode)
	}
}

func printSummary(result *pk.SimulationResult) {
	peakT, peakBAC, peakBrAC := result.Peak()
	last := len(result.TimesH) - 1

	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Peak BrAC           : %.3f mg/L air\n", peakBrAC)
	fmt.Printf("Peak BAC            : %.3f g/L blood\n", peakBAC)
	fmt.Printf("Time of peak        : %.2f h\n", peakT)
	fmt.Printf("AUC (BAC)           : %.3f g*h/L\n", result.AUC())
	fmt.Printf("Time above %.2f g/L : %.2f h\n", bacLimit, result.TimeAboveBAC(bacLimit))
	fmt.Printf("Final BAC at %.1f h : %.3f g/L\n", result.TimesH[last], result.BACGramsPerL[last])
	if peakBrAC > bracLimit {
		fmt.Printf("Peak BrAC exceeds the %.2f mg/L reference limit\n", bracLimit)
	}
}

func writeCSVFile(result *pk.SimulationResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := result.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Subject
	runCmd.Flags().Float64Var(&weightKg, "weight", 70.0, "Body weight (kg)")
	runCmd.Flags().Float64Var(&heightCm, "height", 175.0, "Height (cm)")
	runCmd.Flags().Float64Var(&ageYears, "age", 35.0, "Age (years)")
	runCmd.Flags().StringVar(&sex, "sex", "male", "Biological sex (male, female)")
	runCmd.Flags().Float64Var(&breathTempC, "breath-temp", 34.0, "Exhaled air temperature (deg C)")
	runCmd.Flags().Float64Var(&habitualLevel, "habitual", 0.0, "Habitual consumption level (0=naive, 1=chronic)")
	runCmd.Flags().StringVar(&vdMethod, "vd-method", "anthropometric", "Distribution-volume method (anthropometric, fixed-ratio)")
	runCmd.Flags().Float64Var(&widmarkR, "widmark-r", 0.6, "Widmark r (L/kg), only with --vd-method=fixed-ratio")

	// Kinetic model
	runCmd.Flags().Float64Var(&kaPerHour, "ka", 2.4, "Base absorption rate constant (1/h)")
	runCmd.Flags().Float64Var(&foodFactor, "food-factor", 1.0, "Meal modifier on ka (<1 slows absorption)")
	runCmd.Flags().Float64Var(&carbonationFactor, "carbonation-factor", 1.0, "Carbonation modifier on ka (>1 speeds absorption)")
	runCmd.Flags().StringVar(&eliminationMode, "elimination", "saturable", "Elimination law (saturable, zero-order, first-order)")
	runCmd.Flags().Float64Var(&vmaxGPerLH, "vmax", 0.20, "Saturable Vmax (g/L/h)")
	runCmd.Flags().Float64Var(&kmGPerL, "km", 0.15, "Saturable Km (g/L)")
	runCmd.Flags().Float64Var(&betaGPerLH, "beta", 0.18, "Zero-order elimination rate (g/L/h)")
	runCmd.Flags().Float64Var(&kePerHour, "ke", 0.15, "First-order elimination rate constant (1/h)")
	runCmd.Flags().Float64Var(&bbrBase, "bbr", 2100.0, "Blood:breath ratio at 34 degC")
	runCmd.Flags().Float64Var(&bbrTempCoeff, "bbr-temp-coeff", 0.0, "Additive BBR correction per degC of breath temperature")

	// Grid and run control
	runCmd.Flags().Float64Var(&durationH, "duration", 12.0, "Total simulated time (h)")
	runCmd.Flags().Float64Var(&dtH, "dt", 0.0025, "Step size (h); 0.0025 h is about 9 s per step")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 4000000, "Reject grids with more steps than this")
	runCmd.Flags().StringArrayVar(&doseSpecs, "dose", nil, "Dose spec, repeatable: t=0,volume=40,beverage=liquor[,ka-scale=1.0]")
	runCmd.Flags().StringVar(&scenarioSrc, "scenario", "", "Scenario YAML file (replaces subject/model/dose flags)")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "Write the (t, BAC, BrAC) trajectory to this CSV file")
	runCmd.Flags().Float64Var(&bacLimit, "bac-limit", 0.5, "Reference BAC limit for the summary (g/L)")
	runCmd.Flags().Float64Var(&bracLimit, "brac-limit", 0.25, "Reference BrAC limit for the summary (mg/L)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
