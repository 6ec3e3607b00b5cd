package pk

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// SimulationResult is one simulated trajectory: three aligned sequences of
// equal length, times strictly increasing from 0. A fresh result is produced
// by every Simulate call and owned by the caller.
type SimulationResult struct {
	TimesH       []float64 // grid time points (h)
	BACGramsPerL []float64 // blood alcohol concentration (g/L)
	BrACMgPerL   []float64 // breath alcohol concentration (mg/L air)
}

// Peak returns the time, BAC and BrAC at the trajectory's maximum blood
// concentration.
func (r *SimulationResult) Peak() (tH, bac, brac float64) {
	i := floats.MaxIdx(r.BACGramsPerL)
	return r.TimesH[i], r.BACGramsPerL[i], r.BrACMgPerL[i]
}

// AUC returns the area under the BAC curve (g*h/L), the standard systemic
// exposure metric.
func (r *SimulationResult) AUC() float64 {
	return integrate.Trapezoidal(r.TimesH, r.BACGramsPerL)
}

// TimeAboveBAC returns the total simulated hours spent with BAC strictly
// above the given limit (g/L).
func (r *SimulationResult) TimeAboveBAC(limit float64) float64 {
	total := 0.0
	for i := 1; i < len(r.TimesH); i++ {
		if r.BACGramsPerL[i] > limit {
			total += r.TimesH[i] - r.TimesH[i-1]
		}
	}
	return total
}

// WriteCSV writes the trajectory as CSV with a t_h,BAC_g_per_L,BrAC_mg_per_L
// header row.
func (r *SimulationResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t_h", "BAC_g_per_L", "BrAC_mg_per_L"}); err != nil {
		return err
	}
	for i := range r.TimesH {
		row := []string{
			strconv.FormatFloat(r.TimesH[i], 'g', -1, 64),
			strconv.FormatFloat(r.BACGramsPerL[i], 'g', -1, 64),
			strconv.FormatFloat(r.BrACMgPerL[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
