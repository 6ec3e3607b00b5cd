package pk

import "fmt"

// effectiveBBR returns the blood:breath ratio corrected for the subject's
// breath temperature. A non-positive result means the configured base and
// thermal coefficient are inconsistent.
func effectiveBBR(opts ModelOptions, breathTempC float64) (float64, error) {
	bbr := opts.BBRBase + opts.BBRTempCoeffPerDeg*(breathTempC-ReferenceBreathTempC)
	if bbr <= 0 {
		return 0, fmt.Errorf("%w: effective BBR must be > 0, got %g (base %g, coeff %g, breath temp %g degC)",
			ErrConfiguration, bbr, opts.BBRBase, opts.BBRTempCoeffPerDeg, breathTempC)
	}
	return bbr, nil
}

// bacToBrAC maps a BAC trajectory (g/L blood) to BrAC (mg/L air) through the
// effective blood:breath ratio.
func bacToBrAC(bac []float64, bbr float64) []float64 {
	brac := make([]float64, len(bac))
	for i, c := range bac {
		brac[i] = c * 1000.0 / bbr
	}
	return brac
}
