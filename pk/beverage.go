package pk

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog maps a normalized beverage name to its ethanol volume fraction.
// It is an explicitly constructed, immutable lookup table: build it once with
// NewCatalog (or take DefaultCatalog) and pass it into Simulate. Lookups are
// case-insensitive and ignore surrounding whitespace.
type Catalog struct {
	fractions map[string]float64
}

// NewCatalog builds a Catalog from name -> ethanol fraction pairs.
// Fractions must lie in (0, 1].
func NewCatalog(fractions map[string]float64) (Catalog, error) {
	normalized := make(map[string]float64, len(fractions))
	for name, frac := range fractions {
		if frac <= 0 || frac > 1 {
			return Catalog{}, fmt.Errorf("%w: beverage %q: ethanol fraction must be in (0,1], got %g", ErrConfiguration, name, frac)
		}
		normalized[normalizeBeverage(name)] = frac
	}
	return Catalog{fractions: normalized}, nil
}

// DefaultCatalog returns the built-in beverage table.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(map[string]float64{
		"beer":     0.05,
		"cerveza":  0.05,
		"wine":     0.12,
		"vino":     0.12,
		"liquor":   0.40,
		"spirit":   0.40,
		"licor":    0.45,
		"shot":     0.30,
		"chupito":  0.30,
		"absinthe": 0.90,
		"absenta":  0.90,
	})
	if err != nil {
		// The built-in table is statically valid.
		panic(err)
	}
	return c
}

// Fraction looks up the ethanol volume fraction for a beverage name.
func (c Catalog) Fraction(name string) (float64, bool) {
	frac, ok := c.fractions[normalizeBeverage(name)]
	return frac, ok
}

// Names returns the catalog's beverage names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.fractions))
	for name := range c.fractions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeBeverage(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
