package cmd

import (
	"fmt"
	"strconv"
	"strings"

	pk "github.com/luisgoma4/bracsim/pk"
)

// parseDoseSpec parses one --dose flag value of the form
// "t=0,volume=40,beverage=liquor[,ka-scale=1.0]" into a DoseEvent.
// Semantic validation (volume > 0, beverage in catalog, ...) is the engine's
// job; this only checks the spec's syntax.
func parseDoseSpec(spec string) (pk.DoseEvent, error) {
	var dose pk.DoseEvent
	seen := map[string]bool{}

	for _, field := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			return pk.DoseEvent{}, fmt.Errorf("dose %q: field %q is not key=value", spec, field)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if seen[key] {
			return pk.DoseEvent{}, fmt.Errorf("dose %q: duplicate field %q", spec, key)
		}
		seen[key] = true

		switch key {
		case "t":
			t, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return pk.DoseEvent{}, fmt.Errorf("dose %q: invalid t: %w", spec, err)
			}
			dose.TimeH = t
		case "volume":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return pk.DoseEvent{}, fmt.Errorf("dose %q: invalid volume: %w", spec, err)
			}
			dose.VolumeML = v
		case "beverage":
			dose.Beverage = value
		case "ka-scale":
			s, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return pk.DoseEvent{}, fmt.Errorf("dose %q: invalid ka-scale: %w", spec, err)
			}
			dose.KaScale = s
		default:
			return pk.DoseEvent{}, fmt.Errorf("dose %q: unknown field %q (want t, volume, beverage, ka-scale)", spec, key)
		}
	}

	if !seen["t"] || !seen["volume"] || !seen["beverage"] {
		return pk.DoseEvent{}, fmt.Errorf("dose %q: t, volume and beverage are required", spec)
	}
	return dose, nil
}
