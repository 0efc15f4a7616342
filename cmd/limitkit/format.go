package main

import (
	"fmt"
	"math"

	"github.com/odrellan/limitkit/catalog"
	"github.com/odrellan/limitkit/core"
)

// formatValue renders a sampled number for the terminal: NaN becomes
// "undefined" so tables stay readable.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}

	return fmt.Sprintf("%g", v)
}

// formatLimit renders a detected limit: NaN means no limit was found.
func formatLimit(v float64) string {
	if math.IsNaN(v) {
		return "does not exist"
	}

	return fmt.Sprintf("%g", v)
}

// parseDirection maps a --side flag value onto a core.Direction.
func parseDirection(side string) (core.Direction, error) {
	switch side {
	case "left":
		return core.Left, nil
	case "right":
		return core.Right, nil
	case "both", "":
		return core.Both, nil
	default:
		return core.Both, fmt.Errorf("unknown side %q (want left, right, or both)", side)
	}
}

// approachPoint resolves the --at flag: when the flag was not set, the
// descriptor's first point of interest is used instead.
func approachPoint(at float64, changed bool, d catalog.Descriptor) (float64, error) {
	if changed {
		return at, nil
	}
	if len(d.Points) == 0 {
		return 0, fmt.Errorf("function %q has no point of interest; pass --at", d.ID)
	}

	return d.Points[0], nil
}
