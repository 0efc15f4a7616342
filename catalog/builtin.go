package catalog

import (
	"math"

	"github.com/odrellan/limitkit/core"
)

// Builtin returns a registry seeded with the classic limit-exploration
// shapes: one representative for each continuity classification the core
// can produce, plus a plain continuous baseline.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range builtinDescriptors() {
		// Seed data is static; a failure here is a programming error.
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}

	return r
}

func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID:      "square",
			Name:    "x²",
			Summary: "continuous everywhere; the baseline case",
			Fn:      func(x float64) float64 { return x * x },
			Domain:  core.Interval{Lo: -4, Hi: 4},
			Points:  []float64{2, -1},
		},
		{
			ID:      "hole",
			Name:    "(x² − 1) / (x − 1)",
			Summary: "removable discontinuity at x = 1: the limit is 2 but f(1) is undefined",
			Fn:      func(x float64) float64 { return (x*x - 1) / (x - 1) },
			Domain:  core.Interval{Lo: -3, Hi: 5},
			Points:  []float64{1},
		},
		{
			ID:      "sinc",
			Name:    "sin(x) / x",
			Summary: "removable discontinuity at x = 0 with limit 1",
			Fn:      func(x float64) float64 { return math.Sin(x) / x },
			Domain:  core.Interval{Lo: -10, Hi: 10},
			Points:  []float64{0},
		},
		{
			ID:      "floor",
			Name:    "⌊x⌋",
			Summary: "jump discontinuity at every integer",
			Fn:      math.Floor,
			Domain:  core.Interval{Lo: -3, Hi: 3},
			Points:  []float64{2, 0, -1},
		},
		{
			ID:      "sign",
			Name:    "x / |x|",
			Summary: "jump discontinuity at x = 0 with an undefined value there",
			Fn:      func(x float64) float64 { return x / math.Abs(x) },
			Domain:  core.Interval{Lo: -2, Hi: 2},
			Points:  []float64{0},
		},
		{
			ID:      "reciprocal",
			Name:    "1 / x",
			Summary: "infinite discontinuity at x = 0: a vertical asymptote",
			Fn:      func(x float64) float64 { return 1 / x },
			Domain:  core.Interval{Lo: -4, Hi: 4},
			Points:  []float64{0},
		},
		{
			ID:      "wild",
			Name:    "sin(1 / x)",
			Summary: "oscillating discontinuity at x = 0: values never settle",
			Fn:      func(x float64) float64 { return math.Sin(1 / x) },
			Domain:  core.Interval{Lo: -1, Hi: 1},
			Points:  []float64{0},
		},
		{
			ID:      "abs",
			Name:    "|x|",
			Summary: "continuous everywhere, with a corner at x = 0",
			Fn:      math.Abs,
			Domain:  core.Interval{Lo: -3, Hi: 3},
			Points:  []float64{0},
		},
	}
}
