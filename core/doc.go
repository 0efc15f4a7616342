// Package core defines the shared primitives of limitkit: the black-box
// function type, approach directions, domain intervals, and the default
// numeric parameters used across the analysis chain.
//
// Overview:
//
//   - Func is an opaque real→real callable. It may return NaN where it is
//     undefined and ±Inf at vertical asymptotes; limitkit never inspects
//     it symbolically. Func.Eval additionally converts a panicking or nil
//     callable into NaN, so every downstream component can treat the
//     function as total.
//   - Direction is a closed enum (Left, Right, Both) selecting which
//     side(s) of an approach point are examined.
//   - Interval is a closed range used by collaborators (such as the
//     function catalog) to describe where a function is worth plotting
//     or sampling.
//
// Error-value convention:
//
//   - NaN means "no numeric information" — an undefined sample, an
//     undetected limit, a failed delta search.
//   - ±Inf is genuine information (an unbounded approach) and is carried
//     through, never rejected.
//
// Every type here is a plain value; nothing in this package holds state.
package core
