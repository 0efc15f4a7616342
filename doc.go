// Package limitkit is your numerical playground for exploring how a real
// function behaves near a point — one-sided limits, continuity, and the
// formal epsilon-delta game, all by pure black-box sampling.
//
// 🚀 What is limitkit?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Approach sequences: geometrically shrinking samples toward a point
//		• Limit detection: a three-point, dual-threshold convergence heuristic
//		• One-sided & two-sided limits with finite/infinite/none classification
//		• Continuity analysis: continuous, removable, jump, infinite, oscillating
//		• Epsilon-delta search: the largest delta that satisfies a given epsilon
//		• A catalog of classic example functions for exploration
//
// ✨ Why choose limitkit?
//
//   - Pure functions – same inputs, same outputs, no hidden state
//   - Honest numerics – NaN and ±Inf flow through and are interpreted, not hidden
//   - Bounded work – every operation finishes in a fixed number of samples
//   - Concurrent-safe – value results only, nothing shared, nothing locked
//
// Everything is organized under flat subpackages:
//
//	core/       — Func, Direction, Interval and shared numeric defaults
//	limit/      — approach sequences, convergence detection, limit evaluation
//	continuity/ — five-way continuity classification at a point
//	epsdelta/   — binary search for the widest valid delta neighbourhood
//	catalog/    — keyed registry of example functions and points of interest
//	cmd/        — the limitkit CLI for terminal exploration
//
// Quick taste:
//
//	f := func(x float64) float64 { return (x*x - 1) / (x - 1) }
//	res, _ := limit.Evaluate(f, 1, core.Both)
//	// res.Exists == true, res.Value ≈ 2 — a removable hole at x = 1.
//
// limitkit approximates; it does not prove. The convergence heuristic is
// calibrated for well-behaved black-box functions, not for adversarial ones.
//
//	go get github.com/odrellan/limitkit
package limitkit
