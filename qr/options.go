// SPDX-License-Identifier: MIT

// Package qr: functional configuration for factorizations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Options are resolved once at construction and carried by the
//     factorization (and by its clones).
package qr

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance below which a residual is
	// treated as zero (orthogonal complement, trailing rows).
	DefaultEpsilon = 1e-12

	// DefaultSingularityTol is the relative threshold |R[i,i]| <= tol·max|R[j,j]|
	// that raises a SingularityWarning and fails Solve.
	DefaultSingularityTol = 1e-10
)

// Panic messages (stable, grep-friendly).
const (
	panicEpsilonInvalid     = "qr: WithEpsilon: eps must be finite, positive"
	panicSingularityInvalid = "qr: WithSingularityTol: tol must be finite, non-negative"
	panicSelfCheckInvalid   = "qr: WithSelfCheck: tol must be finite, positive"
	panicLoggerNil          = "qr: WithLogger(nil)"
	panicHandlerNil         = "qr: WithWarningHandler(nil)"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps          float64                  // DefaultEpsilon
	singularTol  float64                  // DefaultSingularityTol
	logger       *slog.Logger             // discard by default
	onWarning    func(SingularityWarning) // optional
	selfCheck    bool                     // validate after every operator
	selfCheckTol float64                  // orthogonality tolerance of the self-check
}

// WithEpsilon sets the relative zero tolerance used by column insertion and
// rank-1 updates to decide whether a vector leaves the span of Q.
// Panics when eps is not finite or not positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularityTol sets the relative diagonal threshold for singularity
// warnings and Solve. A zero tol only flags exact zeros.
func WithSingularityTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularityInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithLogger routes operator logs (Debug) and warnings (Warn) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithWarningHandler registers fn to receive every SingularityWarning.
// fn runs synchronously on the calling goroutine after the state is committed.
func WithWarningHandler(fn func(SingularityWarning)) Option {
	if fn == nil {
		panic(panicHandlerNil)
	}

	return func(o *Options) { o.onWarning = fn }
}

// WithSelfCheck validates the invariants after every operator. A failure
// returns ErrInvariant and leaves the previous state in place.
// Behavior highlights:
//   - Costs O(m·k²) per operation; meant for debugging and tests.
func WithSelfCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicSelfCheckInvalid)
	}

	return func(o *Options) {
		o.selfCheck = true
		o.selfCheckTol = tol
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:         DefaultEpsilon,
		singularTol: DefaultSingularityTol,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
