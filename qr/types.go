// SPDX-License-Identifier: MIT

// Package qr - core types: factorization mode and the non-fatal warning.

package qr

import "fmt"

// Mode selects the shape of the stored factors. It is fixed at construction.
type Mode int

const (
	// Full keeps a square m×m Q and an m×n R.
	Full Mode = iota
	// Economy keeps Q m×min(m,n) and R min(m,n)×n.
	Economy
	// Raw keeps only the packed m×n LAPACK array and the reflector scalars.
	// No update operator is defined in this mode.
	Raw
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Economy:
		return "economy"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m belongs to the closed set of modes.
func (m Mode) valid() bool { return m >= Full && m <= Raw }

// SingularityWarning reports that an operation produced (or had to work
// around) a numerically singular triangular factor. It never aborts the
// operation; the factorization stays consistent.
//
// Fields:
//   - Op: operation that raised the warning.
//   - Index: column (or diagonal position) concerned.
//   - Value: offending magnitude (|R[i,i]| or the residual norm).
//   - Scale: reference magnitude Value was compared against.
type SingularityWarning struct {
	Op    string
	Index int
	Value float64
	Scale float64
}

// Error implements error so the warning can travel through error channels.
func (w SingularityWarning) Error() string {
	return fmt.Sprintf("qr.%s: R is numerically singular at %d (|%g| vs scale %g)",
		w.Op, w.Index, w.Value, w.Scale)
}
