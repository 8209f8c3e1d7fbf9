// SPDX-License-Identifier: MIT

package qr

import "log/slog"

// logOp logs a committed operation with the resulting dimensions.
func (f *Factorization[T]) logOp(op string) {
	m, n, k := f.Dims()
	f.opts.logger.Debug("qr operation completed",
		"op", op,
		"mode", f.mode.String(),
		"m", m,
		"n", n,
		"k", k,
	)
}

// emit delivers the pending warning to the logger and the optional handler.
func (f *Factorization[T]) emit() {
	if f.warn == nil {
		return
	}
	w := *f.warn
	f.opts.logger.Warn("qr: numerically singular R",
		slog.String("op", w.Op),
		slog.Int("index", w.Index),
		slog.Float64("value", w.Value),
		slog.Float64("scale", w.Scale),
	)
	if f.opts.onWarning != nil {
		f.opts.onWarning(w)
	}
}
