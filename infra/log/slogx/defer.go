package slogx

import (
	"log/slog"
)

// DeferValue is a [slog.Value] on demand: the function runs only
// when its record is actually emitted, never for a disabled level.
type DeferValue func() slog.Value

var _ slog.LogValuer = DeferValue(nil)

// LogValue resolves the deferred value ; see [slog.LogValuer].
func (fn DeferValue) LogValue() slog.Value {
	if fn != nil {
		return fn()
	}
	return slog.Value{} // nil
}
