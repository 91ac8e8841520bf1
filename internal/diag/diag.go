// Package diag holds the logger shared by the closest and linalg packages
// for non-fatal diagnostics such as malformed constructor arguments.
package diag

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// L returns the current logger. It is never nil.
func L() *zap.Logger { return logger.Load() }

// SetLogger replaces the shared logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// ComponentCount warns that a raw component constructor received the wrong
// number of values and will zero-fill or truncate them.
func ComponentCount(fn string, got, want int) {
	if got == want {
		return
	}
	policy := "zero-fill"
	if got > want {
		policy = "truncate"
	}
	L().Warn("malformed component count",
		zap.String("func", fn),
		zap.Int("got", got),
		zap.Int("want", want),
		zap.String("policy", policy),
	)
}
