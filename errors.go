package closest

import (
	"errors"

	"github.com/soypat/closest/internal/diag"
	"go.uber.org/zap"
)

var (
	// ErrDegenerate is returned when a line or ray has no direction because
	// its defining points coincide, or when an orientation query has no
	// defined normal.
	ErrDegenerate = errors.New("closest: degenerate primitive")
	// ErrTooFewPoints is returned for polylines and point sequences without
	// enough vertices.
	ErrTooFewPoints = errors.New("closest: too few points")
	// ErrUnsupportedPair is returned by Between for nil primitives.
	ErrUnsupportedPair = errors.New("closest: unsupported primitive pair")
	// ErrOverflow is returned when narrowing to float32 overflows.
	ErrOverflow = errors.New("closest: float32 overflow")
)

// SetLogger sets the logger that receives non-fatal diagnostics.
// The default discards everything. Passing nil restores the default.
func SetLogger(l *zap.Logger) { diag.SetLogger(l) }
