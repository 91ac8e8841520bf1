package linalg

import (
	"errors"

	"github.com/soypat/closest/internal/diag"
	"go.uber.org/zap"
)

var (
	// ErrSingular is returned when inverting a matrix with zero determinant.
	ErrSingular = errors.New("linalg: singular matrix")
	// ErrZeroVector is returned when normalizing a vector of zero (or non-finite) length.
	ErrZeroVector = errors.New("linalg: zero length vector")
)

// SetLogger sets the logger that receives non-fatal diagnostics, such as
// constructors given the wrong number of components. The default logger
// discards everything. SetLogger is shared with package closest.
func SetLogger(l *zap.Logger) { diag.SetLogger(l) }
