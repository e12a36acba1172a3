package mdtree

import (
	"errors"
	"fmt"
)

// ErrInternal reports a defensive invariant violation inside Compute. It
// never originates from caller input; seeing it means this package has a
// bug.
var ErrInternal = errors.New("mdtree: internal invariant violation")

func internalErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
