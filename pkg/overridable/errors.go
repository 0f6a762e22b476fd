package overridable

import (
	"errors"
	"fmt"
)

// ErrMultipleChildren is returned when a region is given more than one
// child. A region needs exactly one slot to clone or replace.
var ErrMultipleChildren = errors.New("overridable: ambiguous override target")

// ErrNilComponent is returned when a wrapper or parametrized component has
// no implementation to render.
var ErrNilComponent = errors.New("overridable: nil component")

// RegionError reports a region that violates the single-child constraint.
type RegionError struct {
	ID       string // Region identifier
	Children int    // Number of children the region was given
}

// Error implements the error interface.
func (e *RegionError) Error() string {
	return fmt.Sprintf("%s: region %q has %d children, want at most 1", ErrMultipleChildren, e.ID, e.Children)
}

// Unwrap returns ErrMultipleChildren for errors.Is support.
func (e *RegionError) Unwrap() error {
	return ErrMultipleChildren
}
