package robot

import "github.com/pkg/errors"

// NewUnsupportedDOFError returns an error for degrees of freedom with no
// known link length.
func NewUnsupportedDOFError(dof int) error {
	return errors.Errorf("unsupported DOF %d, supported values are %v", dof, SupportedDOFs())
}

func newBadLinkDimensionsError(length, width float64) error {
	return errors.Errorf("link length %.2f and width %.2f must both be positive", length, width)
}

func newBadDOFError(dof int) error {
	return errors.Errorf("an arm needs at least one joint, got DOF %d", dof)
}
