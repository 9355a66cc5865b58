package datagen

import "github.com/pkg/errors"

var (
	errMissingSceneName = errors.New("missing required parameter scene name")
	errNoObstacles      = errors.New("a dataset request needs at least one obstacle")
	errMissingRobot     = errors.New("missing required parameter robot")
	errMissingOutputDir = errors.New("missing required parameter output directory")
	errMissingLogger    = errors.New("missing required parameter logger")
	errMissingGenerator = errors.New("missing required parameter generator")
	errBadNumClasses    = errors.New("a dataset needs at least one class")
	errBadNumPoints     = errors.New("a dataset needs at least one point")
	errBadLinkWidth     = errors.New("the arm link width must be positive")
)

// NewUnsupportedLabelTypeError returns an error for label types no generator
// understands.
func NewUnsupportedLabelTypeError(labelType LabelType) error {
	return errors.Errorf("unsupported label type %q, expected one of %q, %q or %q",
		labelType, LabelInstance, LabelClass, LabelBinary)
}
