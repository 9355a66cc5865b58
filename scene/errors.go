package scene

import (
	"github.com/pkg/errors"
)

// NewUnknownSceneError returns an error for a scene identifier that is neither
// in the catalog nor one of the procedurally generated scenes.
func NewUnknownSceneError(name string) error {
	return errors.Errorf("no scene named %q in the catalog", name)
}

// newProceduralSceneError returns an error for fixed-scene lookups of a scene
// whose obstacles are sampled at run time.
func newProceduralSceneError(name string) error {
	return errors.Errorf("scene %q is generated at run time and has no fixed obstacle list", name)
}

func newObstacleKindUnsupportedError(kind string) error {
	if kind == "" {
		return errors.New("obstacle kind cannot be inferred, no dimensions given")
	}
	return errors.Errorf("obstacle kind %q unsupported", kind)
}

func newBadObstacleDimensionsError(o Obstacle) error {
	return errors.Errorf("bad dimensions for %s obstacle, must be positive", string(o.Kind))
}
